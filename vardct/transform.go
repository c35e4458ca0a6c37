// Copyright 2025 jxl-oxide Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vardct

import (
	"fmt"

	"github.com/damywise/jxl-oxide/dct"
	"github.com/damywise/jxl-oxide/grid"
)

// blockDim is the side of the 8x8 block the small transforms work on.
const blockDim = 8

// Check reports whether coeffs can be transformed as t. Small transforms
// need an 8x8 block. The others need a block of t.Size() or its transpose.
func Check(coeffs *grid.Grid[float32], t TransformType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTransform, uint8(t))
	}
	w, h := coeffs.Width(), coeffs.Height()
	if t.isSmall() {
		if w != blockDim || h != blockDim {
			return fmt.Errorf("%w: %s needs an 8x8 block, got %dx%d", ErrDimensionMismatch, t, w, h)
		}
		return nil
	}
	tw, th := t.Size()
	if (w != tw || h != th) && (w != th || h != tw) {
		return fmt.Errorf("%w: %s needs a %dx%d or %dx%d block, got %dx%d",
			ErrDimensionMismatch, t, tw, th, th, tw, w, h)
	}
	return nil
}

// Transform replaces the coefficients in coeffs with the spatial samples of
// the inverse transform t. General DCT types leave coeffs reshaped to
// t.Size(). A block that fails Check is a programming error and panics.
func Transform(coeffs *grid.Grid[float32], t TransformType) {
	if err := Check(coeffs, t); err != nil {
		panic(err)
	}

	switch t {
	case Dct2:
		dct2(coeffs.Slice())
	case Dct4:
		dct4(coeffs)
	case Hornuss:
		hornuss(coeffs)
	case Dct4x8:
		dct4x8(coeffs, false)
	case Dct8x4:
		dct4x8(coeffs, true)
	case Afv0, Afv1, Afv2, Afv3:
		afv(coeffs, int(t-Afv0))
	default:
		w, h := t.Size()
		general(coeffs, w, h)
	}
}

// auxIDCT2 undoes one level of the 2x2 pyramid: every coefficient of the
// size/2 square is combined with its right, lower and diagonal partner at
// distance size/2, and the four results fill a 2x2 cell of the size square.
func auxIDCT2(c []float32, size int) {
	num := size / 2
	var out [blockDim * blockDim]float32
	for y := range num {
		for x := range num {
			c00 := c[y*blockDim+x]
			c01 := c[y*blockDim+x+num]
			c10 := c[(y+num)*blockDim+x]
			c11 := c[(y+num)*blockDim+x+num]

			i := 2 * (y*size + x)
			out[i] = c00 + c01 + c10 + c11
			out[i+1] = c00 + c01 - c10 - c11
			out[i+size] = c00 - c01 + c10 - c11
			out[i+size+1] = c00 - c01 - c10 + c11
		}
	}
	for y := range size {
		copy(c[y*blockDim:y*blockDim+size], out[y*size:(y+1)*size])
	}
}

func dct2(c []float32) {
	auxIDCT2(c, 2)
	auxIDCT2(c, 4)
	auxIDCT2(c, 8)
}

// quadrantCoeffs gathers the 4x4 coefficients of quadrant (qx, qy), which
// are interleaved with stride 2 across the block.
func quadrantCoeffs(c []float32, qx, qy int) [16]float32 {
	var q [16]float32
	for iy := range 4 {
		for ix := range 4 {
			q[iy*4+ix] = c[(qy+2*iy)*blockDim+qx+2*ix]
		}
	}
	return q
}

// writeQuadrants stores four row-major 4x4 results into the quadrants of
// the block, in row-major quadrant order.
func writeQuadrants(coeffs *grid.Grid[float32], quads *[4][16]float32) {
	tiles, err := coeffs.View().Partition(2, 2)
	if err != nil {
		panic(err)
	}
	for i, tile := range tiles {
		tile.CopyFrom(quads[i][:])
	}
}

func dct4(coeffs *grid.Grid[float32]) {
	c := coeffs.Slice()
	auxIDCT2(c, 2)

	var quads [4][16]float32
	var scratch [16]float32
	for i := range quads {
		quads[i] = quadrantCoeffs(c, i%2, i/2)
		dct.Inverse2D(quads[i][:], scratch[:], 4, 4)
	}
	writeQuadrants(coeffs, &quads)
}

// hornuss stores each quadrant as residuals around its mean. Coefficient 0
// carries the residual of sample (1, 1), whose slot holds the mean.
func hornuss(coeffs *grid.Grid[float32]) {
	c := coeffs.Slice()
	auxIDCT2(c, 2)

	var quads [4][16]float32
	for i := range quads {
		q := quadrantCoeffs(c, i%2, i/2)
		dc, center := q[0], q[5]

		var residual float32
		for _, r := range q[1:] {
			residual += r
		}
		avg := dc - residual/16
		for j := range q {
			q[j] += avg
		}
		q[0] = center + avg
		q[5] = avg
		quads[i] = q
	}
	writeQuadrants(coeffs, &quads)
}

// dct4x8 runs two 4-row by 8-column inverse DCTs stacked vertically, or two
// 8-row by 4-column ones side by side when transposed. Their DC values are
// the sum and difference of coefficients (0, 0) and (0, 1).
func dct4x8(coeffs *grid.Grid[float32], transposed bool) {
	c := coeffs.Slice()
	dcs := [2]float32{c[0] + c[blockDim], c[0] - c[blockDim]}

	var halves [2][32]float32
	var scratch [32]float32
	for i := range halves {
		h := halves[i][:]
		for iy := range 4 {
			row := (i + 2*iy) * blockDim
			copy(h[iy*blockDim:(iy+1)*blockDim], c[row:row+blockDim])
		}
		h[0] = dcs[i]
		if transposed {
			dct.Inverse2D(h, scratch[:], 4, 8)
		} else {
			dct.Inverse2D(h, scratch[:], 8, 4)
		}
	}

	nx, ny := 1, 2
	if transposed {
		nx, ny = 2, 1
	}
	tiles, err := coeffs.View().Partition(nx, ny)
	if err != nil {
		panic(err)
	}
	for i, tile := range tiles {
		tile.CopyFrom(halves[i][:])
	}
}

// afv places the 4x4 AFV corner in quadrant (flipX, flipY) of the block,
// mirrored along the flipped axes. A 4x4 DCT fills the other quadrant of the
// same rows and a 4x8 DCT fills the remaining half.
func afv(coeffs *grid.Grid[float32], variant int) {
	flipX, flipY := variant%2, variant/2

	c := coeffs.Slice()
	at := func(x, y int) float32 {
		return c[y*blockDim+x]
	}

	var corner [16]float32
	corner[0] = (at(0, 0) + at(1, 0) + at(0, 1)) * 4
	for i := 1; i < 16; i++ {
		corner[i] = at(2*(i%4), 2*(i/4))
	}
	var samples [16]float32
	for i := range samples {
		var s float32
		for j, b := range afvBasis[i] {
			s += corner[j] * b
		}
		samples[i] = s
	}

	var block4x4 [16]float32
	block4x4[0] = at(0, 0) + at(0, 1) - at(1, 0)
	for i := 1; i < 16; i++ {
		block4x4[i] = at(2*(i%4)+1, 2*(i/4))
	}

	var block4x8 [32]float32
	block4x8[0] = at(0, 0) - at(0, 1)
	for i := 1; i < 32; i++ {
		block4x8[i] = at(i%8, 2*(i/8)+1)
	}

	var scratch [32]float32
	dct.Inverse2D(block4x4[:], scratch[:], 4, 4)
	dct.Inverse2D(block4x8[:], scratch[:], 8, 4)

	quads, err := coeffs.View().Partition(2, 2)
	if err != nil {
		panic(err)
	}
	cornerView := quads[flipY*2+flipX]
	cornerView.CopyFrom(samples[:])
	if flipX == 1 {
		for y := range 4 {
			cornerView.Swap(0, y, 3, y)
			cornerView.Swap(1, y, 2, y)
		}
	}
	if flipY == 1 {
		for x := range 4 {
			cornerView.Swap(x, 0, x, 3)
			cornerView.Swap(x, 1, x, 2)
		}
	}
	quads[flipY*2+1-flipX].CopyFrom(block4x4[:])

	halves, err := coeffs.View().Partition(1, 2)
	if err != nil {
		panic(err)
	}
	halves[1-flipY].CopyFrom(block4x8[:])
}

// general runs the 2D inverse DCT of a width x height transform and leaves
// the block reshaped to that size.
func general(coeffs *grid.Grid[float32], width, height int) {
	n := width * height
	buf := make([]float32, 2*n)
	samples, scratch := buf[:n], buf[n:]

	coeffs.View().CopyTo(samples)
	dct.Inverse2D(samples, scratch, width, height)

	if coeffs.Width() != width {
		coeffs.Reshape(width, height)
	}
	coeffs.View().CopyFrom(samples)
}
