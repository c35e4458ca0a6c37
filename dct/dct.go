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

package dct

import "math"

// Forward computes the orthonormal DCT-II of in into out.
// in and out must have the same power-of-two length and may be the same slice.
func Forward(in, out []float32) {
	transform(in, out, nil, false)
}

// Inverse computes the DCT-III of in into out, undoing Forward.
// in and out must have the same power-of-two length and may be the same slice.
func Inverse(in, out []float32) {
	transform(in, out, nil, true)
}

// Transform runs Forward, or Inverse when inverse is set.
func Transform(in, out []float32, inverse bool) {
	transform(in, out, nil, inverse)
}

// transform is the shared 1D kernel. scratch is reused when it holds at
// least len(in) elements; otherwise one buffer of that size is allocated.
func transform(in, out, scratch []float32, inverse bool) {
	n := len(in)
	if len(out) != n {
		panic(invalidLength("input has %d samples, output %d", n, len(out)))
	}

	switch n {
	case 0:
		return
	case 1:
		out[0] = in[0]
		return
	case 2:
		a, b := in[0], in[1]
		if inverse {
			out[0], out[1] = a+b, a-b
		} else {
			out[0], out[1] = (a+b)/2, (a-b)/2
		}
		return
	}
	if !isPowerOfTwo(n) {
		panic(invalidLength("%d is not a power of two", n))
	}

	if len(scratch) < n {
		scratch = make([]float32, n)
	}
	if inverse {
		inverseN(in, out, scratch[:n])
	} else {
		forwardN(in, out, scratch[:n])
	}
}

// evenOdd maps position j of the reordered sequence v to its source index:
// v = x[0], x[2], x[4], ..., x[5], x[3], x[1].
func evenOdd(j, n int) int {
	if j < n/2 {
		return 2 * j
	}
	return 2*n - 1 - 2*j
}

// forwardN computes the DCT-II for n >= 4.
//
// The reordered sequence v is packed as z[m] = v[2m] + i*v[2m+1] and
// transformed with an n/2-point FFT. The n-point spectrum V of v is split out
// of Z, and X[k] = Re(exp(-i*pi*k/2n) * V[k]), with X[n-k] taken from the
// imaginary part of the same product.
func forwardN(in, out, scratch []float32) {
	n := len(in)
	half := n / 2

	re, im := scratch[:half], scratch[half:]
	for m := range half {
		re[m] = in[evenOdd(2*m, n)]
		im[m] = in[evenOdd(2*m+1, n)]
	}
	fft(re, im)

	tn := cosSin(n)
	t4 := cosSin(4 * n)
	invN := 1 / float32(n)
	scale := float32(math.Sqrt2) * invN

	// V[0] and V[n/2] are real; their rotations degenerate.
	a, b := re[0], im[0]
	out[0] = (a + b) * invN
	out[half] = (a - b) * invN

	for k := 1; k < half; k++ {
		zr, zi := re[k], im[k]
		wr, wi := re[half-k], im[half-k]

		// even and odd half spectra of v
		er, ei := (zr+wr)*0.5, (zi-wi)*0.5
		oRe, oIm := (zi+wi)*0.5, (wr-zr)*0.5

		c, s := tn.cos[k], tn.sin[k]
		vr := er + c*oRe + s*oIm
		vi := ei + c*oIm - s*oRe

		c4, s4 := t4.cos[k], t4.sin[k]
		out[k] = (c4*vr + s4*vi) * scale
		out[n-k] = (s4*vr - c4*vi) * scale
	}
}

// inverseN computes the DCT-III for n >= 4 by running forwardN's steps
// backwards: rebuild V from the coefficients, merge it into the n/2-point
// spectrum Z, inverse FFT, and undo the even/odd reorder.
func inverseN(in, out, scratch []float32) {
	n := len(in)
	half := n / 2

	tn := cosSin(n)
	t4 := cosSin(4 * n)
	ys := float32(n) * float32(math.Sqrt2/2)

	// V[k] for k in [0, half); vi[0] carries the real V[half].
	vr, vi := scratch[:half], scratch[half:]
	vr[0] = in[0] * float32(n)
	vi[0] = in[half] * float32(n)
	for k := 1; k < half; k++ {
		yk, ynk := in[k]*ys, in[n-k]*ys
		c4, s4 := t4.cos[k], t4.sin[k]
		vr[k] = c4*yk + s4*ynk
		vi[k] = s4*yk - c4*ynk
	}

	zr, zi := out[:half], out[half:]
	for k := range half {
		ar, ai := vr[k], vi[k]
		var br, bi float32
		if k == 0 {
			ai, br = 0, vi[0]
		} else {
			br, bi = vr[half-k], vi[half-k]
		}

		er, ei := (ar+br)*0.5, (ai-bi)*0.5
		dr, di := ar-br, ai+bi
		c, s := tn.cos[k], tn.sin[k]
		oRe := (c*dr - s*di) * 0.5
		oIm := (c*di + s*dr) * 0.5

		zr[k] = er - oIm
		zi[k] = ei + oRe
	}

	// Swapping the real and imaginary parts turns the forward FFT into an
	// unnormalized inverse.
	fft(zi, zr)

	copy(scratch, out)
	inv := 1 / float32(half)
	for m := range half {
		out[evenOdd(2*m, n)] = scratch[m] * inv
		out[evenOdd(2*m+1, n)] = scratch[half+m] * inv
	}
}

// fft computes the unnormalized forward DFT of re + i*im in place.
// The length must be a power of two.
func fft(re, im []float32) {
	n := len(re)
	if n < 2 {
		return
	}
	bitReverse(re, im)

	t := cosSin(n)
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := n / size
		for start := 0; start < n; start += size {
			for j := range half {
				// w = exp(-2*pi*i*j/size)
				c, s := t.cos[j*step], t.sin[j*step]
				a, b := start+j, start+j+half

				tr := re[b]*c + im[b]*s
				ti := im[b]*c - re[b]*s
				re[b] = re[a] - tr
				im[b] = im[a] - ti
				re[a] += tr
				im[a] += ti
			}
		}
	}
}

// bitReverse permutes re and im into bit-reversed index order.
func bitReverse(re, im []float32) {
	n := len(re)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}
