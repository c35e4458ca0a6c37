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

// Forward2D applies the 2D DCT-II to a block of height rows of width
// samples stored row-major in io, using scratch (at least width*height
// elements) for the transposed intermediate.
//
// Rows are transformed first and written transposed into scratch; the second
// pass runs along the columns. The result is stored as min(w,h) rows of
// max(w,h) coefficients (see the package documentation).
func Forward2D(io, scratch []float32, width, height int) {
	check2D(io, scratch, width, height)
	if width == 0 || height == 0 {
		return
	}

	buf := make([]float32, 2*max(width, height))
	line, ks := buf[:max(width, height)], buf[max(width, height):]

	row := line[:width]
	for y := range height {
		transform(io[y*width:(y+1)*width], row, ks, false)
		for x, v := range row {
			scratch[x*height+y] = v
		}
	}

	if width <= height {
		// width rows of height: already the transposed layout
		for x := range width {
			transform(scratch[x*height:(x+1)*height], io[x*height:(x+1)*height], ks, false)
		}
		return
	}

	col := line[:height]
	for x := range width {
		transform(scratch[x*height:(x+1)*height], col, ks, false)
		for y, v := range col {
			io[y*width+x] = v
		}
	}
}

// Inverse2D undoes Forward2D: io holds the coefficient layout produced for a
// targetWidth x targetHeight block and receives targetHeight rows of
// targetWidth samples.
//
// The first pass always runs along the longer axis, so the intermediate is
// transposed once; when the block is tall the second pass writes rows
// directly, otherwise it scatters columns back into io.
func Inverse2D(io, scratch []float32, targetWidth, targetHeight int) {
	check2D(io, scratch, targetWidth, targetHeight)
	if targetWidth == 0 || targetHeight == 0 {
		return
	}

	width := max(targetWidth, targetHeight)
	height := min(targetWidth, targetHeight)

	buf := make([]float32, 2*width)
	line, ks := buf[:width], buf[width:]

	// height rows of width coefficients -> width rows of height
	for y := range height {
		transform(io[y*width:(y+1)*width], line, ks, true)
		for x, v := range line {
			scratch[x*height+y] = v
		}
	}

	if targetHeight >= targetWidth {
		for x := range width {
			transform(scratch[x*height:(x+1)*height], io[x*height:(x+1)*height], ks, true)
		}
		return
	}

	col := line[:height]
	for x := range width {
		transform(scratch[x*height:(x+1)*height], col, ks, true)
		for y, v := range col {
			io[y*width+x] = v
		}
	}
}

// Forward2DInPlace is Forward2D with an internally allocated scratch buffer.
func Forward2DInPlace(io []float32, width, height int) {
	Forward2D(io, make([]float32, width*height), width, height)
}

// Inverse2DInPlace is Inverse2D with an internally allocated scratch buffer.
func Inverse2DInPlace(io []float32, targetWidth, targetHeight int) {
	Inverse2D(io, make([]float32, targetWidth*targetHeight), targetWidth, targetHeight)
}

func check2D(io, scratch []float32, width, height int) {
	if width < 0 || height < 0 {
		panic(invalidLength("%dx%d block", width, height))
	}
	n := width * height
	if len(io) < n {
		panic(invalidLength("%dx%d block in buffer of %d", width, height, len(io)))
	}
	if len(scratch) < n {
		panic(invalidLength("%dx%d block with scratch of %d", width, height, len(scratch)))
	}
}
