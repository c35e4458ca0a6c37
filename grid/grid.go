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

package grid

import (
	"fmt"
	"unsafe"

	"github.com/damywise/jxl-oxide/hwy"
)

// Grid is a single-channel 2D buffer in raster order whose first sample is
// aligned for SIMD access.
//
// Logical sample (x, y) lives at buf[offset+y*width+x]. The padding before
// offset is never exposed.
type Grid[T hwy.Lanes] struct {
	width  int
	height int
	offset int
	buf    []T
}

// New creates a zero-initialized grid with the specified dimensions.
// Zero dimensions are allowed and produce an empty grid; negative ones panic.
func New[T hwy.Lanes](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("%w: %dx%d grid", ErrInvalidDimensions, width, height))
	}
	g := &Grid[T]{width: width, height: height}
	g.alloc()
	return g
}

// FromSlice creates a grid holding a copy of the row-major samples in data.
// It returns ErrInvalidDimensions if data does not hold width*height samples.
func FromSlice[T hwy.Lanes](width, height int, data []T) (*Grid[T], error) {
	if width < 0 || height < 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d grid", ErrInvalidDimensions, len(data), width, height)
	}
	g := New[T](width, height)
	copy(g.Slice(), data)
	return g, nil
}

// alloc sizes the buffer so that some element within the first alignment
// window sits on the alignment boundary, and records its index as offset.
func (g *Grid[T]) alloc() {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	align := hwy.AlignmentOf[T]()

	buf := make([]T, g.width*g.height+align/elemSize-1)
	offset := 0
	if len(buf) > 0 {
		extra := int(uintptr(unsafe.Pointer(unsafe.SliceData(buf))) & uintptr(align-1))
		offset = ((align - extra) % align) / elemSize
	}
	g.buf = buf
	g.offset = offset
}

// Width returns the grid width in samples.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the grid height in samples.
func (g *Grid[T]) Height() int {
	return g.height
}

// Offset returns the number of padding elements before the first sample.
func (g *Grid[T]) Offset() int {
	return g.offset
}

// Len returns the number of logical samples, width*height.
func (g *Grid[T]) Len() int {
	return g.width * g.height
}

func (g *Grid[T]) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid[T]) index(x, y int) int {
	if !g.inBounds(x, y) {
		panic(fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, g.width, g.height))
	}
	return g.offset + y*g.width + x
}

// Get returns the sample at (x, y), or ErrOutOfBounds.
func (g *Grid[T]) Get(x, y int) (T, error) {
	if !g.inBounds(x, y) {
		var zero T
		return zero, fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.buf[g.offset+y*g.width+x], nil
}

// At returns the sample at (x, y). It panics with ErrOutOfBounds if the
// coordinate is outside the grid.
func (g *Grid[T]) At(x, y int) T {
	return g.buf[g.index(x, y)]
}

// Set stores v at (x, y). It panics with ErrOutOfBounds if the coordinate is
// outside the grid.
func (g *Grid[T]) Set(x, y int, v T) {
	g.buf[g.index(x, y)] = v
}

// Slice returns the logical samples as a flat row-major slice of length
// width*height. Padding is excluded and the capacity is clipped, so appends
// never write into the grid.
func (g *Grid[T]) Slice() []T {
	end := g.offset + g.width*g.height
	return g.buf[g.offset:end:end]
}

// Row returns a mutable slice for row y, limited to the grid width.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.height {
		panic(fmt.Errorf("%w: row %d not in %dx%d", ErrOutOfBounds, y, g.width, g.height))
	}
	start := g.offset + y*g.width
	return g.buf[start : start+g.width : start+g.width]
}

// Fill sets every sample to v.
func (g *Grid[T]) Fill(v T) {
	g.View().Fill(v)
}

// Clone creates a deep copy of the grid with its own aligned buffer.
func (g *Grid[T]) Clone() *Grid[T] {
	clone := New[T](g.width, g.height)
	copy(clone.Slice(), g.Slice())
	return clone
}

// Reshape replaces the grid's storage with a zeroed, aligned buffer of the
// new dimensions. The previous samples are discarded.
func (g *Grid[T]) Reshape(width, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("%w: %dx%d grid", ErrInvalidDimensions, width, height))
	}
	g.width = width
	g.height = height
	g.alloc()
}

// View returns a window covering the whole grid.
func (g *Grid[T]) View() *View[T] {
	return &View[T]{
		buf:    g.Slice(),
		width:  g.width,
		height: g.height,
		stride: g.width,
	}
}
