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

// View is a mutable rectangular window into row-major storage it does not
// own. Sample (x, y) of the view lives at buf[y*stride+x].
type View[T hwy.Lanes] struct {
	buf    []T
	width  int
	height int
	stride int
}

// NewView creates a view of width x height samples over buf, with rows
// stride elements apart.
//
// It returns ErrInvalidDimensions if width or height is zero, if width is
// greater than stride, or if buf is shorter than stride*(height-1)+width.
func NewView[T hwy.Lanes](buf []T, width, height, stride int) (*View[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d view", ErrInvalidDimensions, width, height)
	}
	if width > stride {
		return nil, fmt.Errorf("%w: width %d exceeds stride %d", ErrInvalidDimensions, width, stride)
	}
	need := stride*(height-1) + width
	if len(buf) < need {
		return nil, fmt.Errorf("%w: buffer of %d samples, %dx%d view with stride %d needs %d",
			ErrInvalidDimensions, len(buf), width, height, stride, need)
	}
	return &View[T]{buf: buf[:need:need], width: width, height: height, stride: stride}, nil
}

// Width returns the view width in samples.
func (v *View[T]) Width() int {
	return v.width
}

// Height returns the view height in samples.
func (v *View[T]) Height() int {
	return v.height
}

// Stride returns the distance between rows in elements.
func (v *View[T]) Stride() int {
	return v.stride
}

func (v *View[T]) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.width && y < v.height
}

func (v *View[T]) index(x, y int) int {
	if !v.inBounds(x, y) {
		panic(fmt.Errorf("%w: (%d, %d) not in %dx%d view", ErrOutOfBounds, x, y, v.width, v.height))
	}
	return y*v.stride + x
}

// Get returns the sample at (x, y), or ErrOutOfBounds.
func (v *View[T]) Get(x, y int) (T, error) {
	if !v.inBounds(x, y) {
		var zero T
		return zero, fmt.Errorf("%w: (%d, %d) not in %dx%d view", ErrOutOfBounds, x, y, v.width, v.height)
	}
	return v.buf[y*v.stride+x], nil
}

// At returns the sample at (x, y). It panics with ErrOutOfBounds if the
// coordinate is outside the view.
func (v *View[T]) At(x, y int) T {
	return v.buf[v.index(x, y)]
}

// Set stores s at (x, y). It panics with ErrOutOfBounds if the coordinate
// is outside the view.
func (v *View[T]) Set(x, y int, s T) {
	v.buf[v.index(x, y)] = s
}

// Swap exchanges the samples at (ax, ay) and (bx, by).
func (v *View[T]) Swap(ax, ay, bx, by int) {
	a, b := v.index(ax, ay), v.index(bx, by)
	if a == b {
		return
	}
	v.buf[a], v.buf[b] = v.buf[b], v.buf[a]
}

// Row returns row y limited to the view width.
func (v *View[T]) Row(y int) []T {
	start := v.index(0, y)
	return v.buf[start : start+v.width : start+v.width]
}

// Sub returns the window r of v. The caller is responsible for not using
// overlapping sub-views concurrently.
func (v *View[T]) Sub(r Rect) (*View[T], error) {
	if r.IsEmpty() || r.X0 < 0 || r.Y0 < 0 || r.X1 > v.width || r.Y1 > v.height {
		return nil, fmt.Errorf("%w: rect %+v not in %dx%d view", ErrInvalidDimensions, r, v.width, v.height)
	}
	return NewView(v.buf[r.Y0*v.stride+r.X0:], r.Width(), r.Height(), v.stride)
}

// Partition splits v into nx*ny equally sized tiles that do not overlap,
// returned in row-major tile order. Both dimensions must divide evenly.
func (v *View[T]) Partition(nx, ny int) ([]*View[T], error) {
	if nx <= 0 || ny <= 0 || v.width%nx != 0 || v.height%ny != 0 {
		return nil, fmt.Errorf("%w: cannot split %dx%d view into %dx%d tiles",
			ErrInvalidDimensions, v.width, v.height, nx, ny)
	}
	tw, th := v.width/nx, v.height/ny
	tiles := make([]*View[T], 0, nx*ny)
	for ty := range ny {
		for tx := range nx {
			tile, err := v.Sub(RectOf(tx*tw, ty*th, tw, th))
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, tile)
		}
	}
	return tiles, nil
}

// Fill sets every sample of the view to s.
func (v *View[T]) Fill(s T) {
	if lv, ok := v.Widen(hwy.MaxLanes[T]()); ok {
		splat := hwy.Set(s)
		for y := range lv.Height() {
			for x := range lv.Width() {
				hwy.Store(splat, lv.Lane(x, y))
			}
		}
		return
	}
	for y := range v.height {
		row := v.Row(y)
		for x := range row {
			row[x] = s
		}
	}
}

// CopyFrom fills the view from src, a row-major block of width*height
// samples. Whole lane groups are moved when the view can be widened.
func (v *View[T]) CopyFrom(src []T) {
	if len(src) < v.width*v.height {
		panic(fmt.Errorf("%w: %d samples for %dx%d view", ErrOutOfBounds, len(src), v.width, v.height))
	}
	if lv, ok := v.Widen(hwy.MaxLanes[T]()); ok {
		lanes := lv.Lanes()
		for y := range lv.Height() {
			for x := range lv.Width() {
				i := y*v.width + x*lanes
				copy(lv.Lane(x, y), src[i:i+lanes])
			}
		}
		return
	}
	for y := range v.height {
		copy(v.Row(y), src[y*v.width:(y+1)*v.width])
	}
}

// CopyTo writes the view into dst as a row-major block of width*height
// samples.
func (v *View[T]) CopyTo(dst []T) {
	if len(dst) < v.width*v.height {
		panic(fmt.Errorf("%w: %d samples for %dx%d view", ErrOutOfBounds, len(dst), v.width, v.height))
	}
	for y := range v.height {
		copy(dst[y*v.width:(y+1)*v.width], v.Row(y))
	}
}

// Widen reinterprets the view as groups of lanes samples. It reports false
// unless the width, the stride and the base address are all multiples of
// the lane width.
func (v *View[T]) Widen(lanes int) (*LaneView[T], bool) {
	if lanes <= 0 || v.width%lanes != 0 || v.stride%lanes != 0 {
		return nil, false
	}
	var zero T
	laneBytes := uintptr(lanes) * unsafe.Sizeof(zero)
	if uintptr(unsafe.Pointer(unsafe.SliceData(v.buf)))%laneBytes != 0 {
		return nil, false
	}
	return &LaneView[T]{
		buf:    v.buf,
		lanes:  lanes,
		width:  v.width / lanes,
		height: v.height,
		stride: v.stride / lanes,
	}, true
}

// LaneView is a View whose horizontal unit is a group of lanes samples.
// Each group starts on a lanes*sizeof(T) byte boundary.
type LaneView[T hwy.Lanes] struct {
	buf    []T
	lanes  int
	width  int // in lane groups
	height int
	stride int // in lane groups
}

// Lanes returns the number of samples per group.
func (lv *LaneView[T]) Lanes() int {
	return lv.lanes
}

// Width returns the number of lane groups per row.
func (lv *LaneView[T]) Width() int {
	return lv.width
}

// Height returns the number of rows.
func (lv *LaneView[T]) Height() int {
	return lv.height
}

// Stride returns the distance between rows in lane groups.
func (lv *LaneView[T]) Stride() int {
	return lv.stride
}

// Lane returns the samples of group (x, y).
func (lv *LaneView[T]) Lane(x, y int) []T {
	if x < 0 || y < 0 || x >= lv.width || y >= lv.height {
		panic(fmt.Errorf("%w: lane (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, lv.width, lv.height))
	}
	i := (y*lv.stride + x) * lv.lanes
	return lv.buf[i : i+lv.lanes : i+lv.lanes]
}
