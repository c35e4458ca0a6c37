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
	"strconv"
)

// TransformType selects the inverse transform applied to one varblock. The
// values are the codes used by the bitstream. Names read rows by columns, so
// Dct16x8 covers 8 columns and 16 rows of pixels.
type TransformType uint8

const (
	Dct8 TransformType = iota
	Hornuss
	Dct2
	Dct4
	Dct16
	Dct32
	Dct16x8
	Dct8x16
	Dct32x8
	Dct8x32
	Dct32x16
	Dct16x32
	Dct4x8
	Dct8x4
	Afv0
	Afv1
	Afv2
	Afv3
	Dct64
	Dct64x32
	Dct32x64
	Dct128
	Dct128x64
	Dct64x128
	Dct256
	Dct256x128
	Dct128x256

	numTransformTypes = iota
)

var transformNames = [numTransformTypes]string{
	"Dct8", "Hornuss", "Dct2", "Dct4", "Dct16", "Dct32",
	"Dct16x8", "Dct8x16", "Dct32x8", "Dct8x32", "Dct32x16", "Dct16x32",
	"Dct4x8", "Dct8x4", "Afv0", "Afv1", "Afv2", "Afv3",
	"Dct64", "Dct64x32", "Dct32x64", "Dct128", "Dct128x64", "Dct64x128",
	"Dct256", "Dct256x128", "Dct128x256",
}

// coveredBlocks holds the footprint of each type in 8x8 blocks, as
// {columns, rows}.
var coveredBlocks = [numTransformTypes][2]uint8{
	Dct8:       {1, 1},
	Hornuss:    {1, 1},
	Dct2:       {1, 1},
	Dct4:       {1, 1},
	Dct16:      {2, 2},
	Dct32:      {4, 4},
	Dct16x8:    {1, 2},
	Dct8x16:    {2, 1},
	Dct32x8:    {1, 4},
	Dct8x32:    {4, 1},
	Dct32x16:   {2, 4},
	Dct16x32:   {4, 2},
	Dct4x8:     {1, 1},
	Dct8x4:     {1, 1},
	Afv0:       {1, 1},
	Afv1:       {1, 1},
	Afv2:       {1, 1},
	Afv3:       {1, 1},
	Dct64:      {8, 8},
	Dct64x32:   {4, 8},
	Dct32x64:   {8, 4},
	Dct128:     {16, 16},
	Dct128x64:  {8, 16},
	Dct64x128:  {16, 8},
	Dct256:     {32, 32},
	Dct256x128: {16, 32},
	Dct128x256: {32, 16},
}

// FromCode validates a transform code read from the bitstream.
func FromCode(code int) (TransformType, error) {
	if code < 0 || code >= numTransformTypes {
		return 0, fmt.Errorf("%w: code %d", ErrUnknownTransform, code)
	}
	return TransformType(code), nil
}

// ParseTransformType looks a transform type up by its name, e.g. "Dct16x8".
func ParseTransformType(name string) (TransformType, error) {
	for i, n := range transformNames {
		if n == name {
			return TransformType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
}

// AllTypes returns every transform type in code order.
func AllTypes() []TransformType {
	types := make([]TransformType, numTransformTypes)
	for i := range types {
		types[i] = TransformType(i)
	}
	return types
}

// Valid reports whether t is in the catalogue.
func (t TransformType) Valid() bool {
	return int(t) < numTransformTypes
}

func (t TransformType) String() string {
	if !t.Valid() {
		return "TransformType(" + strconv.Itoa(int(t)) + ")"
	}
	return transformNames[t]
}

// CoveredBlocks returns the footprint of t in 8x8 blocks. It panics with
// ErrUnknownTransform if t is not in the catalogue.
func (t TransformType) CoveredBlocks() (columns, rows int) {
	if !t.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownTransform, uint8(t)))
	}
	b := coveredBlocks[t]
	return int(b[0]), int(b[1])
}

// Size returns the pixel width and height produced by t.
func (t TransformType) Size() (width, height int) {
	columns, rows := t.CoveredBlocks()
	return columns * blockDim, rows * blockDim
}

// CoefficientSize returns the dimensions of the coefficient block t
// consumes: min(width, height) rows of max(width, height) coefficients.
func (t TransformType) CoefficientSize() (width, height int) {
	w, h := t.Size()
	return max(w, h), min(w, h)
}

// isSmall reports whether t has a dedicated 8x8 routine instead of the
// general 2D inverse DCT.
func (t TransformType) isSmall() bool {
	switch t {
	case Dct2, Dct4, Hornuss, Dct4x8, Dct8x4, Afv0, Afv1, Afv2, Afv3:
		return true
	}
	return false
}
