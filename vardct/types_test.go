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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCode(t *testing.T) {
	for code := range numTransformTypes {
		tt, err := FromCode(code)
		require.NoError(t, err)
		assert.Equal(t, TransformType(code), tt)
	}
	for _, code := range []int{-1, 27, 255} {
		_, err := FromCode(code)
		assert.ErrorIs(t, err, ErrUnknownTransform, "code %d", code)
	}
}

func TestParseTransformType(t *testing.T) {
	for _, tt := range AllTypes() {
		got, err := ParseTransformType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	}
	_, err := ParseTransformType("Dct12")
	assert.ErrorIs(t, err, ErrUnknownTransform)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Hornuss", Hornuss.String())
	assert.Equal(t, "Dct128x256", Dct128x256.String())
	assert.Equal(t, "TransformType(30)", TransformType(30).String())
}

func TestSize(t *testing.T) {
	tests := []struct {
		t             TransformType
		width, height int
	}{
		{Dct8, 8, 8},
		{Dct2, 8, 8},
		{Afv3, 8, 8},
		{Dct16x8, 8, 16},
		{Dct8x16, 16, 8},
		{Dct32x8, 8, 32},
		{Dct16x32, 32, 16},
		{Dct64x32, 32, 64},
		{Dct128, 128, 128},
		{Dct256x128, 128, 256},
		{Dct128x256, 256, 128},
	}
	for _, tc := range tests {
		w, h := tc.t.Size()
		assert.Equal(t, tc.width, w, "%s width", tc.t)
		assert.Equal(t, tc.height, h, "%s height", tc.t)
	}
}

func TestCoefficientSize(t *testing.T) {
	w, h := Dct16x8.CoefficientSize()
	assert.Equal(t, [2]int{16, 8}, [2]int{w, h})
	w, h = Dct8x16.CoefficientSize()
	assert.Equal(t, [2]int{16, 8}, [2]int{w, h})
	w, h = Dct32.CoefficientSize()
	assert.Equal(t, [2]int{32, 32}, [2]int{w, h})
}

func TestSizeUnknownType(t *testing.T) {
	requirePanicsWith(t, ErrUnknownTransform, func() { TransformType(27).CoveredBlocks() })
	requirePanicsWith(t, ErrUnknownTransform, func() { TransformType(27).Size() })
	requirePanicsWith(t, ErrUnknownTransform, func() { TransformType(255).CoefficientSize() })
}

func TestTransposedPairs(t *testing.T) {
	pairs := [][2]TransformType{
		{Dct16x8, Dct8x16}, {Dct32x8, Dct8x32}, {Dct32x16, Dct16x32},
		{Dct64x32, Dct32x64}, {Dct128x64, Dct64x128}, {Dct256x128, Dct128x256},
	}
	for _, p := range pairs {
		w0, h0 := p[0].Size()
		w1, h1 := p[1].Size()
		assert.Equal(t, [2]int{w0, h0}, [2]int{h1, w1}, "%s vs %s", p[0], p[1])
	}
}
