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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damywise/jxl-oxide/grid"
	"github.com/damywise/jxl-oxide/workerpool"
)

func randomBlocks(rng *rand.Rand, n int) []Block {
	types := AllTypes()
	blocks := make([]Block, n)
	for i := range blocks {
		tt := types[rng.IntN(len(types)-3)] // skip the 256 types
		g := coefficientGrid(tt)
		for j := range g.Slice() {
			g.Slice()[j] = rng.Float32()*2 - 1
		}
		blocks[i] = Block{Coeffs: g, Type: tt}
	}
	return blocks
}

func TestTransformAll(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := rand.New(rand.NewPCG(31, 32))
	blocks := randomBlocks(rng, 64)
	want := make([]*grid.Grid[float32], len(blocks))
	for i, b := range blocks {
		want[i] = b.Coeffs.Clone()
		Transform(want[i], b.Type)
	}

	require.NoError(t, TransformAll(pool, blocks))
	for i, b := range blocks {
		assert.Equal(t, want[i].Width(), b.Coeffs.Width(), "block %d (%s)", i, b.Type)
		assert.Equal(t, want[i].Slice(), b.Coeffs.Slice(), "block %d (%s)", i, b.Type)
	}
}

func TestTransformAllNilPool(t *testing.T) {
	g := grid.New[float32](8, 8)
	g.Set(0, 0, 2)
	require.NoError(t, TransformAll(nil, []Block{{Coeffs: g, Type: Dct4}}))
	for _, v := range g.Slice() {
		assert.InDelta(t, 2, v, 1e-6)
	}
}

func TestTransformAllRejects(t *testing.T) {
	good := grid.New[float32](8, 8)
	good.Set(0, 0, 1)

	err := TransformAll(nil, []Block{
		{Coeffs: good, Type: Dct8},
		{Coeffs: grid.New[float32](8, 8), Type: Dct32},
	})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, float32(1), good.At(0, 0), "no block is transformed when one is invalid")

	err = TransformAll(nil, []Block{{Type: Dct8}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	err = TransformAll(nil, []Block{{Coeffs: good, Type: Dct8}, {Coeffs: good, Type: Dct2}})
	assert.ErrorIs(t, err, ErrAliasedBlocks)
}
