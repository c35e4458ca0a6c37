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

	"github.com/samber/lo"

	"github.com/damywise/jxl-oxide/grid"
	"github.com/damywise/jxl-oxide/workerpool"
)

// Block is one varblock awaiting its inverse transform. Each Block owns its
// coefficient grid, so distinct blocks can be transformed concurrently.
type Block struct {
	Coeffs *grid.Grid[float32]
	Type   TransformType
}

// TransformAll checks every block and then transforms them on pool. A nil
// pool transforms them on the calling goroutine. Nothing is transformed if
// any block fails Check or two blocks share a grid.
func TransformAll(pool *workerpool.Pool, blocks []Block) error {
	for i, b := range blocks {
		if b.Coeffs == nil {
			return fmt.Errorf("%w: block %d has no coefficients", ErrDimensionMismatch, i)
		}
		if err := Check(b.Coeffs, b.Type); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}

	if dup := lo.FindDuplicatesBy(blocks, func(b Block) *grid.Grid[float32] { return b.Coeffs }); len(dup) > 0 {
		return fmt.Errorf("%w: %d grids appear in more than one block", ErrAliasedBlocks, len(dup))
	}

	pool.ParallelForAtomic(len(blocks), func(i int) {
		Transform(blocks[i].Coeffs, blocks[i].Type)
	})
	return nil
}
