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

package main

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/damywise/jxl-oxide/grid"
	"github.com/damywise/jxl-oxide/vardct"
	"github.com/damywise/jxl-oxide/workerpool"
)

type benchOptions struct {
	types      []string
	iterations int
	seed       uint64
	workers    int
}

// benchResult is the timing of one transform type.
type benchResult struct {
	typ     vardct.TransformType
	blocks  int
	elapsed time.Duration
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the inverse transform of each block type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := parseTypes(opts.types)
			if err != nil {
				return err
			}
			pool := workerpool.New(opts.workers)
			defer pool.Close()

			results, err := runBench(pool, types, opts)
			if err != nil {
				return err
			}
			for _, r := range results {
				slog.Info("bench", "type", r.typ, "blocks", r.blocks, "elapsed", r.elapsed,
					"per_block", r.elapsed/time.Duration(r.blocks))
			}
			total := lo.SumBy(results, func(r benchResult) time.Duration { return r.elapsed })
			slog.Info("bench done", "types", len(results), "elapsed", total)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&opts.types, "types", nil, "transform types to time, e.g. Dct8,Afv0 (default all)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 1000, "work per transform type, in 8x8 blocks")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "worker goroutines (0 uses GOMAXPROCS)")
	return cmd
}

// parseTypes resolves type names. No names selects every type.
func parseTypes(names []string) ([]vardct.TransformType, error) {
	if len(names) == 0 {
		return vardct.AllTypes(), nil
	}
	var errs []error
	types := lo.FilterMap(names, func(name string, _ int) (vardct.TransformType, bool) {
		t, err := vardct.ParseTransformType(name)
		if err != nil {
			errs = append(errs, err)
			return 0, false
		}
		return t, true
	})
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return lo.Uniq(types), nil
}

func runBench(pool *workerpool.Pool, types []vardct.TransformType, opts benchOptions) ([]benchResult, error) {
	rng := rand.New(rand.NewPCG(opts.seed, 0))

	results := make([]benchResult, 0, len(types))
	for _, t := range types {
		// Larger types get fewer blocks so each type does the same work.
		w, h := t.CoefficientSize()
		blocks := make([]vardct.Block, max(opts.iterations*64/(w*h), 1))
		for i := range blocks {
			g := grid.New[float32](w, h)
			for j := range g.Slice() {
				g.Slice()[j] = rng.Float32()*2 - 1
			}
			blocks[i] = vardct.Block{Coeffs: g, Type: t}
		}

		start := time.Now()
		if err := vardct.TransformAll(pool, blocks); err != nil {
			return nil, err
		}
		elapsed := time.Since(start)
		slog.Debug("timed", "type", t, "coefficients", w*h, "elapsed", elapsed)
		results = append(results, benchResult{typ: t, blocks: len(blocks), elapsed: elapsed})
	}
	return results, nil
}
