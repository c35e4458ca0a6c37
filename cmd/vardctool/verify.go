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
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/damywise/jxl-oxide/dct"
	"github.com/damywise/jxl-oxide/workerpool"
)

var errChecksFailed = errors.New("verification failed")

type verifyOptions struct {
	sizes   []int
	seed    uint64
	workers int
}

// checkResult is the outcome of one kernel comparison.
type checkResult struct {
	name   string
	shape  string
	maxErr float64
	ok     bool
}

func newVerifyCmd() *cobra.Command {
	opts := verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the DCT kernels against direct evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bad := lo.Reject(opts.sizes, func(n int, _ int) bool { return isPowerOfTwo(n) }); len(bad) > 0 {
				return fmt.Errorf("sizes must be powers of two, got %v", bad)
			}
			pool := workerpool.New(opts.workers)
			defer pool.Close()

			results := runVerify(pool, opts)
			failed := lo.Filter(results, func(r checkResult, _ int) bool { return !r.ok })
			for _, r := range failed {
				slog.Error("check failed", "check", r.name, "shape", r.shape, "max_err", r.maxErr)
			}
			worst := lo.MaxBy(results, func(a, b checkResult) bool { return a.maxErr > b.maxErr })
			slog.Info("verify done", "checks", len(results), "failed", len(failed),
				"worst", worst.name+" "+worst.shape, "max_err", worst.maxErr)
			if len(failed) > 0 {
				return fmt.Errorf("%w: %d of %d checks", errChecksFailed, len(failed), len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&opts.sizes, "sizes", []int{1, 2, 4, 8, 16, 32, 64}, "transform lengths to check")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "worker goroutines (0 uses GOMAXPROCS)")
	return cmd
}

// runVerify checks every size in 1D and every pair of sizes in 2D. Each
// check draws from its own generator, so results do not depend on
// scheduling.
func runVerify(pool *workerpool.Pool, opts verifyOptions) []checkResult {
	type job func(rng *rand.Rand) []checkResult
	var jobs []job
	for _, n := range opts.sizes {
		jobs = append(jobs, func(rng *rand.Rand) []checkResult { return check1D(rng, n) })
	}
	for _, w := range opts.sizes {
		for _, h := range opts.sizes {
			jobs = append(jobs, func(rng *rand.Rand) []checkResult { return check2D(rng, w, h) })
		}
	}

	out := make([][]checkResult, len(jobs))
	pool.ParallelForAtomic(len(jobs), func(i int) {
		out[i] = jobs[i](rand.New(rand.NewPCG(opts.seed, uint64(i))))
	})
	results := lo.Flatten(out)
	for _, r := range results {
		slog.Debug("check", "check", r.name, "shape", r.shape, "max_err", r.maxErr, "ok", r.ok)
	}
	return results
}

func check1D(rng *rand.Rand, n int) []checkResult {
	shape := fmt.Sprint(n)
	in := randomSamples(rng, n)

	coeffs := make([]float32, n)
	dct.Forward(in, coeffs)
	ref := dct.ReferenceForward(widen(in))

	// Coefficients are compared in 1/65536 steps.
	var refErr float64
	ok := true
	for k := range n {
		got := math.Round(float64(coeffs[k]) * 65536)
		want := math.Round(ref[k] * 65536)
		refErr = max(refErr, math.Abs(got-want))
		ok = ok && math.Abs(got-want) <= 1
	}

	back := make([]float32, n)
	dct.Inverse(coeffs, back)
	roundTrip := maxAbsDiff(back, widen(in))

	return []checkResult{
		{name: "forward-1d", shape: shape, maxErr: refErr / 65536, ok: ok},
		{name: "roundtrip-1d", shape: shape, maxErr: roundTrip, ok: roundTrip <= 1e-4},
	}
}

func check2D(rng *rand.Rand, w, h int) []checkResult {
	shape := fmt.Sprintf("%dx%d", w, h)
	pixels := randomSamples(rng, w*h)

	io := append([]float32(nil), pixels...)
	scratch := make([]float32, w*h)
	dct.Forward2D(io, scratch, w, h)
	refErr := maxAbsDiff(io, dct.Reference2D(widen(pixels), w, h))

	dct.Inverse2D(io, scratch, w, h)
	roundTrip := maxAbsDiff(io, widen(pixels))

	return []checkResult{
		{name: "forward-2d", shape: shape, maxErr: refErr, ok: refErr <= 1e-5},
		{name: "roundtrip-2d", shape: shape, maxErr: roundTrip, ok: roundTrip <= 1e-4},
	}
}

func randomSamples(rng *rand.Rand, n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = rng.Float32()*2 - 1
	}
	return s
}

func widen(s []float32) []float64 {
	return lo.Map(s, func(v float32, _ int) float64 { return float64(v) })
}

func maxAbsDiff(got []float32, want []float64) float64 {
	var d float64
	for i, v := range got {
		d = max(d, math.Abs(float64(v)-want[i]))
	}
	return d
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
