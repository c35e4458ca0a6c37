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

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func BenchmarkForward(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{8, 32, 256} {
		in := randomSamples(rng, n)
		out := make([]float32, n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for b.Loop() {
				Forward(in, out)
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	rng := rand.New(rand.NewPCG(2, 2))
	for _, n := range []int{8, 32, 256} {
		in := randomSamples(rng, n)
		out := make([]float32, n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for b.Loop() {
				Inverse(in, out)
			}
		})
	}
}

func BenchmarkInverse2D(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 3))
	for _, s := range [][2]int{{8, 8}, {16, 8}, {32, 32}, {256, 256}} {
		w, h := s[0], s[1]
		coeffs := randomSamples(rng, w*h)
		io := make([]float32, w*h)
		scratch := make([]float32, w*h)
		b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
			for b.Loop() {
				copy(io, coeffs)
				Inverse2D(io, scratch, w, h)
			}
		})
	}
}
