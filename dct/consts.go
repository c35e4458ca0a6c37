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
	"math"
	"math/bits"
	"sync"
)

// twiddles holds cos(2*pi*j/n) and sin(2*pi*j/n) for j in [0, n).
type twiddles struct {
	cos []float32
	sin []float32
}

// maxCachedLog bounds the table cache; 4n for a 256-point transform is 2^10.
const maxCachedLog = 16

var (
	tableOnce [maxCachedLog + 1]sync.Once
	tables    [maxCachedLog + 1]*twiddles
)

// cosSin returns the twiddle table for n, which must be a power of two.
func cosSin(n int) *twiddles {
	log := bits.TrailingZeros(uint(n))
	if log > maxCachedLog {
		return newTwiddles(n)
	}
	tableOnce[log].Do(func() {
		tables[log] = newTwiddles(n)
	})
	return tables[log]
}

func newTwiddles(n int) *twiddles {
	t := &twiddles{
		cos: make([]float32, n),
		sin: make([]float32, n),
	}
	for j := range n {
		s, c := math.Sincos(2 * math.Pi * float64(j) / float64(n))
		t.cos[j] = float32(c)
		t.sin[j] = float32(s)
	}
	return t
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
