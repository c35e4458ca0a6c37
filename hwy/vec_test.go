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

package hwy

import "testing"

func TestSetStore(t *testing.T) {
	lanes := MaxLanes[float32]()
	dst := make([]float32, lanes+3)
	Store(Set[float32](1.5), dst)
	for i, x := range dst {
		want := float32(1.5)
		if i >= lanes {
			want = 0
		}
		if x != want {
			t.Errorf("dst[%d]: got %v, want %v", i, x, want)
		}
	}

	short := make([]int32, 2)
	Store(Set[int32](7), short)
	for i := range min(len(short), MaxLanes[int32]()) {
		if short[i] != 7 {
			t.Errorf("short[%d]: got %d, want 7", i, short[i])
		}
	}
}
