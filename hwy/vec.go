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

// Vec is a portable vector of MaxLanes[T]() lanes. Operations are written
// lane by lane; the compiler is left to vectorize them.
//
// Vec is backed by a heap slice, so building one allocates. Callers build a
// vector once and Store it repeatedly.
type Vec[T Lanes] struct {
	data []T
}

// Store writes as many lanes of v as fit into dst.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data)
}

// Set returns a vector with every lane equal to value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}
