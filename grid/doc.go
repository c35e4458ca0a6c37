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

// Package grid provides the aligned sample buffers the block transforms
// operate on.
//
// A Grid owns a contiguous row-major buffer whose first logical sample is
// aligned to hwy.Alignment(), so that rows whose width is a multiple of the
// lane count start on a register boundary. A View is a non-owning
// rectangular window (width, height, stride) into a Grid or into any
// caller-supplied slice.
//
// # Disjointness
//
// Views do not track aliasing. Two views used at the same time from
// different goroutines must address non-overlapping samples. Views derived
// with View.Partition are disjoint by construction; View.Sub leaves the
// responsibility with the caller.
//
// # Usage Example
//
//	g := grid.New[float32](8, 8)
//	quads, _ := g.View().Partition(2, 2) // four disjoint 4x4 windows
//	quads[3].Set(0, 0, 1)                // sample (4, 4) of g
//
// # Lane Widening
//
// View.Widen reinterprets a window as groups of lanes when the width, the
// stride and the base address are all multiples of the lane width. When any
// condition fails it reports false, and the caller uses the scalar path.
package grid
