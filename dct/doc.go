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

// Package dct implements the orthonormal type-II discrete cosine transform
// and its inverse (type-III) for power-of-two lengths, in one and two
// dimensions.
//
// # Scaling
//
// The forward transform of x[0..n) is
//
//	X[0] = 1/n     * sum_i x[i]
//	X[k] = sqrt2/n * sum_i x[i] * cos((2i+1)k*pi / 2n)    k > 0
//
// and the inverse reconstructs
//
//	x[i] = X[0] + sqrt2 * sum_{k>0} X[k] * cos((2i+1)k*pi / 2n)
//
// so that Inverse(Forward(x)) == x up to float32 rounding.
//
// # Algorithm
//
// Lengths 1 and 2 are computed directly. Longer transforms reorder the input
// into an even/odd layout, pack it into n/2 complex values, run an iterative
// radix-2 FFT of length n/2 (bit-reversal reorder followed by Cooley-Tukey
// butterflies), and rotate the result by twiddle factors taken from a
// length-4n table. Twiddle tables are computed once per size and shared.
//
// # 2D Layout
//
// Forward2D and Inverse2D store a coefficient block as min(w,h) rows of
// max(w,h) coefficients. For wide blocks entry (x, y) is horizontal frequency
// x and vertical frequency y; for square and tall blocks the layout is
// transposed. This is the layout VarDCT coefficient blocks use.
package dct
