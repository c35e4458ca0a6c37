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

// Package vardct applies the inverse transforms of JPEG XL's variable-size
// DCT mode to coefficient blocks.
//
// Most transform types are plain 2D inverse DCTs of their block size and go
// through package dct. The 8x8 types Dct2, Dct4, Hornuss, Dct4x8, Dct8x4
// and Afv0 to Afv3 have dedicated routines that split the block into
// quadrants or halves.
//
// A coefficient block holds min(w, h) rows of max(w, h) coefficients, the
// layout dct.Forward2D produces. Transform overwrites it with w x h samples.
package vardct
