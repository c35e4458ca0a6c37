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

import "errors"

var (
	// ErrUnknownTransform is returned for transform codes outside the
	// catalogue.
	ErrUnknownTransform = errors.New("vardct: unknown transform type")

	// ErrDimensionMismatch reports a coefficient block whose size does not
	// fit its transform type.
	ErrDimensionMismatch = errors.New("vardct: block does not match transform size")

	// ErrAliasedBlocks reports blocks that would be transformed concurrently
	// through the same grid.
	ErrAliasedBlocks = errors.New("vardct: blocks share a coefficient grid")
)
