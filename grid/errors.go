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

package grid

import "errors"

var (
	// ErrOutOfBounds is raised when a coordinate lies outside a grid or view.
	// It signals a programming error in the caller.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidDimensions is returned when a view or partition cannot be
	// constructed over the given region.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
)
