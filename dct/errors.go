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
	"errors"
	"fmt"
)

// ErrInvalidLength is raised when a transform length is not a power of two,
// or when buffers do not match the transform size. It is a programming
// error and is reported by panicking.
var ErrInvalidLength = errors.New("dct: invalid length")

func invalidLength(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidLength}, args...)...)
}
