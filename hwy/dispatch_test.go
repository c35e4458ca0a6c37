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

import (
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentTarget(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName: got %q, want %q", CurrentName(), CurrentLevel().String())
	}
	switch w := CurrentWidth(); w {
	case 16, 32, 64:
	default:
		t.Errorf("CurrentWidth: got %d, want 16, 32 or 64", w)
	}
}

func TestMaxLanes(t *testing.T) {
	w := CurrentWidth()
	if got := MaxLanes[float32](); got != w/4 {
		t.Errorf("MaxLanes[float32]: got %d, want %d", got, w/4)
	}
	if got := MaxLanes[float64](); got != w/8 {
		t.Errorf("MaxLanes[float64]: got %d, want %d", got, w/8)
	}
	if got := MaxLanes[uint8](); got != w {
		t.Errorf("MaxLanes[uint8]: got %d, want %d", got, w)
	}
}

func TestAlignment(t *testing.T) {
	align := Alignment()
	if align != 1 && align != wideAlignment {
		t.Fatalf("Alignment: got %d, want 1 or %d", align, wideAlignment)
	}
	if got := AlignmentOf[float32](); got != max(align, 4) {
		t.Errorf("AlignmentOf[float32]: got %d, want %d", got, max(align, 4))
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv with %q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestSetScalarMode(t *testing.T) {
	level, width, name, align := currentLevel, currentWidth, currentName, currentAlign
	defer func() {
		currentLevel, currentWidth, currentName, currentAlign = level, width, name, align
	}()

	setScalarMode()
	if CurrentLevel() != DispatchScalar || CurrentWidth() != 16 || Alignment() != 1 {
		t.Errorf("setScalarMode: got %v/%d/align %d, want scalar/16/align 1",
			CurrentLevel(), CurrentWidth(), Alignment())
	}
	if got := MaxLanes[float32](); got != 4 {
		t.Errorf("MaxLanes[float32] in scalar mode: got %d, want 4", got)
	}
}
