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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damywise/jxl-oxide/vardct"
	"github.com/damywise/jxl-oxide/workerpool"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestVerifyCommand(t *testing.T) {
	_, logs, err := execute(t, "verify", "--sizes", "1,2,4,8,16", "--workers", "2")
	require.NoError(t, err, logs)
	assert.Contains(t, logs, "verify done")
	assert.Contains(t, logs, "failed=0")
}

func TestVerifyRejectsSizes(t *testing.T) {
	_, _, err := execute(t, "verify", "--sizes", "4,6")
	assert.ErrorContains(t, err, "powers of two")
}

func TestBenchCommand(t *testing.T) {
	_, logs, err := execute(t, "bench", "--types", "Dct8,Afv0,Dct16x8", "--iterations", "8")
	require.NoError(t, err, logs)
	assert.Contains(t, logs, "type=Afv0")
	assert.Contains(t, logs, "bench done")
}

func TestBenchUnknownType(t *testing.T) {
	_, _, err := execute(t, "bench", "--types", "Dct8,Dct12")
	assert.ErrorIs(t, err, vardct.ErrUnknownTransform)
}

func TestInfoCommand(t *testing.T) {
	out, _, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "alignment:")
	assert.Contains(t, out, "target:")
}

func TestRunVerifyDeterministic(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	opts := verifyOptions{sizes: []int{2, 8, 32}, seed: 9}
	a := runVerify(pool, opts)
	b := runVerify(nil, opts)
	require.Len(t, a, 2*3+2*9)
	assert.Equal(t, b, a)
	for _, r := range a {
		assert.True(t, r.ok, "%s %s: max error %g", r.name, r.shape, r.maxErr)
	}
}

func TestParseTypes(t *testing.T) {
	all, err := parseTypes(nil)
	require.NoError(t, err)
	assert.Len(t, all, 27)

	types, err := parseTypes([]string{"Afv2", "Dct4", "Afv2"})
	require.NoError(t, err)
	assert.Equal(t, []vardct.TransformType{vardct.Afv2, vardct.Dct4}, types)
}
