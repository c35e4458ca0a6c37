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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/damywise/jxl-oxide/hwy"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD target and grid alignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "target:      %s (%s)\n", hwy.CurrentName(), hwy.CurrentLevel())
			fmt.Fprintf(out, "width:       %d bytes\n", hwy.CurrentWidth())
			fmt.Fprintf(out, "float lanes: %d\n", hwy.MaxLanes[float32]())
			fmt.Fprintf(out, "alignment:   %d bytes\n", hwy.AlignmentOf[float32]())
			fmt.Fprintf(out, "HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())
			return nil
		},
	}
}
