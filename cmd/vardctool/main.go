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

// Command vardctool checks and times the VarDCT block transforms.
//
// Usage:
//
//	vardctool verify --sizes 1,2,4,8,16,32,64 --seed 7
//	vardctool bench --types Dct8,Afv0,Dct32 --iterations 2000
//	vardctool info
//
// verify compares the FFT-based kernels against direct float64 evaluation
// and exits with status 1 if any check fails. Set HWY_NO_SIMD=1 to force
// scalar alignment.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "vardctool",
		Short:        "Verify and benchmark VarDCT block transforms",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every check")
	root.AddCommand(newVerifyCmd(), newBenchCmd(), newInfoCmd())
	return root
}
