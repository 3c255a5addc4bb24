// Copyright 2026 The Marl Authors
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

// Package cmd implements the marl command line.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marl-lang/marl/marl/errors"
)

// New creates the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marl",
		Short: "marl evaluates lazy, contract-validated configuration terms.",
		Long: `marl evaluates configuration terms under a call-by-need semantics
with contract checking, blame attribution, and record merging.

Terms are read in their JSON encoding; see the termjson package for the
format. Evaluation either prints the resulting value or reports the
contract or evaluation error with full provenance.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newEvalCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Main runs the marl tool and returns its exit code.
func Main() int {
	if err := New().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		return 1
	}
	return 0
}
