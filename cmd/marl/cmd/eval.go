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

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/marl-lang/marl/encoding/termjson"
	"github.com/marl-lang/marl/marl"
)

func newEvalCmd() *cobra.Command {
	var flagOut string

	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "evaluate a term and print the result",
		Long: `eval reads a JSON-encoded term from the given file (or stdin if the
file is "-" or omitted), evaluates it in the base environment, and prints
the resulting value.

The default output is the marl display form. With --out json or --out yaml
the value is forced recursively and exported; function and contract values
cannot be exported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			expr, err := termjson.Decode(data)
			if err != nil {
				return err
			}
			v := marl.New().BuildExpr(expr)
			if err := v.Err(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch flagOut {
			case "", "text":
				s, err := v.Display()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			case "json":
				x, err := v.Decode()
				if err != nil {
					return err
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(x)
			case "yaml":
				x, err := v.Decode()
				if err != nil {
					return err
				}
				return yaml.NewEncoder(out).Encode(x)
			default:
				return fmt.Errorf("unknown output format %q", flagOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagOut, "out", "", "output format (text, json, yaml)")
	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
