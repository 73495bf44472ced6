/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cli

import (
	"fmt"

	"github.com/rulego/dataquery"
	"github.com/rulego/dataquery/types"
	"github.com/spf13/cobra"
)

func newExamplesCommand(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List example queries for each dialect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := types.Modes()
			if mode != "" {
				m, err := types.ParseMode(mode)
				if err != nil {
					return err
				}
				modes = []types.Mode{m}
			}

			w := cmd.OutOrStdout()
			for i, m := range modes {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s:\n", m)
				for _, q := range dataquery.Examples(m) {
					fmt.Fprintf(w, "  %s\n", q)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "only list examples for this dialect")
	return cmd
}
