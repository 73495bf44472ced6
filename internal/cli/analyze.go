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
	"strings"

	"github.com/rulego/dataquery/types"
	"github.com/spf13/cobra"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	var mode, output string
	cmd := &cobra.Command{
		Use:   "analyze QUERY",
		Short: "Run one query against the data",
		Long: `Run one query in the selected dialect:

  natural   What is the average Sales for each Region?
  formulas  AVG(Sales) GROUP BY Region
  filters   Sales > 60 ORDER BY Sales DESC
  custom    sumBy(data, "Profit", "Region")`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode == "" {
				mode = a.cfg.Mode
			}
			if output == "" {
				output = a.cfg.Output
			}
			m, err := types.ParseMode(mode)
			if err != nil {
				return err
			}

			ds, err := a.loadDataset()
			if err != nil {
				return err
			}
			engine, err := a.engine()
			if err != nil {
				return err
			}
			result, err := engine.Analyze(ds, strings.Join(args, " "), m)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), output, result, ds.Columns)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "query dialect: natural, formulas, filters, custom (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json, yaml, table (default from config)")
	return cmd
}
