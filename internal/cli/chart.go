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

	"github.com/rulego/dataquery/chart"
	"github.com/spf13/cobra"
)

// chartOutput is what the chart command prints
type chartOutput struct {
	Config chart.Config  `json:"config" yaml:"config"`
	Series []string      `json:"series,omitempty" yaml:"series,omitempty"`
	Data   []chart.Point `json:"data" yaml:"data"`
}

func newChartCommand(a *app) *cobra.Command {
	var chartType, output string
	var cfg chart.Config
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Shape the data into a chart series",
		Long: `Shape the data into a chart series.

Without --x the first column is used. Without --y the first column holding
a number in the first row is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != OutputJSON && output != OutputYAML {
				return fmt.Errorf("invalid output %q (use json or yaml)", output)
			}
			t, err := chart.ParseType(chartType)
			if err != nil {
				return err
			}
			cfg.Type = t

			ds, err := a.loadDataset()
			if err != nil {
				return err
			}
			cfg = cfg.WithDefaults(ds)
			out := chartOutput{Config: cfg, Data: chart.Process(ds, cfg)}
			if t == chart.Bar || t == chart.Line {
				out.Series = chart.Series(out.Data)
			}
			if output == OutputYAML {
				return writeYAML(cmd.OutOrStdout(), out)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&chartType, "type", "t", string(chart.Bar), "chart type: bar, line, pie, scatter")
	f.StringVar(&cfg.XAxis, "x", "", "column for the x axis (default first column)")
	f.StringVar(&cfg.YAxis, "y", "", "numeric column for the y axis (default first numeric column)")
	f.StringVar(&cfg.GroupBy, "group", "", "optional column to split series by")
	f.StringVarP(&output, "output", "o", OutputJSON, "output format: json or yaml")
	return cmd
}
