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

// Package cli implements the dataquery command line.
package cli

import (
	"fmt"
	"io"

	"github.com/rulego/dataquery"
	"github.com/rulego/dataquery/dataset"
	"github.com/rulego/dataquery/internal/config"
	"github.com/rulego/dataquery/logger"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	cfgFile  string
	file     string
	sample   bool
	logLevel string

	cfg *config.Global
	log logger.Logger
}

// NewRootCommand builds the dataquery command tree
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "dataquery",
		Short:         "Analyze CSV data with natural language, formulas, filters or expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (default is ~/.dataquery/config.yaml)")
	f.StringVarP(&a.file, "file", "f", "", "CSV file to analyze (.csv, .tsv, optionally .gz/.bz2/.xz/.zst)")
	f.BoolVar(&a.sample, "sample", false, "use the built-in sample sales data")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, off (overrides config)")

	root.AddCommand(
		newAnalyzeCommand(a),
		newShowCommand(a),
		newChartCommand(a),
		newExamplesCommand(a),
		newConfigCommand(a),
	)
	return root
}

// Execute runs the command line with the given arguments and returns the
// process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	levelName := cfg.LogLevel
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.log = logger.NewLogger(level, cmd.ErrOrStderr())
	return nil
}

// loadDataset reads --file, or returns the sample data when no file is given
func (a *app) loadDataset() (*dataset.Dataset, error) {
	if a.file != "" && a.sample {
		return nil, fmt.Errorf("--file and --sample are mutually exclusive")
	}
	if a.file == "" {
		return dataset.Sample(), nil
	}

	delimiter := []rune(a.cfg.Delimiter)[0]
	ds, report, err := dataset.Open(a.file,
		dataset.WithDelimiter(delimiter),
		dataset.WithLogger(a.log.Named("dataset")),
	)
	if err != nil {
		return nil, err
	}
	a.log.Info("loaded %d rows from %s (%d lines skipped)", ds.Len(), a.file, len(report.Skipped))
	return ds, nil
}

func (a *app) engine() (*dataquery.Engine, error) {
	tag, err := language.Parse(a.cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", a.cfg.Locale, err)
	}
	opts := []dataquery.Option{
		dataquery.WithLogger(a.log),
		dataquery.WithLocale(tag),
	}
	if a.cfg.CompositeGroupBy {
		opts = append(opts, dataquery.WithCompositeGroupBy())
	}
	return dataquery.New(opts...), nil
}
