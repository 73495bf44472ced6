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

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rulego/dataquery/logger"
)

// ErrEmptyInput is returned when the CSV has no header line
var ErrEmptyInput = errors.New("CSV input is empty")

// SkippedLine describes a data line dropped because its width differs from the header
type SkippedLine struct {
	Line     int
	Fields   int
	Expected int
}

// LoadReport summarises a CSV load
type LoadReport struct {
	// Lines is the number of data lines read, skipped ones included
	Lines   int
	Skipped []SkippedLine
}

type loadConfig struct {
	delimiter rune
	infer     bool
	log       logger.Logger
}

// LoadOption customises LoadCSV
type LoadOption func(*loadConfig)

// WithDelimiter sets the field separator (default ',')
func WithDelimiter(r rune) LoadOption {
	return func(c *loadConfig) {
		c.delimiter = r
	}
}

// WithoutTypeInference keeps every cell as a string
func WithoutTypeInference() LoadOption {
	return func(c *loadConfig) {
		c.infer = false
	}
}

// WithLogger sets the logger used for skipped-line warnings
func WithLogger(l logger.Logger) LoadOption {
	return func(c *loadConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// LoadCSV reads a CSV document whose first line is the header. Blank lines
// are ignored, lines with a different number of fields than the header are
// skipped with a warning, and cells that parse as numbers become float64.
func LoadCSV(r io.Reader, opts ...LoadOption) (*Dataset, *LoadReport, error) {
	cfg := loadConfig{delimiter: ',', infer: true, log: logger.GetDefault()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.log.Named("csv")

	reader := csv.NewReader(r)
	reader.Comma = cfg.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyInput
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make([]string, 0, len(header))
	seen := make(map[string]bool, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if !seen[header[i]] {
			seen[header[i]] = true
			columns = append(columns, header[i])
		}
	}

	report := &LoadReport{}
	rows := make([]Row, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if isBlank(record) {
			continue
		}
		report.Lines++
		line, _ := reader.FieldPos(0)

		if len(record) != len(header) {
			log.Warn("Line %d has %d values, expected %d", line, len(record), len(header))
			report.Skipped = append(report.Skipped, SkippedLine{Line: line, Fields: len(record), Expected: len(header)})
			continue
		}

		row := make(Row, len(header))
		for i, name := range header {
			row[name] = convertCell(record[i], cfg.infer)
		}
		rows = append(rows, row)
	}

	log.Debug("loaded %d rows, skipped %d", len(rows), len(report.Skipped))
	return &Dataset{Columns: columns, Rows: rows}, report, nil
}

func isBlank(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

// convertCell trims the cell and turns numeric text into float64
func convertCell(cell string, infer bool) interface{} {
	value := strings.TrimSpace(cell)
	if !infer || value == "" {
		return value
	}
	if f, ok := parseNumber(value); ok {
		return f
	}
	return value
}
