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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrExcelUnsupported is returned for spreadsheet files. Convert them to CSV first.
var ErrExcelUnsupported = errors.New("Excel parsing is not implemented. Please convert the file to CSV and try again")

// ErrUnsupportedFile is returned for extensions other than .csv, .tsv and .txt
var ErrUnsupportedFile = errors.New("unsupported file type")

// Open loads a CSV (or TSV) file, transparently decompressing .gz, .bz2, .xz
// and .zst inputs.
func Open(path string, opts ...LoadOption) (*Dataset, *LoadReport, error) {
	compression, inner := DetectCompression(path)

	switch ext := strings.ToLower(filepath.Ext(inner)); ext {
	case ".csv", ".txt":
	case ".tsv":
		opts = append([]LoadOption{WithDelimiter('\t')}, opts...)
	case ".xlsx", ".xls":
		return nil, nil, ErrExcelUnsupported
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}

	f, err := os.Open(path) //nolint:gosec // user-provided path is the point
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	r, cleanup, err := decompress(compression, f)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = cleanup() }()

	ds, report, err := LoadCSV(r, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return ds, report, nil
}
