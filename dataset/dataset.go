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

import "sort"

// Row maps a column name to a scalar value: float64, string, bool or nil.
type Row map[string]interface{}

// Has reports whether the row carries the column, even with a nil value
func (r Row) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// String stringifies the column value. An absent column yields "undefined"
// and a nil value "null", so that such rows still land in a stable group.
func (r Row) String(column string) string {
	v, ok := r[column]
	if !ok {
		return "undefined"
	}
	return Stringify(v)
}

// Number returns the column value as used by comparisons. ok is false when
// the column is absent or the value is not numeric.
func (r Row) Number(column string) (float64, bool) {
	v, ok := r[column]
	if !ok {
		return 0, false
	}
	return ToNumberStrict(v)
}

// Float returns the column value coerced for aggregation; see ToNumber.
func (r Row) Float(column string) float64 {
	return ToNumber(r[column])
}

// Dataset is an ordered sequence of rows with an ordered column list.
// All rows are assumed, not enforced, to share the first row's columns.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// New builds a dataset. Without explicit columns the first row's keys are
// used in sorted order.
func New(rows []Row, columns ...string) *Dataset {
	if len(columns) == 0 && len(rows) > 0 {
		columns = make([]string, 0, len(rows[0]))
		for k := range rows[0] {
			columns = append(columns, k)
		}
		sort.Strings(columns)
	}
	return &Dataset{Columns: columns, Rows: rows}
}

// Len returns the number of rows; a nil dataset has none
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Empty reports whether there is nothing to analyze
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// HasColumn reports whether the first row carries the column.
func (d *Dataset) HasColumn(column string) bool {
	if d.Empty() {
		return false
	}
	return d.Rows[0].Has(column)
}

// Page returns the rows of a 1-based page. Out-of-range pages are empty.
func (d *Dataset) Page(page, size int) []Row {
	if d.Empty() || page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(d.Rows) {
		return nil
	}
	end := start + size
	if end > len(d.Rows) {
		end = len(d.Rows)
	}
	return d.Rows[start:end]
}

// Pages returns how many pages of the given size the dataset spans
func (d *Dataset) Pages(size int) int {
	if size < 1 {
		return 0
	}
	return (d.Len() + size - 1) / size
}
