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
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Search returns the rows where some column's text contains term, ignoring
// case. Absent and nil cells never match. The receiver is not modified.
func (d *Dataset) Search(term string) *Dataset {
	out := &Dataset{Columns: d.columns()}
	if d.Empty() {
		return out
	}
	needle := strings.ToLower(term)
	for _, row := range d.Rows {
		if row.contains(out.Columns, needle) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func (r Row) contains(columns []string, needle string) bool {
	for _, col := range columns {
		v, ok := r[col]
		if !ok || v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(Stringify(v)), needle) {
			return true
		}
	}
	return false
}

// SortBy returns a copy of the dataset ordered on column. Two numeric values
// compare as numbers, anything else compares as lowercased text using the
// collation rules of locale. Equal rows keep their order.
func (d *Dataset) SortBy(column string, desc bool, locale language.Tag) *Dataset {
	out := &Dataset{Columns: d.columns()}
	if d.Empty() {
		return out
	}
	out.Rows = make([]Row, len(d.Rows))
	copy(out.Rows, d.Rows)

	// Collator is not safe for concurrent use
	coll := collate.New(locale)
	sort.SliceStable(out.Rows, func(i, j int) bool {
		if desc {
			return CompareRows(coll, column, out.Rows[j], out.Rows[i]) < 0
		}
		return CompareRows(coll, column, out.Rows[i], out.Rows[j]) < 0
	})
	return out
}

// CompareRows orders two rows on column and returns -1, 0 or 1
func CompareRows(coll *collate.Collator, column string, a, b Row) int {
	x, okA := a.Number(column)
	y, okB := b.Number(column)
	if okA && okB {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	return coll.CompareString(strings.ToLower(a.String(column)), strings.ToLower(b.String(column)))
}

func (d *Dataset) columns() []string {
	if d == nil {
		return nil
	}
	return d.Columns
}
