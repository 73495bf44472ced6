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

package table

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rulego/dataquery/dataset"
	"github.com/rulego/dataquery/types"
)

// minColumnWidth is the narrowest a column is drawn
const minColumnWidth = 4

// WriteRows writes rows as a bordered table followed by a row count.
// Columns follow fieldOrder; columns present in the rows but missing from
// fieldOrder are appended in alphabetical order. Absent cells are blank.
func WriteRows(w io.Writer, rows []dataset.Row, fieldOrder []string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(0 rows)")
		return
	}

	columns := orderColumns(rows, fieldOrder)
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for c, col := range columns {
			if row.Has(col) {
				cells[r][c] = dataset.Stringify(row[col])
			}
		}
	}
	write(w, columns, cells)
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

// WriteGroups writes a group key -> value mapping as a two-column table,
// sorted by key
func WriteGroups(w io.Writer, groups map[string]float64, keyHeader, valueHeader string) {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cells := make([][]string, len(keys))
	for i, k := range keys {
		cells[i] = []string{k, dataset.FormatNumber(groups[k])}
	}
	write(w, []string{keyHeader, valueHeader}, cells)
	fmt.Fprintf(w, "(%d groups)\n", len(keys))
}

// WriteResult renders an analysis result: rows and groups as tables, a
// summary as a key/value table and anything else as plain text.
func WriteResult(w io.Writer, result *types.Result, fieldOrder []string) {
	switch result.Kind {
	case types.ResultRows:
		WriteRows(w, result.Rows.Data, fieldOrder)
	case types.ResultGroups:
		WriteGroups(w, result.Groups, "group", "value")
	case types.ResultSummary:
		write(w, []string{"result", "description", "formula"}, [][]string{{
			dataset.FormatNumber(result.Summary.Result),
			result.Summary.Description,
			result.Summary.Formula,
		}})
	default:
		fmt.Fprintln(w, result.String())
	}
}

func orderColumns(rows []dataset.Row, fieldOrder []string) []string {
	columnSet := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			columnSet[col] = true
		}
	}

	columns := make([]string, 0, len(columnSet))
	for _, field := range fieldOrder {
		if columnSet[field] {
			columns = append(columns, field)
			delete(columnSet, field)
		}
	}
	rest := make([]string, 0, len(columnSet))
	for col := range columnSet {
		rest = append(rest, col)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func write(w io.Writer, columns []string, cells [][]string) {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = utf8.RuneCountInString(col)
		for _, row := range cells {
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
		if widths[i] < minColumnWidth {
			widths[i] = minColumnWidth
		}
	}

	border := Border(widths)
	fmt.Fprintln(w, border)
	writeLine(w, columns, widths)
	fmt.Fprintln(w, border)
	for _, row := range cells {
		writeLine(w, row, widths)
	}
	fmt.Fprintln(w, border)
}

func writeLine(w io.Writer, values []string, widths []int) {
	var b strings.Builder
	b.WriteString("|")
	for i, v := range values {
		fmt.Fprintf(&b, " %-*s |", widths[i], v)
	}
	fmt.Fprintln(w, b.String())
}

// Border returns a +---+ border line for the given column widths
func Border(widths []int) string {
	var b strings.Builder
	b.WriteString("+")
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	return b.String()
}
