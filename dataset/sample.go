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

// SampleColumns is the column order of the sample dataset
var SampleColumns = []string{"Month", "Sales", "Expenses", "Profit", "Region"}

// Sample returns a fresh copy of the 12-row demo dataset: monthly sales,
// expenses and profit across four regions of three months each.
func Sample() *Dataset {
	raw := []struct {
		month                   string
		sales, expenses, profit float64
		region                  string
	}{
		{"January", 65, 50, 15, "North"},
		{"February", 59, 40, 19, "North"},
		{"March", 80, 55, 25, "North"},
		{"April", 81, 60, 21, "East"},
		{"May", 56, 45, 11, "East"},
		{"June", 55, 35, 20, "East"},
		{"July", 40, 30, 10, "West"},
		{"August", 70, 45, 25, "West"},
		{"September", 60, 40, 20, "West"},
		{"October", 63, 55, 8, "South"},
		{"November", 55, 45, 10, "South"},
		{"December", 85, 65, 20, "South"},
	}

	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, Row{
			"Month":    r.month,
			"Sales":    r.sales,
			"Expenses": r.expenses,
			"Profit":   r.profit,
			"Region":   r.region,
		})
	}
	columns := make([]string, len(SampleColumns))
	copy(columns, SampleColumns)
	return &Dataset{Columns: columns, Rows: rows}
}
