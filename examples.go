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

package dataquery

import "github.com/rulego/dataquery/types"

// examples 每种方言的示例查询，均可在示例数据上直接运行
var examples = map[types.Mode][]string{
	types.ModeNatural: {
		"What is the average Sales for each Region?",
		"Show total Profit by Month",
		"Which Region has the highest Sales in December?",
		"Calculate the percentage of total Sales for each Region",
	},
	types.ModeFormulas: {
		"AVG(Sales) GROUP BY Region",
		"SUM(Profit) GROUP BY Month",
		"MAX(Sales) GROUP BY Region, Month",
		"COUNT(*) GROUP BY Region",
	},
	types.ModeFilters: {
		"Sales > 60 ORDER BY Sales DESC",
		"Region = 'North' AND Profit > 15",
		"Month IN ('January', 'February', 'March')",
		"Sales BETWEEN 50 AND 70",
	},
	types.ModeCustom: {
		`total(data, "Sales") / len(data)`,
		`map(filter(data, .Region == "North"), .Sales)`,
		`sumBy(data, "Sales", "Region")`,
		`highest(data, "Profit")`,
	},
}

// Examples 返回指定方言的示例查询副本，未知方言返回 nil
func Examples(mode types.Mode) []string {
	list, ok := examples[mode]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}
