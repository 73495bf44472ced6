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

package natural

import (
	"fmt"
	"strings"

	"github.com/rulego/dataquery/aggregator"
	"github.com/rulego/dataquery/dataset"
)

// 所有意图共用的分组提示短语
var baseCues = []string{"for each ", "by ", "group by "}

// Intent 一类关键词意图。意图表按顺序匹配，第一个命中的意图生效。
type Intent struct {
	// Name 意图名称，仅用于日志
	Name string
	// Keywords 任一关键词出现在小写查询中即命中
	Keywords []string
	// Cues 追加在 baseCues 之后的分组提示短语
	Cues []string
	// Op 对应的聚合类型；百分比意图为空
	Op aggregator.AggregateType
	// Target 找不到列时提示语中的动作描述，为空表示不需要值列
	Target string
	// Description 不分组结果的描述前缀
	Description string
	// RequireGroup 没有分组提示时不产生结果
	RequireGroup bool
}

// NeedsColumn 该意图是否需要一个值列
func (in *Intent) NeedsColumn() bool {
	return in.Target != ""
}

// MissingColumnMessage 找不到值列时返回给用户的提示
func (in *Intent) MissingColumnMessage() string {
	return fmt.Sprintf("Could not find the column to %s. Please specify a valid column name.", in.Target)
}

// matches 小写查询是否包含任一关键词
func (in *Intent) matches(lowerQuery string) bool {
	for _, kw := range in.Keywords {
		if strings.Contains(lowerQuery, kw) {
			return true
		}
	}
	return false
}

// groupColumn 按列顺序查找第一个分组提示短语出现在查询中的列
func (in *Intent) groupColumn(lowerQuery string, columns []string) (string, bool) {
	for _, col := range columns {
		lc := strings.ToLower(col)
		for _, cue := range in.cues() {
			if strings.Contains(lowerQuery, cue+lc) {
				return col, true
			}
		}
	}
	return "", false
}

func (in *Intent) cues() []string {
	if len(in.Cues) == 0 {
		return baseCues
	}
	all := make([]string, 0, len(baseCues)+len(in.Cues))
	all = append(all, baseCues...)
	return append(all, in.Cues...)
}

// Intents 默认意图表，顺序即优先级
func Intents() []*Intent {
	return []*Intent{
		{
			Name:        "average",
			Keywords:    []string{"average", "avg"},
			Op:          aggregator.Avg,
			Target:      "calculate average for",
			Description: "Average of",
		},
		{
			Name:        "sum",
			Keywords:    []string{"total", "sum"},
			Op:          aggregator.Sum,
			Target:      "calculate sum for",
			Description: "Total of",
		},
		{
			Name:        "max",
			Keywords:    []string{"max", "highest", "largest"},
			Cues:        []string{"in each "},
			Op:          aggregator.Max,
			Target:      "find maximum for",
			Description: "Maximum of",
		},
		{
			Name:        "min",
			Keywords:    []string{"min", "lowest", "smallest"},
			Cues:        []string{"in each "},
			Op:          aggregator.Min,
			Target:      "find minimum for",
			Description: "Minimum of",
		},
		{
			Name:        "count",
			Keywords:    []string{"count", "how many"},
			Cues:        []string{"in each "},
			Op:          aggregator.Count,
			Description: "Total count of records",
		},
		{
			Name:         "percentage",
			Keywords:     []string{"percentage", "percent"},
			Cues:         []string{"of each "},
			Target:       "calculate percentage for",
			RequireGroup: true,
		},
	}
}

// findColumn 按列顺序返回第一个小写列名出现在查询中的列
func findColumn(lowerQuery string, columns []string) (string, bool) {
	for _, col := range columns {
		if strings.Contains(lowerQuery, strings.ToLower(col)) {
			return col, true
		}
	}
	return "", false
}

// columnsOf 数据集的列顺序；未声明时取首行的列
func columnsOf(ds *dataset.Dataset) []string {
	if ds.Empty() {
		return nil
	}
	if len(ds.Columns) > 0 {
		return ds.Columns
	}
	return dataset.New(ds.Rows[:1]).Columns
}
