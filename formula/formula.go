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

package formula

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rulego/dataquery/aggregator"
	"github.com/rulego/dataquery/dataset"
	"github.com/rulego/dataquery/types"
)

// StarColumn 只允许 COUNT 使用的通配列
const StarColumn = "*"

// 操作符与 GROUP BY 关键字不区分大小写
var formulaPattern = regexp.MustCompile(`(?i)^(AVG|SUM|COUNT|MAX|MIN)\(([^)]+)\)(?:\s+GROUP\s+BY\s+(.+))?$`)

// Formula 解析后的公式查询 OP(column) [GROUP BY col[,col...]]
type Formula struct {
	Op      aggregator.AggregateType
	Column  string
	GroupBy []string
}

// Grouped 是否带 GROUP BY
func (f *Formula) Grouped() bool {
	return len(f.GroupBy) > 0
}

// String 返回规范化的公式文本
func (f *Formula) String() string {
	s := fmt.Sprintf("%s(%s)", f.Op.Formula(), f.Column)
	if f.Grouped() {
		s += " GROUP BY " + strings.Join(f.GroupBy, ", ")
	}
	return s
}

// Parse 解析公式文本。格式不匹配返回带用法提示的语法错误，
// 非 COUNT 操作使用 * 同样是语法错误。
func Parse(query string) (*Formula, error) {
	match := formulaPattern.FindStringSubmatch(query)
	if match == nil {
		return nil, types.NewGrammarError(types.MsgFormulaUsage)
	}

	op, ok := aggregator.ParseAggregateType(match[1])
	if !ok {
		return nil, types.NewGrammarError(types.MsgFormulaUsage)
	}

	f := &Formula{Op: op, Column: strings.TrimSpace(match[2])}
	if f.Column == StarColumn && op != aggregator.Count {
		return nil, types.NewGrammarError(types.MsgStarOnlyCount)
	}

	if match[3] != "" {
		for _, g := range strings.Split(match[3], ",") {
			f.GroupBy = append(f.GroupBy, strings.TrimSpace(g))
		}
	}
	return f, nil
}

// Validate 检查聚合列和分组列都存在于首行
func (f *Formula) Validate(ds *dataset.Dataset) error {
	if ds.Empty() {
		return nil
	}
	if f.Column != StarColumn && !ds.HasColumn(f.Column) {
		return types.NewColumnNotFoundError(f.Column)
	}
	for _, g := range f.GroupBy {
		if !ds.HasColumn(g) {
			return types.NewGroupColumnNotFoundError(g)
		}
	}
	return nil
}
