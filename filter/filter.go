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

package filter

import (
	"regexp"
	"strings"

	"github.com/rulego/dataquery/dataset"
	"github.com/rulego/dataquery/logger"
	"github.com/rulego/dataquery/types"
	"golang.org/x/text/language"
)

// 各类子句的扫描模式，按固定顺序依次扫描整条查询文本
var (
	equalityPattern = regexp.MustCompile(`([a-zA-Z_]+)\s*=\s*['"]?([^'"]+)['"]?`)
	greaterPattern  = regexp.MustCompile(`([a-zA-Z_]+)\s*>\s*([0-9.]+)`)
	lessPattern     = regexp.MustCompile(`([a-zA-Z_]+)\s*<\s*([0-9.]+)`)
	inPattern       = regexp.MustCompile(`([a-zA-Z_]+)\s+IN\s+\(([^)]+)\)`)
	betweenPattern  = regexp.MustCompile(`([a-zA-Z_]+)\s+BETWEEN\s+([0-9.]+)\s+AND\s+([0-9.]+)`)
	orderByPattern  = regexp.MustCompile(`(?i)ORDER\s+BY\s+([a-zA-Z_]+)(?:\s+(ASC|DESC))?`)

	equalsSplit   = regexp.MustCompile(`\s*=\s*`)
	quoteStripper = strings.NewReplacer(`'`, "", `"`, "")
	parenStripper = strings.NewReplacer("(", "", ")", "")
)

// Query 解析后的过滤查询：AND 组合的子句列表加可选排序
type Query struct {
	Clauses []Clause
	OrderBy *OrderBy
}

// Parse 提取查询文本中的所有子句。子句顺序固定为
// 等值、大于、小于、IN、BETWEEN，与其在文本中的位置无关。
// 不识别 OR 和优先级，没有任何匹配时返回空查询（保留全部行）。
func Parse(query string) *Query {
	q := &Query{}

	for _, m := range equalityPattern.FindAllString(query, -1) {
		parts := equalsSplit.Split(m, -1)
		q.Clauses = append(q.Clauses, &Equality{
			Column: parts[0],
			Value:  strings.TrimSpace(quoteStripper.Replace(parts[1])),
		})
	}
	for _, m := range greaterPattern.FindAllStringSubmatch(query, -1) {
		q.Clauses = append(q.Clauses, &GreaterThan{Column: m[1], Value: bound(m[2])})
	}
	for _, m := range lessPattern.FindAllStringSubmatch(query, -1) {
		q.Clauses = append(q.Clauses, &LessThan{Column: m[1], Value: bound(m[2])})
	}
	for _, m := range inPattern.FindAllStringSubmatch(query, -1) {
		items := strings.Split(parenStripper.Replace(m[2]), ",")
		values := make([]string, len(items))
		for i, item := range items {
			values[i] = quoteStripper.Replace(strings.TrimSpace(item))
		}
		q.Clauses = append(q.Clauses, &InSet{Column: m[1], Values: values})
	}
	for _, m := range betweenPattern.FindAllStringSubmatch(query, -1) {
		q.Clauses = append(q.Clauses, &Between{Column: m[1], Min: bound(m[2]), Max: bound(m[3])})
	}

	if m := orderByPattern.FindStringSubmatch(query); m != nil {
		q.OrderBy = &OrderBy{Column: m[1], Desc: strings.EqualFold(m[2], "DESC")}
	}
	return q
}

// Match 行是否满足全部子句
func (q *Query) Match(row dataset.Row) bool {
	for _, c := range q.Clauses {
		if !c.Match(row) {
			return false
		}
	}
	return true
}

// Apply 逐个子句收窄行集后排序，返回新切片，不修改输入
func (q *Query) Apply(rows []dataset.Row, locale language.Tag) []dataset.Row {
	result := make([]dataset.Row, len(rows))
	copy(result, rows)

	for _, c := range q.Clauses {
		kept := make([]dataset.Row, 0, len(result))
		for _, row := range result {
			if c.Match(row) {
				kept = append(kept, row)
			}
		}
		result = kept
	}

	if q.OrderBy != nil {
		q.OrderBy.Sort(result, locale)
	}
	return result
}

// String 返回规范化的子句文本
func (q *Query) String() string {
	parts := make([]string, 0, len(q.Clauses)+1)
	for _, c := range q.Clauses {
		parts = append(parts, c.String())
	}
	s := strings.Join(parts, " AND ")
	if q.OrderBy != nil {
		if s != "" {
			s += " "
		}
		s += q.OrderBy.String()
	}
	return s
}

// Option 处理器配置项
type Option func(*Processor)

// WithLocale 设置字符串排序使用的区域，默认 language.English
func WithLocale(tag language.Tag) Option {
	return func(p *Processor) {
		p.locale = tag
	}
}

// WithLogger 设置日志记录器
func WithLogger(l logger.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// Processor 过滤查询处理器，无状态，可并发使用
type Processor struct {
	locale language.Tag
	log    logger.Logger
}

// NewProcessor 创建过滤处理器
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{locale: language.English, log: logger.NewDiscardLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process 过滤并排序数据集。没有匹配行不是错误。
func (p *Processor) Process(ds *dataset.Dataset, query string) (*types.Result, error) {
	q := Parse(query)
	p.log.Debug("filter parsed as [%s]", q)

	var rows []dataset.Row
	if ds != nil {
		rows = ds.Rows
	}
	return types.RowsResult(q.Apply(rows, p.locale)), nil
}
