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
	"github.com/rulego/dataquery/logger"
	"github.com/rulego/dataquery/types"
)

// MsgNotUnderstood 没有任何意图命中时的提示
const MsgNotUnderstood = "I couldn't understand your query. Please try rephrasing or use a specific format."

// Option 处理器配置项
type Option func(*Processor)

// WithLogger 设置日志记录器
func WithLogger(l logger.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithIntents 替换默认意图表
func WithIntents(intents []*Intent) Option {
	return func(p *Processor) {
		p.intents = intents
	}
}

// Processor 自然语言启发式处理器：字面关键词匹配，不做语义理解。
// 无法理解或缺少列时返回提示文本结果而不是错误。
type Processor struct {
	intents []*Intent
	log     logger.Logger
}

// NewProcessor 创建自然语言处理器
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{intents: Intents(), log: logger.NewDiscardLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process 按意图表顺序匹配查询，第一个命中的意图给出答案
func (p *Processor) Process(ds *dataset.Dataset, query string) (*types.Result, error) {
	lower := strings.ToLower(query)
	columns := columnsOf(ds)
	var rows []dataset.Row
	if ds != nil {
		rows = ds.Rows
	}

	for _, in := range p.intents {
		if !in.matches(lower) {
			continue
		}
		p.log.Debug("query matched intent %s", in.Name)
		return p.answer(in, rows, lower, columns), nil
	}
	p.log.Debug("no intent matched %q", query)
	return types.MessageResult(MsgNotUnderstood), nil
}

func (p *Processor) answer(in *Intent, rows []dataset.Row, lower string, columns []string) *types.Result {
	var column string
	if in.NeedsColumn() {
		c, ok := findColumn(lower, columns)
		if !ok {
			return types.MessageResult(in.MissingColumnMessage())
		}
		column = c
	}

	if group, ok := in.groupColumn(lower, columns); ok {
		p.log.Debug("intent %s grouped by %s", in.Name, group)
		if in.Op == "" {
			return types.GroupsResult(aggregator.CalculatePercentageByGroup(rows, column, group))
		}
		groups, _ := aggregator.ReduceByGroup(rows, column, in.Op, group)
		return types.GroupsResult(groups)
	}

	if in.RequireGroup {
		return types.MessageResult(MsgNotUnderstood)
	}
	if in.Op == aggregator.Count {
		return types.SummaryResult(float64(aggregator.CalculateCount(rows)), in.Description, "COUNT(*)")
	}
	v, _ := aggregator.Reduce(rows, column, in.Op)
	return types.SummaryResult(v, in.Description+" "+column, fmt.Sprintf("%s(%s)", in.Op.Formula(), column))
}
