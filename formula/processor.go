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
	"github.com/rulego/dataquery/aggregator"
	"github.com/rulego/dataquery/dataset"
	"github.com/rulego/dataquery/logger"
	"github.com/rulego/dataquery/types"
)

// Option 处理器配置项
type Option func(*Processor)

// WithCompositeGroupBy 多列 GROUP BY 按组合键分组（各列值以 | 连接），
// 默认只使用第一列
func WithCompositeGroupBy() Option {
	return func(p *Processor) {
		p.composite = true
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

// Processor 公式查询处理器，无状态，可并发使用
type Processor struct {
	composite bool
	log       logger.Logger
}

// NewProcessor 创建公式处理器
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{log: logger.NewDiscardLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process 解析、校验并计算公式查询
func (p *Processor) Process(ds *dataset.Dataset, query string) (*types.Result, error) {
	f, err := Parse(query)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(ds); err != nil {
		return nil, err
	}
	return p.Evaluate(ds, f)
}

// Evaluate 计算已校验的公式：无分组返回标量，有分组返回分组映射
func (p *Processor) Evaluate(ds *dataset.Dataset, f *Formula) (*types.Result, error) {
	var rows []dataset.Row
	if ds != nil {
		rows = ds.Rows
	}

	if !f.Grouped() {
		if f.Op == aggregator.Count {
			return types.ScalarResult(float64(aggregator.CalculateCount(rows))), nil
		}
		v, err := aggregator.Reduce(rows, f.Column, f.Op)
		if err != nil {
			return nil, err
		}
		return types.ScalarResult(v), nil
	}

	groupBy := p.groupColumns(f)
	if len(f.GroupBy) > 1 && !p.composite {
		p.log.Debug("formula %s: grouping by %s only", f, groupBy[0])
	}
	groups, err := aggregator.ReduceByGroup(rows, f.Column, f.Op, groupBy...)
	if err != nil {
		return nil, err
	}
	return types.GroupsResult(groups), nil
}

func (p *Processor) groupColumns(f *Formula) []string {
	if p.composite {
		return f.GroupBy
	}
	return f.GroupBy[:1]
}
