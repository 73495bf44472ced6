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

import (
	"github.com/rulego/dataquery/custom"
	"github.com/rulego/dataquery/types"
	"golang.org/x/text/language"
)

// WithCompositeGroupBy 公式方言的多列 GROUP BY 按组合键分组，
// 键为各列值以 | 连接。默认只按第一列分组。
func WithCompositeGroupBy() Option {
	return func(e *Engine) {
		e.compositeGroupBy = true
	}
}

// WithLocale 设置过滤方言 ORDER BY 比较字符串使用的区域，默认英语
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) {
		e.locale = tag
	}
}

// WithFunction 为自定义方言注册额外的辅助函数
func WithFunction(name string, fn custom.Function) Option {
	return func(e *Engine) {
		e.functions[name] = fn
	}
}

// WithProcessor 替换四种方言之一的处理器。
// 其他方言名称会被忽略，Analyze 对它们仍然返回未知方言错误。
func WithProcessor(mode types.Mode, p Processor) Option {
	return func(e *Engine) {
		if p != nil && mode.Valid() {
			e.processors[mode] = p
		}
	}
}
