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

package custom

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rulego/dataquery/dataset"
	"github.com/rulego/dataquery/logger"
	"github.com/rulego/dataquery/types"
)

// DataVariable 表达式中绑定数据集的变量名
const DataVariable = "data"

// Option 求值器配置项
type Option func(*Evaluator)

// WithLogger 设置日志记录器
func WithLogger(l logger.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// WithFunction 注册额外的辅助函数，同名时覆盖默认函数
func WithFunction(name string, fn Function) Option {
	return func(e *Evaluator) {
		e.functions[name] = fn
	}
}

// WithCacheSize 设置已编译程序的缓存上限，默认 DefaultCacheSize，0 表示不缓存
func WithCacheSize(n int) Option {
	return func(e *Evaluator) {
		if n >= 0 {
			e.cacheSize = n
		}
	}
}

// Evaluator 自定义表达式求值器。
// 表达式由 expr 编译执行，只能访问 data 变量、内置函数和辅助函数白名单，
// 没有宿主代码执行能力。编译结果按查询文本缓存，最多保留 cacheSize 个，
// 超出时淘汰最久未使用的程序。可并发使用。
type Evaluator struct {
	functions map[string]Function
	options   []expr.Option
	log       logger.Logger

	cacheSize int
	programs  *programCache
}

// NewEvaluator 创建求值器
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		functions: builtinFunctions(),
		log:       logger.NewDiscardLogger(),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.programs = newProgramCache(e.cacheSize)

	// 编译期只需要环境的类型信息
	e.options = []expr.Option{expr.Env(newEnv(nil))}
	for name, fn := range e.functions {
		e.options = append(e.options, expr.Function(name, fn))
	}
	return e
}

// Process 执行表达式并返回其结果。编译或运行失败统一返回执行错误，
// 原始错误写入日志并可通过 errors.Unwrap 获取。
func (e *Evaluator) Process(ds *dataset.Dataset, query string) (*types.Result, error) {
	program, err := e.compile(query)
	if err != nil {
		e.log.Error("compile custom expression %q: %v", query, err)
		return nil, types.NewExecutionError(err)
	}

	var rows []dataset.Row
	if ds != nil {
		rows = ds.Rows
	}
	out, err := expr.Run(program, newEnv(rows))
	if err != nil {
		e.log.Error("run custom expression %q: %v", query, err)
		return nil, types.NewExecutionError(err)
	}
	return types.ValueResult(out), nil
}

// compile 获取缓存的程序，未命中时编译并缓存
func (e *Evaluator) compile(query string) (*vm.Program, error) {
	if program, ok := e.programs.get(query); ok {
		return program, nil
	}

	program, err := expr.Compile(query, e.options...)
	if err != nil {
		return nil, err
	}

	e.programs.put(query, program)
	e.log.Debug("compiled custom expression %q", query)
	return program, nil
}

// CacheSize 已缓存的程序数量
func (e *Evaluator) CacheSize() int {
	return e.programs.size()
}

// newEnv 构造求值环境。行以普通 map 暴露，表达式不能修改数据集本身的切片。
func newEnv(rows []dataset.Row) map[string]interface{} {
	data := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		data[i] = row
	}
	return map[string]interface{}{DataVariable: data}
}
