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
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rulego/dataquery/custom"
	"github.com/rulego/dataquery/dataset"
	"github.com/rulego/dataquery/filter"
	"github.com/rulego/dataquery/formula"
	"github.com/rulego/dataquery/logger"
	"github.com/rulego/dataquery/natural"
	"github.com/rulego/dataquery/types"
	"golang.org/x/text/language"
)

// Processor 一种查询方言的处理器
type Processor interface {
	Process(ds *dataset.Dataset, query string) (*types.Result, error)
}

// Engine 是 DataQuery 分析引擎，负责把查询按方言分发给对应的处理器。
// 引擎本身不持有可变的分析状态，可以被多个 goroutine 同时使用。
//
// 使用示例:
//
//	engine := dataquery.New()
//	result, err := engine.Analyze(dataset.Sample(), "AVG(Sales) GROUP BY Region", types.ModeFormulas)
type Engine struct {
	log logger.Logger

	// 公式方言的多列 GROUP BY 是否使用组合键
	compositeGroupBy bool
	// 过滤方言 ORDER BY 的字符串排序区域
	locale language.Tag
	// 自定义方言追加的辅助函数
	functions map[string]custom.Function

	processors map[types.Mode]Processor
}

// New 创建一个新的分析引擎。
//
// 示例:
//
//	// 默认配置
//	engine := dataquery.New()
//
//	// 调试日志输出到标准错误，多列分组使用组合键
//	engine := dataquery.New(
//		dataquery.WithLogOutput(os.Stderr, logger.DEBUG),
//		dataquery.WithCompositeGroupBy(),
//	)
func New(options ...Option) *Engine {
	e := &Engine{
		log:        logger.GetDefault(),
		locale:     language.English,
		functions:  make(map[string]custom.Function),
		processors: make(map[types.Mode]Processor),
	}

	// 应用所有配置选项
	for _, option := range options {
		option(e)
	}

	e.registerDefaults()
	return e
}

// registerDefaults 为未被 WithProcessor 覆盖的方言创建默认处理器
func (e *Engine) registerDefaults() {
	if _, ok := e.processors[types.ModeNatural]; !ok {
		e.processors[types.ModeNatural] = natural.NewProcessor(
			natural.WithLogger(e.log.Named("natural")),
		)
	}

	if _, ok := e.processors[types.ModeFormulas]; !ok {
		opts := []formula.Option{formula.WithLogger(e.log.Named("formula"))}
		if e.compositeGroupBy {
			opts = append(opts, formula.WithCompositeGroupBy())
		}
		e.processors[types.ModeFormulas] = formula.NewProcessor(opts...)
	}

	if _, ok := e.processors[types.ModeFilters]; !ok {
		e.processors[types.ModeFilters] = filter.NewProcessor(
			filter.WithLocale(e.locale),
			filter.WithLogger(e.log.Named("filter")),
		)
	}

	if _, ok := e.processors[types.ModeCustom]; !ok {
		opts := []custom.Option{custom.WithLogger(e.log.Named("custom"))}
		for name, fn := range e.functions {
			opts = append(opts, custom.WithFunction(name, fn))
		}
		e.processors[types.ModeCustom] = custom.NewEvaluator(opts...)
	}
}

// Analyze 对数据集执行一次查询。
//
// 检查顺序：数据集为空、查询为空白、未知方言，均返回输入错误。
// 查询去除首尾空白后交给对应处理器，处理器的错误原样返回。
// 自然语言方言无法理解查询时返回 ResultMessage 结果而不是错误。
func (e *Engine) Analyze(ds *dataset.Dataset, query string, mode types.Mode) (*types.Result, error) {
	if ds.Empty() {
		return nil, types.ErrNoData
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, types.ErrQueryRequired
	}
	if !mode.Valid() {
		return nil, types.NewUnknownModeError(string(mode))
	}
	p, ok := e.processors[mode]
	if !ok {
		return nil, types.NewUnknownModeError(string(mode))
	}

	requestID := uuid.NewString()
	start := time.Now()
	e.log.Debug("[%s] analyze mode=%s rows=%d query=%q", requestID, mode, ds.Len(), query)

	result, err := p.Process(ds, query)
	if err != nil {
		e.log.Debug("[%s] failed after %v: %v", requestID, time.Since(start), err)
		return nil, err
	}
	e.log.Debug("[%s] %s result in %v", requestID, result.Kind, time.Since(start))
	return result, nil
}

// AnalyzeString 与 Analyze 相同，方言以名称给出（不区分大小写）
func (e *Engine) AnalyzeString(ds *dataset.Dataset, query, mode string) (*types.Result, error) {
	return e.Analyze(ds, query, types.Mode(strings.ToLower(strings.TrimSpace(mode))))
}

// Processor 返回方言对应的处理器
func (e *Engine) Processor(mode types.Mode) (Processor, bool) {
	p, ok := e.processors[mode]
	return p, ok
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Analyze 使用默认配置的共享引擎执行查询
func Analyze(ds *dataset.Dataset, query string, mode types.Mode) (*types.Result, error) {
	defaultEngineOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine.Analyze(ds, query, mode)
}
