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
	"io"

	"github.com/rulego/dataquery/logger"
)

// Option 表示对引擎默认行为的修改配置。
type Option func(*Engine)

// WithLogger 设置引擎使用的日志记录器。
// 为 nil 时保持默认的全局日志记录器。
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	engine := dataquery.New(dataquery.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithLogLevel 设置日志级别。
// 日志级别作用于当前日志记录器，默认记录器是全局共享的。
//
// 示例:
//
//	// 设置为调试级别
//	engine := dataquery.New(dataquery.WithLogLevel(logger.DEBUG))
//
//	// 关闭日志
//	engine := dataquery.New(dataquery.WithLogLevel(logger.OFF))
func WithLogLevel(level logger.Level) Option {
	return func(e *Engine) {
		e.log.SetLevel(level)
	}
}

// WithLogOutput 设置日志输出目标和级别，引擎独占一个新的日志记录器。
//
// 示例:
//
//	logFile, _ := os.OpenFile("dataquery.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
//	engine := dataquery.New(dataquery.WithLogOutput(logFile, logger.INFO))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Engine) {
		e.log = logger.NewLogger(level, output)
	}
}

// WithDiscardLog 禁用引擎的全部日志输出。
func WithDiscardLog() Option {
	return func(e *Engine) {
		e.log = logger.NewDiscardLogger()
	}
}
