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

// Package logger provides levelled logging for DataQuery.
// Loaders, processors and the CLI log through the Logger interface so that
// embedding applications can plug in their own backend or silence output.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level defines log levels
type Level int

const (
	// DEBUG shows per-call diagnostics such as request ids and parsed clauses
	DEBUG Level = iota
	// INFO shows general progress information
	INFO
	// WARN shows recoverable problems, e.g. skipped CSV lines
	WARN
	// ERROR shows failures only
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name (case-insensitive) into a Level.
// "warning" is accepted as an alias of WARN.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger interface defines basic methods for logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	// SetLevel sets the minimum level that is written
	SetLevel(level Level)
	// Named returns a logger that tags every line with the component name.
	// The returned logger shares level and output with its parent.
	Named(component string) Logger
}

type sink struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
}

// defaultLogger writes "[timestamp] [LEVEL] (component) message" lines.
type defaultLogger struct {
	sink      *sink
	component string
}

// NewLogger creates a new logger
//
// Example:
//
//	log := logger.NewLogger(logger.INFO, os.Stderr)
//	log.Named("loader").Warn("line %d skipped", 3)
func NewLogger(level Level, output io.Writer) Logger {
	if output == nil {
		output = io.Discard
	}
	return &defaultLogger{sink: &sink{level: level, output: output}}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *defaultLogger) SetLevel(level Level) {
	l.sink.mu.Lock()
	l.sink.level = level
	l.sink.mu.Unlock()
}

func (l *defaultLogger) Named(component string) Logger {
	if l.component != "" && component != "" {
		component = l.component + "." + component
	}
	return &defaultLogger{sink: l.sink, component: component}
}

func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.level == OFF || level < l.sink.level {
		return
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	b.WriteString("] [")
	b.WriteString(level.String())
	b.WriteString("] ")
	if l.component != "" {
		b.WriteString("(")
		b.WriteString(l.component)
		b.WriteString(") ")
	}
	b.WriteString(fmt.Sprintf(format, args...))
	b.WriteString("\n")
	_, _ = io.WriteString(l.sink.output, b.String())
}

// discardLogger is a logger that discards all log output
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(format string, args ...interface{}) {}
func (discardLogger) Info(format string, args ...interface{})  {}
func (discardLogger) Warn(format string, args ...interface{})  {}
func (discardLogger) Error(format string, args ...interface{}) {}
func (discardLogger) SetLevel(level Level)                     {}
func (d discardLogger) Named(component string) Logger          { return d }

var (
	defaultMu       sync.RWMutex
	defaultInstance = NewLogger(WARN, os.Stderr)
)

// SetDefault sets the global default logger
func SetDefault(l Logger) {
	if l == nil {
		l = NewDiscardLogger()
	}
	defaultMu.Lock()
	defaultInstance = l
	defaultMu.Unlock()
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultInstance
}

// Debug uses the default logger to record debug information
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info uses the default logger to record information
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn uses the default logger to record warnings
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error uses the default logger to record errors
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}
