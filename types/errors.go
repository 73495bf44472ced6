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

package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies analysis failures
type ErrorKind int

const (
	// KindInput empty dataset, blank query or unknown mode
	KindInput ErrorKind = iota
	// KindGrammar malformed formula syntax or unsupported operator
	KindGrammar
	// KindReference a named column or group column is absent from the data
	KindReference
	// KindExecution a custom expression failed to compile or run
	KindExecution
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "INPUT_ERROR"
	case KindGrammar:
		return "GRAMMAR_ERROR"
	case KindReference:
		return "REFERENCE_ERROR"
	case KindExecution:
		return "EXECUTION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Messages shared by the dispatcher and the processors.
const (
	MsgNoData         = "No data available to analyze"
	MsgQueryRequired  = "Please enter a query to analyze the data."
	MsgFormulaUsage   = "Invalid formula format. Please use format like: AVG(column) GROUP BY group_column"
	MsgStarOnlyCount  = "Only COUNT operation can use * as column"
	MsgCustomFailed   = "Failed to execute custom code. Please check your syntax."
	msgUnknownMode    = "Unknown analysis type: %s"
	msgColumnNotFound = "Column '%s' not found in data"
	msgGroupNotFound  = "Group column '%s' not found in data"
)

// Error is returned by every analysis call that fails.
// Message is safe to show to the user; Err keeps the underlying fault, if any.
type Error struct {
	Kind    ErrorKind
	Message string
	// Column names the missing column for KindReference errors
	Column string
	Err    error
}

// Error implements the error interface. Only the user-facing message is
// returned; use errors.Unwrap to reach the original fault.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying fault
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// ErrNoData is returned when the dataset is nil or has no rows.
var ErrNoData = &Error{Kind: KindInput, Message: MsgNoData}

// ErrQueryRequired is returned for an empty or blank query.
var ErrQueryRequired = &Error{Kind: KindInput, Message: MsgQueryRequired}

// NewUnknownModeError reports a mode outside natural/formulas/filters/custom.
func NewUnknownModeError(mode string) *Error {
	return &Error{Kind: KindInput, Message: fmt.Sprintf(msgUnknownMode, mode)}
}

// NewGrammarError reports a malformed query together with a usage hint.
func NewGrammarError(message string) *Error {
	return &Error{Kind: KindGrammar, Message: message}
}

// NewColumnNotFoundError reports an aggregated column that is absent from the data.
func NewColumnNotFoundError(column string) *Error {
	return &Error{Kind: KindReference, Column: column, Message: fmt.Sprintf(msgColumnNotFound, column)}
}

// NewGroupColumnNotFoundError reports a grouping column that is absent from the data.
func NewGroupColumnNotFoundError(column string) *Error {
	return &Error{Kind: KindReference, Column: column, Message: fmt.Sprintf(msgGroupNotFound, column)}
}

// NewExecutionError hides the fault behind the generic custom-code message.
func NewExecutionError(cause error) *Error {
	return &Error{Kind: KindExecution, Message: MsgCustomFailed, Err: cause}
}

// IsKind reports whether err (or anything it wraps) is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
