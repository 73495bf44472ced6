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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/rulego/dataquery/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseMode(t *testing.T) {
	for _, name := range []string{"natural", "FORMULAS", " filters ", "Custom"} {
		m, err := ParseMode(name)
		require.NoError(t, err, name)
		assert.True(t, m.Valid())
	}

	_, err := ParseMode("sql")
	require.Error(t, err)
	assert.Equal(t, "Unknown analysis type: sql", err.Error())
	assert.True(t, IsKind(err, KindInput))
	assert.Len(t, Modes(), 4)
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  *Error
		kind ErrorKind
		name string
		msg  string
	}{
		{ErrNoData, KindInput, "INPUT_ERROR", MsgNoData},
		{NewGrammarError(MsgFormulaUsage), KindGrammar, "GRAMMAR_ERROR", MsgFormulaUsage},
		{NewColumnNotFoundError("Revenue"), KindReference, "REFERENCE_ERROR", "Column 'Revenue' not found in data"},
		{NewGroupColumnNotFoundError("Country"), KindReference, "REFERENCE_ERROR", "Group column 'Country' not found in data"},
		{NewExecutionError(errors.New("boom")), KindExecution, "EXECUTION_ERROR", MsgCustomFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.name, tt.err.Kind.String())
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.True(t, IsKind(tt.err, tt.kind))
		})
	}
	assert.Equal(t, "UNKNOWN_ERROR", ErrorKind(99).String())
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("unexpected token")
	err := NewExecutionError(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))

	wrapped := fmt.Errorf("analyze: %w", ErrQueryRequired)
	assert.ErrorIs(t, wrapped, ErrQueryRequired)
	assert.True(t, IsKind(wrapped, KindInput))
	assert.False(t, IsKind(wrapped, KindGrammar))
	assert.False(t, IsKind(errors.New("plain"), KindInput))

	assert.True(t, errors.Is(&Error{Kind: KindInput, Message: MsgNoData}, ErrNoData))
	assert.False(t, errors.Is(ErrQueryRequired, ErrNoData))
}

func TestResultJSON(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   string
	}{
		{"scalar", ScalarResult(68), `68`},
		{"nan scalar", ScalarResult(math.NaN()), `null`},
		{"groups", GroupsResult(map[string]float64{"North": 3, "East": math.Inf(1)}), `{"North":3,"East":null}`},
		{"rows", RowsResult([]dataset.Row{{"Sales": 65.0}}), `{"count":1,"data":[{"Sales":65}]}`},
		{"no rows", RowsResult(nil), `{"count":0,"data":[]}`},
		{"summary", SummaryResult(12, "Total count of records", "COUNT(*)"), `{"result":12,"description":"Total count of records","formula":"COUNT(*)"}`},
		{"message", MessageResult("rephrase"), `"rephrase"`},
		{"value", ValueResult([]interface{}{1, math.NaN(), "a"}), `[1,null,"a"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestResultYAML(t *testing.T) {
	b, err := yaml.Marshal(SummaryResult(85, "Maximum of Sales", "MAX(Sales)"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(b, &decoded))
	assert.Equal(t, "MAX(Sales)", decoded["formula"])
	assert.Equal(t, 85, decoded["result"])
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "64", ScalarResult(64).String())
	assert.Equal(t, "NaN", ScalarResult(math.NaN()).String())
	assert.Equal(t, "hello", MessageResult("hello").String())
	assert.Equal(t, "12", ValueResult(12).String())
	assert.Equal(t, "null", ValueResult(nil).String())
	assert.JSONEq(t, `{"North":68}`, GroupsResult(map[string]float64{"North": 68}).String())
}

func TestResultFlags(t *testing.T) {
	assert.True(t, MessageResult("x").IsSoftFailure())
	assert.False(t, ScalarResult(1).IsSoftFailure())
	var nilResult *Result
	assert.False(t, nilResult.IsSoftFailure())

	assert.True(t, GroupsResult(nil).IsStructured())
	assert.True(t, ValueResult(map[string]interface{}{}).IsStructured())
	assert.False(t, ValueResult("text").IsStructured())
	assert.False(t, ScalarResult(1).IsStructured())
	assert.Equal(t, "groups", ResultGroups.String())
}
