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
	"math"
	"testing"

	"github.com/rulego/dataquery/dataset"
	"github.com/rulego/dataquery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func column(rows []dataset.Row, name string) []interface{} {
	values := make([]interface{}, len(rows))
	for i, row := range rows {
		values[i] = row[name]
	}
	return values
}

func TestParse(t *testing.T) {
	q := Parse("Sales > 60 AND Region = 'North' AND Profit < 20 AND Month IN ('January', \"March\") AND Expenses BETWEEN 40 AND 55 order by Sales desc")
	require.Len(t, q.Clauses, 5)

	kinds := make([]ClauseKind, len(q.Clauses))
	for i, c := range q.Clauses {
		kinds[i] = c.Kind()
	}
	// fixed pass order, independent of text position
	assert.Equal(t, []ClauseKind{KindEquality, KindGreaterThan, KindLessThan, KindInSet, KindBetween}, kinds)

	assert.Equal(t, &Equality{Column: "Region", Value: "North"}, q.Clauses[0])
	assert.Equal(t, &GreaterThan{Column: "Sales", Value: 60}, q.Clauses[1])
	assert.Equal(t, &LessThan{Column: "Profit", Value: 20}, q.Clauses[2])
	assert.Equal(t, &InSet{Column: "Month", Values: []string{"January", "March"}}, q.Clauses[3])
	assert.Equal(t, &Between{Column: "Expenses", Min: 40, Max: 55}, q.Clauses[4])
	assert.Equal(t, &OrderBy{Column: "Sales", Desc: true}, q.OrderBy)

	assert.Equal(t, "Region = 'North' AND Sales > 60 AND Profit < 20 AND Month IN ('January', 'March') AND Expenses BETWEEN 40 AND 55 ORDER BY Sales DESC", q.String())
}

func TestParse_NoClauses(t *testing.T) {
	q := Parse("show me everything")
	assert.Empty(t, q.Clauses)
	assert.Nil(t, q.OrderBy)
	assert.Equal(t, "", q.String())

	q = Parse("ORDER BY Month")
	assert.Empty(t, q.Clauses)
	assert.Equal(t, &OrderBy{Column: "Month"}, q.OrderBy)
}

func TestParse_BadBound(t *testing.T) {
	q := Parse("Sales > 6.0.1")
	require.Len(t, q.Clauses, 1)
	assert.True(t, math.IsNaN(q.Clauses[0].(*GreaterThan).Value))

	rows := Parse("Sales > 6.0.1").Apply(dataset.Sample().Rows, language.English)
	assert.Empty(t, rows)
}

func TestProcess_Sample(t *testing.T) {
	p := NewProcessor()
	tests := []struct {
		query  string
		column string
		want   []interface{}
	}{
		{"Sales > 60 ORDER BY Sales DESC", "Sales", []interface{}{85.0, 81.0, 80.0, 70.0, 65.0, 63.0}},
		{"Region = 'North'", "Month", []interface{}{"January", "February", "March"}},
		{"Region = 'North' AND Profit > 15", "Month", []interface{}{"February", "March"}},
		{"Month IN ('January', 'February', 'March')", "Month", []interface{}{"January", "February", "March"}},
		{"Sales BETWEEN 50 AND 70", "Sales", []interface{}{65.0, 59.0, 56.0, 55.0, 70.0, 60.0, 63.0, 55.0}},
		{"Sales < 56 ORDER BY Sales", "Month", []interface{}{"July", "June", "November"}},
		{"Profit = 20", "Month", []interface{}{"June", "September", "December"}},
		{"Sales>80", "Month", []interface{}{"April", "December"}},
		{"Region = \"South\" ORDER BY Month ASC", "Month", []interface{}{"December", "November", "October"}},
		{"Region = 'Nowhere'", "Month", []interface{}{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res, err := p.Process(dataset.Sample(), tt.query)
			require.NoError(t, err)
			require.Equal(t, types.ResultRows, res.Kind)
			assert.Equal(t, len(tt.want), res.Rows.Count)
			assert.Equal(t, tt.want, column(res.Rows.Data, tt.column))
		})
	}
}

func TestProcess_OrderByStringIsStable(t *testing.T) {
	res, err := NewProcessor().Process(dataset.Sample(), "ORDER BY Region")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{
		"April", "May", "June",
		"January", "February", "March",
		"October", "November", "December",
		"July", "August", "September",
	}, column(res.Rows.Data, "Month"))
}

func TestProcess_LocaleOrder(t *testing.T) {
	ds := dataset.New([]dataset.Row{
		{"Name": "banana"},
		{"Name": "Cherry"},
		{"Name": "apple"},
	})
	res, err := NewProcessor(WithLocale(language.English)).Process(ds, "ORDER BY Name")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"apple", "banana", "Cherry"}, column(res.Rows.Data, "Name"))

	res, err = NewProcessor().Process(ds, "ORDER BY Name DESC")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Cherry", "banana", "apple"}, column(res.Rows.Data, "Name"))
}

func TestProcess_DoesNotMutateInput(t *testing.T) {
	ds := dataset.Sample()
	before := column(ds.Rows, "Month")

	res, err := NewProcessor().Process(ds, "Sales > 0 ORDER BY Sales DESC")
	require.NoError(t, err)
	assert.Equal(t, 12, res.Rows.Count)
	assert.Equal(t, before, column(ds.Rows, "Month"))

	res, err = NewProcessor().Process(ds, "")
	require.NoError(t, err)
	require.Equal(t, 12, res.Rows.Count)
	res.Rows.Data[0] = nil
	assert.NotNil(t, ds.Rows[0])
}

func TestProcess_UnquotedValueSwallowsRest(t *testing.T) {
	// an unquoted equality value runs to the end of the text
	q := Parse("Region = North ORDER BY Sales")
	require.Len(t, q.Clauses, 1)
	assert.Equal(t, "North ORDER BY Sales", q.Clauses[0].(*Equality).Value)

	res, err := NewProcessor().Process(dataset.Sample(), "Region = North ORDER BY Sales")
	require.NoError(t, err)
	assert.Zero(t, res.Rows.Count)
}

func TestClauseMatch_MissingAndText(t *testing.T) {
	rows := []dataset.Row{
		{"v": "12"},
		{"v": "abc"},
		{"v": nil},
		{},
	}
	assert.Equal(t, []bool{true, false, false, false}, matches(&GreaterThan{Column: "v", Value: 5}, rows))
	assert.Equal(t, []bool{false, false, true, false}, matches(&LessThan{Column: "v", Value: 5}, rows))
	assert.Equal(t, []bool{false, false, true, false}, matches(&Between{Column: "v", Min: 0, Max: 0}, rows))
	assert.Equal(t, []bool{false, false, true, false}, matches(&Equality{Column: "v", Value: "null"}, rows))
	assert.Equal(t, []bool{false, false, false, true}, matches(&InSet{Column: "v", Values: []string{"undefined"}}, rows))
}

func matches(c Clause, rows []dataset.Row) []bool {
	out := make([]bool, len(rows))
	for i, row := range rows {
		out[i] = c.Match(row)
	}
	return out
}

func TestProcess_ExponentValues(t *testing.T) {
	ds := dataset.New([]dataset.Row{
		{"x": 1e21, "g": "a"},
		{"x": 1e-7, "g": "b"},
		{"x": 100.0, "g": "c"},
	}, "x", "g")

	tests := []struct {
		query string
		want  []interface{}
	}{
		{"x = 1e+21", []interface{}{"a"}},
		{"x = '1e-7'", []interface{}{"b"}},
		{"x IN ('100', '1e+21')", []interface{}{"a", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res, err := NewProcessor().Process(ds, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, column(res.Rows.Data, "g"))
		})
	}
}
