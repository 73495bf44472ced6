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
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/expr-lang/expr/vm"
	"github.com/rulego/dataquery/dataset"
	"github.com/rulego/dataquery/logger"
	"github.com/rulego/dataquery/types"
	"github.com/spf13/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Expressions(t *testing.T) {
	e := NewEvaluator()
	ds := dataset.Sample()

	tests := []struct {
		name  string
		query string
		want  interface{}
	}{
		{"literal", "1 + 2", 3},
		{"average via helpers", "total(data, \"Sales\") / len(data)", 769.0 / 12},
		{"filter and map", "map(filter(data, .Region == \"North\"), .Sales)", []interface{}{65.0, 59.0, 80.0}},
		{"filtered count", "len(filter(data, .Sales > 60))", 6},
		{"rows", "rows(data)", 12},
		{"index", "data[0].Month", "January"},
		{"column", "column(data, \"Month\")[11]", "December"},
		{"highest of subset", "highest(filter(data, .Region == \"West\"), \"Profit\")", 25.0},
		{"lowest", "lowest(data, \"Expenses\")", 30.0},
		{"average", "average(data, \"Profit\")", 204.0 / 12},
		{"group lookup", "sumBy(data, \"Sales\", \"Region\")[\"North\"]", 204.0},
		{"max by group", "maxBy(data, \"Sales\", \"Region\")", map[string]interface{}{"North": 80.0, "East": 81.0, "West": 70.0, "South": 85.0}},
		{"count by group", "countBy(data, \"Region\")", map[string]interface{}{"North": 3.0, "East": 3.0, "West": 3.0, "South": 3.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Process(ds, tt.query)
			require.NoError(t, err)
			require.Equal(t, types.ResultValue, res.Kind)
			if f, ok := tt.want.(float64); ok {
				assert.InDelta(t, f, cast.ToFloat64(res.Value), 1e-9)
				return
			}
			assert.Equal(t, tt.want, res.Value)
		})
	}
}

func TestEvaluator_PercentBy(t *testing.T) {
	res, err := NewEvaluator().Process(dataset.Sample(), "percentBy(data, \"Sales\", \"Region\")")
	require.NoError(t, err)
	shares, ok := res.Value.(map[string]interface{})
	require.True(t, ok)
	var total float64
	for _, v := range shares {
		total += cast.ToFloat64(v)
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestEvaluator_Failures(t *testing.T) {
	var buf bytes.Buffer
	e := NewEvaluator(WithLogger(logger.NewLogger(logger.ERROR, &buf)))
	ds := dataset.Sample()

	tests := []struct {
		name  string
		query string
	}{
		{"host syntax", "data.reduce((s, r) => s + r.Sales, 0)"},
		{"unknown variable", "window.alert(1)"},
		{"unbalanced", "len(data"},
		{"wrong arity", "total(data)"},
		{"not rows", "total(42, \"Sales\")"},
		{"bad element", "average([1, 2], \"Sales\")"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			res, err := e.Process(ds, tt.query)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, types.IsKind(err, types.KindExecution))
			assert.Equal(t, types.MsgCustomFailed, err.Error())
			assert.NotNil(t, errors.Unwrap(err))
			assert.Contains(t, buf.String(), "[ERROR]")
			assert.Contains(t, buf.String(), "custom expression")
		})
	}
}

func TestEvaluator_Cache(t *testing.T) {
	e := NewEvaluator()
	ds := dataset.Sample()

	first, err := e.Process(ds, "total(data, \"Profit\")")
	require.NoError(t, err)
	second, err := e.Process(ds, "total(data, \"Profit\")")
	require.NoError(t, err)
	assert.Equal(t, first.Value, second.Value)
	assert.Equal(t, 1, e.CacheSize())

	// the cached program sees the dataset of each call
	small := dataset.New(ds.Rows[:2], dataset.SampleColumns...)
	third, err := e.Process(small, "total(data, \"Profit\")")
	require.NoError(t, err)
	assert.Equal(t, 34.0, third.Value)

	_, _ = e.Process(ds, "len(")
	assert.Equal(t, 1, e.CacheSize())
}

func TestEvaluator_CacheBounded(t *testing.T) {
	ds := dataset.Sample()

	tests := []struct {
		name     string
		capacity int
		queries  int
		want     int
	}{
		{"under capacity", 4, 3, 3},
		{"evicts beyond capacity", 4, 10, 4},
		{"disabled", 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvaluator(WithCacheSize(tt.capacity))
			for i := 0; i < tt.queries; i++ {
				res, err := e.Process(ds, fmt.Sprintf("len(data) + %d", i))
				require.NoError(t, err)
				assert.Equal(t, 12+i, res.Value)
			}
			assert.Equal(t, tt.want, e.CacheSize())
		})
	}

	assert.Equal(t, DefaultCacheSize, NewEvaluator().cacheSize)
	assert.Equal(t, DefaultCacheSize, NewEvaluator(WithCacheSize(-1)).cacheSize)
}

func TestProgramCache_LeastRecentlyUsed(t *testing.T) {
	c := newProgramCache(2)
	a, b, d := &vm.Program{}, &vm.Program{}, &vm.Program{}
	c.put("a", a)
	c.put("b", b)

	// reading a makes b the oldest entry
	got, ok := c.get("a")
	require.True(t, ok)
	assert.Same(t, a, got)

	c.put("d", d)
	assert.Equal(t, 2, c.size())
	_, ok = c.get("b")
	assert.False(t, ok)
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("d")
	assert.True(t, ok)
}

func TestEvaluator_Concurrent(t *testing.T) {
	e := NewEvaluator()
	ds := dataset.Sample()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := e.Process(ds, "len(filter(data, .Profit >= 20))")
			assert.NoError(t, err)
			assert.Equal(t, 6, res.Value)
		}()
	}
	wg.Wait()
}

func TestWithFunction(t *testing.T) {
	e := NewEvaluator(WithFunction("double", func(params ...interface{}) (interface{}, error) {
		return cast.ToFloat64(params[0]) * 2, nil
	}))
	res, err := e.Process(dataset.Sample(), "double(total(data, \"Sales\"))")
	require.NoError(t, err)
	assert.Equal(t, 1538.0, res.Value)
}

func TestFunctionNames(t *testing.T) {
	assert.Equal(t, []string{
		"average", "avgBy", "column", "countBy", "highest", "lowest",
		"maxBy", "minBy", "percentBy", "rows", "sumBy", "total",
	}, FunctionNames())
}

func TestToRows(t *testing.T) {
	rows, err := toRows([]interface{}{map[string]interface{}{"a": 1.0}, dataset.Row{"a": 2.0}})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = toRows(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = toRows("data")
	assert.Error(t, err)
}
