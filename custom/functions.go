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
	"fmt"
	"sort"

	"github.com/rulego/dataquery/aggregator"
	"github.com/rulego/dataquery/dataset"
	"github.com/spf13/cast"
)

// Function 表达式中可调用的数据集辅助函数
type Function func(params ...interface{}) (interface{}, error)

// 分组辅助函数的聚合类型
var groupHelpers = map[string]aggregator.AggregateType{
	"sumBy": aggregator.Sum,
	"avgBy": aggregator.Avg,
	"maxBy": aggregator.Max,
	"minBy": aggregator.Min,
}

// 标量辅助函数的聚合类型
var scalarHelpers = map[string]aggregator.AggregateType{
	"total":   aggregator.Sum,
	"average": aggregator.Avg,
	"highest": aggregator.Max,
	"lowest":  aggregator.Min,
}

// builtinFunctions 返回默认的辅助函数白名单。
// 名称避开了表达式语言自带的 sum、max、min、count 等内置函数。
func builtinFunctions() map[string]Function {
	fns := map[string]Function{
		"column":    columnValues,
		"rows":      rowCount,
		"countBy":   countBy,
		"percentBy": percentBy,
	}
	for name, t := range scalarHelpers {
		fns[name] = scalarHelper(name, t)
	}
	for name, t := range groupHelpers {
		fns[name] = groupHelper(name, t)
	}
	return fns
}

// FunctionNames 默认辅助函数名称，按字母排序
func FunctionNames() []string {
	fns := builtinFunctions()
	names := make([]string, 0, len(fns))
	for name := range fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func scalarHelper(name string, t aggregator.AggregateType) Function {
	return func(params ...interface{}) (interface{}, error) {
		rows, column, err := rowsAndColumn(name, params, 2)
		if err != nil {
			return nil, err
		}
		return aggregator.Reduce(rows, column, t)
	}
}

func groupHelper(name string, t aggregator.AggregateType) Function {
	return func(params ...interface{}) (interface{}, error) {
		rows, column, err := rowsAndColumn(name, params, 3)
		if err != nil {
			return nil, err
		}
		group, err := cast.ToStringE(params[2])
		if err != nil {
			return nil, fmt.Errorf("%s: group column must be a string", name)
		}
		groups, err := aggregator.ReduceByGroup(rows, column, t, group)
		if err != nil {
			return nil, err
		}
		return toEnvMap(groups), nil
	}
}

// column(data, "Sales") 返回该列的所有值，缺失为 nil
func columnValues(params ...interface{}) (interface{}, error) {
	rows, column, err := rowsAndColumn("column", params, 2)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, len(rows))
	for i, row := range rows {
		values[i] = row[column]
	}
	return values, nil
}

// rows(data) 返回行数
func rowCount(params ...interface{}) (interface{}, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("rows: expected 1 argument, got %d", len(params))
	}
	rows, err := toRows(params[0])
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return len(rows), nil
}

// countBy(data, "Region")
func countBy(params ...interface{}) (interface{}, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("countBy: expected 2 arguments, got %d", len(params))
	}
	rows, err := toRows(params[0])
	if err != nil {
		return nil, fmt.Errorf("countBy: %w", err)
	}
	group, err := cast.ToStringE(params[1])
	if err != nil {
		return nil, fmt.Errorf("countBy: group column must be a string")
	}
	return toEnvMap(aggregator.CalculateCountByGroup(rows, group)), nil
}

// percentBy(data, "Sales", "Region")
func percentBy(params ...interface{}) (interface{}, error) {
	rows, column, err := rowsAndColumn("percentBy", params, 3)
	if err != nil {
		return nil, err
	}
	group, err := cast.ToStringE(params[2])
	if err != nil {
		return nil, fmt.Errorf("percentBy: group column must be a string")
	}
	return toEnvMap(aggregator.CalculatePercentageByGroup(rows, column, group)), nil
}

func rowsAndColumn(name string, params []interface{}, want int) ([]dataset.Row, string, error) {
	if len(params) != want {
		return nil, "", fmt.Errorf("%s: expected %d arguments, got %d", name, want, len(params))
	}
	rows, err := toRows(params[0])
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	column, err := cast.ToStringE(params[1])
	if err != nil {
		return nil, "", fmt.Errorf("%s: column must be a string", name)
	}
	return rows, column, nil
}

// toRows 接受 data 本身或 filter 等内置函数返回的行数组
func toRows(v interface{}) ([]dataset.Row, error) {
	switch val := v.(type) {
	case []dataset.Row:
		return val, nil
	case []map[string]interface{}:
		rows := make([]dataset.Row, len(val))
		for i, m := range val {
			rows[i] = m
		}
		return rows, nil
	case []interface{}:
		rows := make([]dataset.Row, len(val))
		for i, item := range val {
			switch m := item.(type) {
			case map[string]interface{}:
				rows[i] = m
			case dataset.Row:
				rows[i] = m
			default:
				return nil, fmt.Errorf("element %d is %T, not a row", i, item)
			}
		}
		return rows, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("expected an array of rows, got %T", v)
}

// toEnvMap 转成表达式语言可以继续索引和遍历的 map
func toEnvMap(groups map[string]float64) map[string]interface{} {
	out := make(map[string]interface{}, len(groups))
	for k, v := range groups {
		out[k] = v
	}
	return out
}
