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

package aggregator

import (
	"github.com/rulego/dataquery/dataset"
)

// Reduce applies one aggregate over a column of every row
func Reduce(rows []dataset.Row, column string, aggType AggregateType) (float64, error) {
	agg, err := CreateBuiltinAggregator(aggType)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		agg.Add(row[column])
	}
	return agg.Result(), nil
}

// ReduceByGroup applies one aggregate per group key
func ReduceByGroup(rows []dataset.Row, column string, aggType AggregateType, groupBy ...string) (map[string]float64, error) {
	ga, err := NewGroupAggregator(groupBy, column, aggType)
	if err != nil {
		return nil, err
	}
	return ga.AddAll(rows).Results(), nil
}

func mustReduce(rows []dataset.Row, column string, aggType AggregateType) float64 {
	v, _ := Reduce(rows, column, aggType)
	return v
}

func mustReduceByGroup(rows []dataset.Row, column string, aggType AggregateType, groupBy []string) map[string]float64 {
	if len(groupBy) == 0 {
		return map[string]float64{}
	}
	v, _ := ReduceByGroup(rows, column, aggType, groupBy...)
	return v
}

// CalculateSum adds the coerced column values
func CalculateSum(rows []dataset.Row, column string) float64 {
	return mustReduce(rows, column, Sum)
}

// CalculateAverage is CalculateSum divided by the number of rows; NaN for no rows
func CalculateAverage(rows []dataset.Row, column string) float64 {
	return mustReduce(rows, column, Avg)
}

// CalculateMax returns the largest coerced value; -Inf for no rows
func CalculateMax(rows []dataset.Row, column string) float64 {
	return mustReduce(rows, column, Max)
}

// CalculateMin returns the smallest coerced value; +Inf for no rows
func CalculateMin(rows []dataset.Row, column string) float64 {
	return mustReduce(rows, column, Min)
}

// CalculateCount returns the number of rows
func CalculateCount(rows []dataset.Row) int {
	return len(rows)
}

func CalculateSumByGroup(rows []dataset.Row, column string, groupBy ...string) map[string]float64 {
	return mustReduceByGroup(rows, column, Sum, groupBy)
}

func CalculateAverageByGroup(rows []dataset.Row, column string, groupBy ...string) map[string]float64 {
	return mustReduceByGroup(rows, column, Avg, groupBy)
}

func CalculateMaxByGroup(rows []dataset.Row, column string, groupBy ...string) map[string]float64 {
	return mustReduceByGroup(rows, column, Max, groupBy)
}

func CalculateMinByGroup(rows []dataset.Row, column string, groupBy ...string) map[string]float64 {
	return mustReduceByGroup(rows, column, Min, groupBy)
}

// CalculateCountByGroup counts rows per group key; the counts add up to len(rows)
func CalculateCountByGroup(rows []dataset.Row, groupBy ...string) map[string]float64 {
	return mustReduceByGroup(rows, "", Count, groupBy)
}

// CalculatePercentageByGroup returns each group's share of the column total, in
// percent. A zero total yields NaN or infinite shares.
func CalculatePercentageByGroup(rows []dataset.Row, column string, groupBy ...string) map[string]float64 {
	total := CalculateSum(rows, column)
	sums := CalculateSumByGroup(rows, column, groupBy...)
	result := make(map[string]float64, len(sums))
	for key, sum := range sums {
		result[key] = sum / total * 100
	}
	return result
}
