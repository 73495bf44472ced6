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

/*
Package aggregator provides the aggregation primitives shared by every
DataQuery dialect.

# Reducers

Each builtin reducer implements AggregatorFunction:

	type AggregatorFunction interface {
		New() AggregatorFunction
		Add(value interface{})
		Result() float64
	}

Values are coerced with dataset.ToNumber before they are reduced, so missing
cells and text that is not a number count as 0. Edge results over no input
are deliberate: Avg is NaN, Max is -Inf and Min is +Inf.

# Grouping

GroupAggregator buckets rows by the stringified value of the group columns
and keeps one reducer per bucket:

	ga, _ := aggregator.NewGroupAggregator([]string{"Region"}, "Sales", aggregator.Avg)
	avgByRegion := ga.AddAll(ds.Rows).Results() // map[North:68 East:64 ...]

# Calculators

The Calculate* helpers wrap both for the common cases:

	aggregator.CalculateSum(rows, "Sales")
	aggregator.CalculateAverageByGroup(rows, "Sales", "Region")
	aggregator.CalculatePercentageByGroup(rows, "Sales", "Region")
*/
package aggregator
