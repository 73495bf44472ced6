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
	"errors"
	"strings"

	"github.com/rulego/dataquery/dataset"
)

// GroupKeySeparator joins the values of a composite group key
const GroupKeySeparator = "|"

// GroupKey stringifies the group column values of a row. A single column
// yields its plain stringified value; several are joined with GroupKeySeparator.
func GroupKey(row dataset.Row, groupFields []string) string {
	if len(groupFields) == 1 {
		return row.String(groupFields[0])
	}
	parts := make([]string, len(groupFields))
	for i, field := range groupFields {
		parts[i] = row.String(field)
	}
	return strings.Join(parts, GroupKeySeparator)
}

// GroupAggregator buckets rows by group key and reduces InputField per bucket.
// It is not safe for concurrent use; build one per calculation.
type GroupAggregator struct {
	InputField    string
	AggregateType AggregateType
	groupFields   []string
	groups        map[string]AggregatorFunction
	order         []string
}

// NewGroupAggregator creates a group aggregator. InputField is ignored by Count.
func NewGroupAggregator(groupFields []string, inputField string, aggType AggregateType) (*GroupAggregator, error) {
	if len(groupFields) == 0 {
		return nil, errors.New("at least one group field is required")
	}
	if _, err := CreateBuiltinAggregator(aggType); err != nil {
		return nil, err
	}
	return &GroupAggregator{
		InputField:    inputField,
		AggregateType: aggType,
		groupFields:   groupFields,
		groups:        make(map[string]AggregatorFunction),
	}, nil
}

// Add feeds one row into its bucket
func (ga *GroupAggregator) Add(row dataset.Row) {
	key := GroupKey(row, ga.groupFields)
	agg, exists := ga.groups[key]
	if !exists {
		agg, _ = CreateBuiltinAggregator(ga.AggregateType)
		ga.groups[key] = agg
		ga.order = append(ga.order, key)
	}
	agg.Add(row[ga.InputField])
}

// AddAll feeds every row
func (ga *GroupAggregator) AddAll(rows []dataset.Row) *GroupAggregator {
	for _, row := range rows {
		ga.Add(row)
	}
	return ga
}

// Keys returns the group keys in first-seen order
func (ga *GroupAggregator) Keys() []string {
	keys := make([]string, len(ga.order))
	copy(keys, ga.order)
	return keys
}

// Results returns group key -> aggregate
func (ga *GroupAggregator) Results() map[string]float64 {
	result := make(map[string]float64, len(ga.groups))
	for key, agg := range ga.groups {
		result[key] = agg.Result()
	}
	return result
}

// Reset drops all buckets
func (ga *GroupAggregator) Reset() {
	ga.groups = make(map[string]AggregatorFunction)
	ga.order = nil
}
