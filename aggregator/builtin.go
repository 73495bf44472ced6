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
	"fmt"
	"math"
	"strings"

	"github.com/rulego/dataquery/dataset"
)

type AggregateType string

const (
	Sum   AggregateType = "sum"
	Count AggregateType = "count"
	Avg   AggregateType = "avg"
	Max   AggregateType = "max"
	Min   AggregateType = "min"
)

// Formula returns the upper-case operator name used in formula queries
func (t AggregateType) Formula() string {
	return strings.ToUpper(string(t))
}

// ParseAggregateType resolves an operator name case-insensitively
func ParseAggregateType(name string) (AggregateType, bool) {
	t := AggregateType(strings.ToLower(strings.TrimSpace(name)))
	switch t {
	case Sum, Count, Avg, Max, Min:
		return t, true
	}
	return "", false
}

// AggregatorFunction reduces a stream of values to one number.
// Values are coerced with dataset.ToNumber, so missing and non-numeric
// values count as 0.
type AggregatorFunction interface {
	New() AggregatorFunction
	Add(value interface{})
	Result() float64
}

type SumAggregator struct {
	value float64
}

func (s *SumAggregator) New() AggregatorFunction {
	return &SumAggregator{}
}

func (s *SumAggregator) Add(v interface{}) {
	s.value += dataset.ToNumber(v)
}

func (s *SumAggregator) Result() float64 {
	return s.value
}

type CountAggregator struct {
	count int
}

func (c *CountAggregator) New() AggregatorFunction {
	return &CountAggregator{}
}

func (c *CountAggregator) Add(_ interface{}) {
	c.count++
}

func (c *CountAggregator) Result() float64 {
	return float64(c.count)
}

// AvgAggregator divides by the number of values added, including the ones
// that coerced to 0. With nothing added the result is NaN.
type AvgAggregator struct {
	sum   float64
	count int
}

func (a *AvgAggregator) New() AggregatorFunction {
	return &AvgAggregator{}
}

func (a *AvgAggregator) Add(v interface{}) {
	a.sum += dataset.ToNumber(v)
	a.count++
}

func (a *AvgAggregator) Result() float64 {
	return a.sum / float64(a.count)
}

// MaxAggregator starts at -Inf, which is also its result for no input
type MaxAggregator struct {
	value float64
	seen  bool
}

func (m *MaxAggregator) New() AggregatorFunction {
	return &MaxAggregator{}
}

func (m *MaxAggregator) Add(v interface{}) {
	vv := dataset.ToNumber(v)
	if !m.seen || vv > m.value {
		m.value = vv
		m.seen = true
	}
}

func (m *MaxAggregator) Result() float64 {
	if !m.seen {
		return math.Inf(-1)
	}
	return m.value
}

// MinAggregator starts at +Inf, which is also its result for no input
type MinAggregator struct {
	value float64
	seen  bool
}

func (m *MinAggregator) New() AggregatorFunction {
	return &MinAggregator{}
}

func (m *MinAggregator) Add(v interface{}) {
	vv := dataset.ToNumber(v)
	if !m.seen || vv < m.value {
		m.value = vv
		m.seen = true
	}
}

func (m *MinAggregator) Result() float64 {
	if !m.seen {
		return math.Inf(1)
	}
	return m.value
}

// CreateBuiltinAggregator returns a fresh reducer for the aggregate type
func CreateBuiltinAggregator(aggType AggregateType) (AggregatorFunction, error) {
	switch aggType {
	case Sum:
		return &SumAggregator{}, nil
	case Count:
		return &CountAggregator{}, nil
	case Avg:
		return &AvgAggregator{}, nil
	case Max:
		return &MaxAggregator{}, nil
	case Min:
		return &MinAggregator{}, nil
	default:
		return nil, fmt.Errorf("unsupported aggregator type: %s", aggType)
	}
}
