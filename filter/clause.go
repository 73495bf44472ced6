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
	"fmt"
	"math"
	"strings"

	"github.com/rulego/dataquery/dataset"
)

// ClauseKind 谓词子句类型
type ClauseKind int

const (
	KindEquality ClauseKind = iota
	KindGreaterThan
	KindLessThan
	KindInSet
	KindBetween
)

func (k ClauseKind) String() string {
	switch k {
	case KindEquality:
		return "Equality"
	case KindGreaterThan:
		return "GreaterThan"
	case KindLessThan:
		return "LessThan"
	case KindInSet:
		return "InSet"
	case KindBetween:
		return "Between"
	default:
		return "Unknown"
	}
}

// Clause 一个过滤谓词。所有子句按 AND 组合。
type Clause interface {
	Kind() ClauseKind
	Field() string
	Match(row dataset.Row) bool
	String() string
}

// Equality 字符串化后的列值与 Value 完全相等（区分大小写）
type Equality struct {
	Column string
	Value  string
}

func (c *Equality) Kind() ClauseKind { return KindEquality }
func (c *Equality) Field() string    { return c.Column }

func (c *Equality) Match(row dataset.Row) bool {
	return row.String(c.Column) == c.Value
}

func (c *Equality) String() string {
	return fmt.Sprintf("%s = '%s'", c.Column, c.Value)
}

// GreaterThan 数值严格大于。列值或边界不是数字时不匹配。
type GreaterThan struct {
	Column string
	Value  float64
}

func (c *GreaterThan) Kind() ClauseKind { return KindGreaterThan }
func (c *GreaterThan) Field() string    { return c.Column }

func (c *GreaterThan) Match(row dataset.Row) bool {
	v, ok := row.Number(c.Column)
	return ok && v > c.Value
}

func (c *GreaterThan) String() string {
	return fmt.Sprintf("%s > %s", c.Column, dataset.FormatNumber(c.Value))
}

// LessThan 数值严格小于
type LessThan struct {
	Column string
	Value  float64
}

func (c *LessThan) Kind() ClauseKind { return KindLessThan }
func (c *LessThan) Field() string    { return c.Column }

func (c *LessThan) Match(row dataset.Row) bool {
	v, ok := row.Number(c.Column)
	return ok && v < c.Value
}

func (c *LessThan) String() string {
	return fmt.Sprintf("%s < %s", c.Column, dataset.FormatNumber(c.Value))
}

// InSet 字符串化后的列值属于 Values
type InSet struct {
	Column string
	Values []string
}

func (c *InSet) Kind() ClauseKind { return KindInSet }
func (c *InSet) Field() string    { return c.Column }

func (c *InSet) Match(row dataset.Row) bool {
	s := row.String(c.Column)
	for _, v := range c.Values {
		if v == s {
			return true
		}
	}
	return false
}

func (c *InSet) String() string {
	quoted := make([]string, len(c.Values))
	for i, v := range c.Values {
		quoted[i] = "'" + v + "'"
	}
	return fmt.Sprintf("%s IN (%s)", c.Column, strings.Join(quoted, ", "))
}

// Between 闭区间 [Min, Max]
type Between struct {
	Column   string
	Min, Max float64
}

func (c *Between) Kind() ClauseKind { return KindBetween }
func (c *Between) Field() string    { return c.Column }

func (c *Between) Match(row dataset.Row) bool {
	v, ok := row.Number(c.Column)
	return ok && v >= c.Min && v <= c.Max
}

func (c *Between) String() string {
	return fmt.Sprintf("%s BETWEEN %s AND %s", c.Column, dataset.FormatNumber(c.Min), dataset.FormatNumber(c.Max))
}

// bound 解析数值边界；无法解析时为 NaN，任何比较都不成立
func bound(s string) float64 {
	f, ok := dataset.ToNumberStrict(s)
	if !ok {
		return math.NaN()
	}
	return f
}
