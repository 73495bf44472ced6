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
	"sort"

	"github.com/rulego/dataquery/dataset"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OrderBy 排序子句，默认升序
type OrderBy struct {
	Column string
	Desc   bool
}

func (o *OrderBy) String() string {
	if o.Desc {
		return "ORDER BY " + o.Column + " DESC"
	}
	return "ORDER BY " + o.Column + " ASC"
}

// compare 左行的值是数字时按数值比较，否则按区域规则比较字符串
func (o *OrderBy) compare(coll *collate.Collator, a, b dataset.Row) int {
	av := a[o.Column]
	if dataset.IsNumeric(av) {
		x, okA := dataset.ToNumberStrict(av)
		y, okB := b.Number(o.Column)
		if !okA || !okB {
			return 0
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
	return coll.CompareString(a.String(o.Column), b.String(o.Column))
}

// Sort 原地稳定排序
func (o *OrderBy) Sort(rows []dataset.Row, locale language.Tag) {
	// Collator 不是并发安全的，每次排序单独创建
	coll := collate.New(locale)
	sort.SliceStable(rows, func(i, j int) bool {
		c := o.compare(coll, rows[i], rows[j])
		if o.Desc {
			return c > 0
		}
		return c < 0
	})
}
