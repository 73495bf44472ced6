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
Package dataquery 是一个轻量级的内存表格数据分析引擎。

DataQuery 对 CSV 或内置示例数据执行即席分析查询，支持四种查询方言，
查询结果是标量、分组映射、行集合、摘要或任意值。

# 核心特性

• 四种方言 - 自然语言关键词、聚合公式、类 SQL 过滤、表达式
• 共享聚合原语 - SUM, AVG, MAX, MIN, COUNT 以及分组和百分比
• 无状态引擎 - 不修改输入数据，可并发调用
• 数据加载 - CSV/TSV，支持 gzip、bzip2、xz、zstd 压缩文件

# 入门示例

	package main

	import (
		"fmt"

		"github.com/rulego/dataquery"
		"github.com/rulego/dataquery/dataset"
		"github.com/rulego/dataquery/types"
	)

	func main() {
		engine := dataquery.New()
		ds := dataset.Sample()

		result, err := engine.Analyze(ds, "AVG(Sales) GROUP BY Region", types.ModeFormulas)
		if err != nil {
			panic(err)
		}
		fmt.Println(result) // {"East": 64, "North": 68, ...}
	}

# 查询方言

自然语言（types.ModeNatural）按关键词匹配意图，查询中出现的第一个列名作为值列，
"for each <列>"、"by <列>"、"group by <列>" 等短语指定分组：

	What is the average Sales for each Region?
	Which Region has the highest Sales in December?
	How many rows are there?

无法理解的查询返回 ResultMessage 提示文本，不是错误。

公式（types.ModeFormulas）语法为 OP(column) [GROUP BY col[,col...]]，
OP 为 AVG、SUM、COUNT、MAX、MIN，只有 COUNT 可以使用 *：

	AVG(Sales) GROUP BY Region
	COUNT(*) GROUP BY Region

多列分组默认只使用第一列，WithCompositeGroupBy 启用组合键。

过滤（types.ModeFilters）依次提取等值、大于、小于、IN、BETWEEN 子句并以 AND 组合，
最后按 ORDER BY 稳定排序：

	Sales > 60 ORDER BY Sales DESC
	Region = 'North' AND Profit > 15
	Month IN ('January', 'February', 'March')
	Sales BETWEEN 50 AND 70

不支持 OR 和括号优先级。

表达式（types.ModeCustom）使用 expr 语言求值，data 绑定为行数组，
除内置函数外还可以使用 total、average、highest、lowest、column、rows
以及 sumBy、avgBy、maxBy、minBy、countBy、percentBy：

	total(data, "Sales") / len(data)
	map(filter(data, .Region == "North"), .Sales)
	sumBy(data, "Profit", "Region")["North"]

编译或运行失败统一返回执行错误，原始错误写入日志。

# 错误处理

所有错误都是 *types.Error，按 Kind 区分输入、语法、引用和执行错误：

	result, err := engine.Analyze(ds, "AVG(Revenue)", types.ModeFormulas)
	if types.IsKind(err, types.KindReference) {
		// Column 'Revenue' not found in data
	}

# 日志

	engine := dataquery.New(dataquery.WithLogOutput(os.Stderr, logger.DEBUG))

每次分析调用带有一个请求 ID，调试日志记录方言、行数、结果类型和耗时。
*/
package dataquery
