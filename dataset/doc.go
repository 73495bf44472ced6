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

// Package dataset holds the in-memory table every analysis runs over.
//
// A Dataset is an ordered list of rows plus the column order of the source
// file. Rows map column names to float64, string, bool or nil values.
// LoadCSV infers numbers and booleans from cell text; Open also
// decompresses gzip, bzip2, zstd and xz files picked by extension.
//
// Numeric coercion comes in two flavours. ToNumber never fails and maps
// anything unparseable to 0, which is what the aggregations use.
// ToNumberStrict reports whether the value was numeric, which is what
// comparisons use.
package dataset
