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

package types

import (
	"encoding/json"
	"math"

	"github.com/rulego/dataquery/dataset"
)

// ResultKind discriminates the shapes an analysis can produce
type ResultKind int

const (
	// ResultScalar a bare number, e.g. AVG(Sales)
	ResultScalar ResultKind = iota
	// ResultGroups group key -> number
	ResultGroups
	// ResultRows filtered rows with their count
	ResultRows
	// ResultSummary ungrouped natural-language answer with description and formula
	ResultSummary
	// ResultMessage explanatory text from the natural-language processor (soft failure)
	ResultMessage
	// ResultValue anything a custom expression returned
	ResultValue
)

// String returns the kind name
func (k ResultKind) String() string {
	switch k {
	case ResultScalar:
		return "scalar"
	case ResultGroups:
		return "groups"
	case ResultRows:
		return "rows"
	case ResultSummary:
		return "summary"
	case ResultMessage:
		return "message"
	case ResultValue:
		return "value"
	default:
		return "unknown"
	}
}

// Summary is the ungrouped answer of the natural-language processor
type Summary struct {
	Result      float64 `json:"result" yaml:"result"`
	Description string  `json:"description" yaml:"description"`
	Formula     string  `json:"formula" yaml:"formula"`
}

// RowSet is the output of the filter processor
type RowSet struct {
	Count int           `json:"count" yaml:"count"`
	Data  []dataset.Row `json:"data" yaml:"data"`
}

// Result is the outcome of one analysis call. Exactly one payload field,
// selected by Kind, is meaningful.
type Result struct {
	Kind    ResultKind
	Scalar  float64
	Groups  map[string]float64
	Rows    *RowSet
	Summary *Summary
	Message string
	Value   interface{}
}

func ScalarResult(v float64) *Result {
	return &Result{Kind: ResultScalar, Scalar: v}
}

func GroupsResult(groups map[string]float64) *Result {
	return &Result{Kind: ResultGroups, Groups: groups}
}

func RowsResult(rows []dataset.Row) *Result {
	if rows == nil {
		rows = []dataset.Row{}
	}
	return &Result{Kind: ResultRows, Rows: &RowSet{Count: len(rows), Data: rows}}
}

func SummaryResult(v float64, description, formula string) *Result {
	return &Result{Kind: ResultSummary, Summary: &Summary{Result: v, Description: description, Formula: formula}}
}

func MessageResult(msg string) *Result {
	return &Result{Kind: ResultMessage, Message: msg}
}

func ValueResult(v interface{}) *Result {
	return &Result{Kind: ResultValue, Value: v}
}

// IsSoftFailure reports whether the result is an explanatory message rather
// than an answer. Callers should display it but not treat it as data.
func (r *Result) IsSoftFailure() bool {
	return r != nil && r.Kind == ResultMessage
}

// IsStructured reports whether the result renders as a document (mapping,
// row collection, summary or composite value) rather than plain text.
func (r *Result) IsStructured() bool {
	switch r.Kind {
	case ResultGroups, ResultRows, ResultSummary:
		return true
	case ResultValue:
		switch r.Value.(type) {
		case nil, string, bool, float64, float32, int, int64, int32, uint, uint64, uint32:
			return false
		}
		return true
	}
	return false
}

// Plain returns the result as plain maps, slices and scalars in the shape
// callers serialise. Non-finite numbers become nil.
func (r *Result) Plain() interface{} {
	switch r.Kind {
	case ResultScalar:
		return finite(r.Scalar)
	case ResultGroups:
		out := make(map[string]interface{}, len(r.Groups))
		for k, v := range r.Groups {
			out[k] = finite(v)
		}
		return out
	case ResultRows:
		data := make([]interface{}, 0, len(r.Rows.Data))
		for _, row := range r.Rows.Data {
			data = append(data, sanitize(map[string]interface{}(row)))
		}
		return map[string]interface{}{"count": r.Rows.Count, "data": data}
	case ResultSummary:
		return map[string]interface{}{
			"result":      finite(r.Summary.Result),
			"description": r.Summary.Description,
			"formula":     r.Summary.Formula,
		}
	case ResultMessage:
		return r.Message
	default:
		return sanitize(r.Value)
	}
}

// MarshalJSON encodes the plain shape
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Plain())
}

// MarshalYAML encodes the plain shape (gopkg.in/yaml.v3 Marshaler)
func (r *Result) MarshalYAML() (interface{}, error) {
	return r.Plain(), nil
}

// String renders scalar-like results as text and everything else as
// indented JSON.
func (r *Result) String() string {
	switch r.Kind {
	case ResultScalar:
		return dataset.FormatNumber(r.Scalar)
	case ResultMessage:
		return r.Message
	case ResultValue:
		if !r.IsStructured() {
			return dataset.Stringify(r.Value)
		}
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(b)
}

func finite(f float64) interface{} {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

// sanitize walks the common container shapes and replaces non-finite floats
// so that encoding/json does not reject the value.
func sanitize(v interface{}) interface{} {
	switch val := v.(type) {
	case float64:
		return finite(val)
	case float32:
		return finite(float64(val))
	case dataset.Row:
		return sanitize(map[string]interface{}(val))
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = sanitize(item)
		}
		return out
	case map[string]float64:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = finite(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = sanitize(item)
		}
		return out
	case []dataset.Row:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = sanitize(map[string]interface{}(item))
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = sanitize(item)
		}
		return out
	case []float64:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = finite(item)
		}
		return out
	default:
		return v
	}
}
