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

// Package chart shapes a dataset into series for bar, line, pie and scatter
// charts. It does not render anything.
package chart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rulego/dataquery/dataset"
)

// Type is the kind of chart a series is shaped for
type Type string

const (
	Bar     Type = "bar"
	Line    Type = "line"
	Pie     Type = "pie"
	Scatter Type = "scatter"
)

// Types lists the supported chart types
func Types() []Type {
	return []Type{Bar, Line, Pie, Scatter}
}

// ParseType resolves a chart type name case-insensitively
func ParseType(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	switch t {
	case Bar, Line, Pie, Scatter:
		return t, nil
	}
	return "", fmt.Errorf("unsupported chart type %q", name)
}

// Config selects the axes of a chart. GroupBy is optional.
type Config struct {
	Type    Type   `json:"type" yaml:"type"`
	XAxis   string `json:"xAxis" yaml:"xAxis"`
	YAxis   string `json:"yAxis" yaml:"yAxis"`
	GroupBy string `json:"groupBy,omitempty" yaml:"groupBy,omitempty"`
}

// DefaultConfig picks a bar chart over the first column against the first
// column whose first-row value reads as a number. Without one the second
// column, or the only column, is used.
func DefaultConfig(ds *dataset.Dataset) Config {
	cfg := Config{Type: Bar}
	if ds.Empty() || len(ds.Columns) == 0 {
		return cfg
	}
	cfg.XAxis = ds.Columns[0]
	first := ds.Rows[0]
	for _, col := range ds.Columns {
		if _, isBool := first[col].(bool); isBool {
			continue
		}
		if _, ok := first.Number(col); ok {
			cfg.YAxis = col
			return cfg
		}
	}
	if len(ds.Columns) > 1 {
		cfg.YAxis = ds.Columns[1]
	} else {
		cfg.YAxis = ds.Columns[0]
	}
	return cfg
}

// WithDefaults fills the empty fields of c from DefaultConfig
func (c Config) WithDefaults(ds *dataset.Dataset) Config {
	d := DefaultConfig(ds)
	if c.Type == "" {
		c.Type = d.Type
	}
	if c.XAxis == "" {
		c.XAxis = d.XAxis
	}
	if c.YAxis == "" {
		c.YAxis = d.YAxis
	}
	return c
}

// Point is one element of a series. Keys depend on the chart type:
// pie has name/value, scatter has x/y/name and an optional category,
// bar and line have name plus one numeric key per series.
type Point map[string]interface{}

// Process shapes the rows for the configured chart. An empty dataset or a
// missing axis yields an empty series. Y values are coerced with
// dataset.ToNumber, so text counts as 0.
func Process(ds *dataset.Dataset, cfg Config) []Point {
	if ds.Empty() || cfg.XAxis == "" || cfg.YAxis == "" {
		return []Point{}
	}
	switch cfg.Type {
	case Pie:
		return pie(ds.Rows, cfg)
	case Scatter:
		return scatter(ds.Rows, cfg)
	}
	if cfg.GroupBy != "" {
		return grouped(ds.Rows, cfg)
	}
	return plain(ds.Rows, cfg)
}

// pie sums Y per distinct X
func pie(rows []dataset.Row, cfg Config) []Point {
	var order []string
	sums := make(map[string]float64)
	for _, row := range rows {
		key := row.String(cfg.XAxis)
		if _, ok := sums[key]; !ok {
			order = append(order, key)
		}
		sums[key] += row.Float(cfg.YAxis)
	}

	points := make([]Point, 0, len(order))
	for _, key := range order {
		points = append(points, Point{"name": key, "value": sums[key]})
	}
	return points
}

func scatter(rows []dataset.Row, cfg Config) []Point {
	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		p := Point{
			"x":    row.Float(cfg.XAxis),
			"y":    row.Float(cfg.YAxis),
			"name": row.String(cfg.XAxis),
		}
		if cfg.GroupBy != "" && row.Has(cfg.GroupBy) {
			p["category"] = row.String(cfg.GroupBy)
		}
		points = append(points, p)
	}
	return points
}

// grouped emits one point per distinct X with a zero-initialised key per
// distinct group, then adds Y into its (X, group) cell.
func grouped(rows []dataset.Row, cfg Config) []Point {
	var xs, groups []string
	seenX := make(map[string]bool)
	seenGroup := make(map[string]bool)
	for _, row := range rows {
		x := row.String(cfg.XAxis)
		if !seenX[x] {
			seenX[x] = true
			xs = append(xs, x)
		}
		g := row.String(cfg.GroupBy)
		if !seenGroup[g] {
			seenGroup[g] = true
			groups = append(groups, g)
		}
	}

	byX := make(map[string]Point, len(xs))
	points := make([]Point, 0, len(xs))
	for _, x := range xs {
		p := Point{"name": x}
		for _, g := range groups {
			p[g] = 0.0
		}
		byX[x] = p
		points = append(points, p)
	}

	for _, row := range rows {
		g := row.String(cfg.GroupBy)
		if g == "" {
			continue
		}
		p := byX[row.String(cfg.XAxis)]
		sum, _ := p[g].(float64)
		p[g] = sum + row.Float(cfg.YAxis)
	}
	return points
}

func plain(rows []dataset.Row, cfg Config) []Point {
	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		points = append(points, Point{
			"name":    row.String(cfg.XAxis),
			cfg.YAxis: row.Float(cfg.YAxis),
		})
	}
	return points
}

// Series returns the sorted numeric keys of a bar or line series, i.e. the
// bars or lines a renderer should draw.
func Series(points []Point) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, p := range points {
		for k, v := range p {
			if _, ok := v.(float64); !ok || k == "name" || seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
