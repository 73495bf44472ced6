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

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestAnalyze(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"formula scalar", []string{"analyze", "--sample", "-m", "formulas", "COUNT(*)"}, "12\n"},
		{"natural soft failure", []string{"analyze", "hello", "there"}, "I couldn't understand your query. Please try rephrasing or use a specific format.\n"},
		{"custom value", []string{"analyze", "-m", "custom", `highest(data, "Sales")`}, "85\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := run(t, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestAnalyze_JSONAndYAML(t *testing.T) {
	isolate(t)

	out, _, code := run(t, "analyze", "-m", "formulas", "-o", "json", "SUM(Sales) GROUP BY Region")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"North":204,"East":192,"West":170,"South":203}`, out)

	out, _, code = run(t, "analyze", "-m", "filters", "-o", "yaml", "Region = 'North' AND Profit > 15")
	require.Equal(t, 0, code)
	var decoded struct {
		Count int                      `yaml:"count"`
		Data  []map[string]interface{} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 2, decoded.Count)
	assert.Len(t, decoded.Data, 2)
}

func TestAnalyze_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,price\npen,2\nbook,12\nbag,30\n"), 0o644))

	out, errOut, code := run(t, "analyze", "--file", path, "-m", "filters", "-o", "table", "price > 5 ORDER BY price DESC")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "| name | price |")
	assert.Contains(t, out, "| bag  | 30    |")
	assert.Contains(t, out, "(2 rows)")
}

func TestAnalyze_Errors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown mode", []string{"analyze", "-m", "sql", "SELECT 1"}, "Unknown analysis type: sql"},
		{"missing column", []string{"analyze", "-m", "formulas", "AVG(Revenue)"}, "Column 'Revenue' not found in data"},
		{"bad formula", []string{"analyze", "-m", "formulas", "MEDIAN(Sales)"}, "Invalid formula format"},
		{"custom failure", []string{"analyze", "-m", "custom", "data["}, "Failed to execute custom code"},
		{"bad output", []string{"analyze", "-o", "xml", "COUNT(*)"}, "invalid output"},
		{"no query", []string{"analyze"}, "requires at least 1 arg"},
		{"file and sample", []string{"analyze", "--sample", "--file", "x.csv", "q"}, "mutually exclusive"},
		{"excel", []string{"analyze", "--file", "book.xlsx", "q"}, "Excel parsing is not implemented"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, code := run(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestShow(t *testing.T) {
	isolate(t)

	out, _, code := run(t, "show", "--page", "2", "--page-size", "5")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "| Month     | Sales | Expenses | Profit | Region |")
	assert.Contains(t, out, "| June      | 55    | 35       | 20     | East   |")
	assert.Contains(t, out, "(5 rows)")
	assert.Contains(t, out, "page 2 of 3, 12 rows total")

	_, errOut, code := run(t, "show", "--page", "4", "--page-size", "5")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "page 4 out of range (1-3)")
}

func TestShow_SearchAndSort(t *testing.T) {
	isolate(t)

	tests := []struct {
		name   string
		args   []string
		months []string
		footer string
	}{
		{"search", []string{"--search", "NORTH"}, []string{"January", "February", "March"}, "page 1 of 1, 3 rows total"},
		{"search then sort", []string{"--search", "north", "--sort", "Sales", "--desc", "--page-size", "2"}, []string{"March", "January"}, "page 1 of 2, 3 rows total"},
		{"sort text", []string{"--sort", "Month", "--page-size", "3"}, []string{"April", "August", "December"}, "page 1 of 4, 12 rows total"},
		{"sort numbers", []string{"--sort", "Profit", "--page-size", "2", "--page", "6"}, []string{"March", "August"}, "page 6 of 6, 12 rows total"},
		{"no match", []string{"--search", "zzz"}, nil, "page 1 of 0, 0 rows total"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := run(t, append([]string{"show"}, tt.args...)...)
			require.Equal(t, 0, code, errOut)
			assert.Contains(t, out, tt.footer)
			last := -1
			for _, month := range tt.months {
				i := strings.Index(out, "| "+month+" ")
				require.Greater(t, i, last, month)
				last = i
			}
			assert.Contains(t, out, fmt.Sprintf("(%d rows)", len(tt.months)))
		})
	}

	_, errOut, code := run(t, "show", "--sort", "Revenue")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown sort column "Revenue"`)
}

func TestChart(t *testing.T) {
	isolate(t)

	out, errOut, code := run(t, "chart", "--type", "pie", "--x", "Region", "--y", "Sales")
	require.Equal(t, 0, code, errOut)
	var decoded chartOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "pie", string(decoded.Config.Type))
	require.Len(t, decoded.Data, 4)
	assert.Equal(t, "North", decoded.Data[0]["name"])
	assert.Equal(t, 204.0, decoded.Data[0]["value"])
	assert.Empty(t, decoded.Series)

	out, _, code = run(t, "chart", "--x", "Month", "--y", "Profit", "--group", "Region")
	require.Equal(t, 0, code)
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, []string{"East", "North", "South", "West"}, decoded.Series)
	assert.Len(t, decoded.Data, 12)

	_, errOut, code = run(t, "chart", "--type", "radar", "--x", "Month", "--y", "Sales")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unsupported chart type")
}

func TestChart_DefaultAxes(t *testing.T) {
	isolate(t)

	out, errOut, code := run(t, "chart")
	require.Equal(t, 0, code, errOut)
	var decoded chartOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "bar", string(decoded.Config.Type))
	assert.Equal(t, "Month", decoded.Config.XAxis)
	assert.Equal(t, "Sales", decoded.Config.YAxis)
	assert.Equal(t, []string{"Sales"}, decoded.Series)
	require.Len(t, decoded.Data, 12)
	assert.Equal(t, 65.0, decoded.Data[0]["Sales"])

	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,price\npen,2\nbook,12\n"), 0o644))
	out, errOut, code = run(t, "chart", "--file", path, "--type", "pie", "-o", "yaml")
	require.Equal(t, 0, code, errOut)
	var doc chartOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "name", doc.Config.XAxis)
	assert.Equal(t, "price", doc.Config.YAxis)
	assert.Len(t, doc.Data, 2)
}

func TestChart_InvalidOutput(t *testing.T) {
	isolate(t)

	for _, format := range []string{"table", "text", "xml"} {
		t.Run(format, func(t *testing.T) {
			out, errOut, code := run(t, "chart", "--x", "Month", "--y", "Sales", "-o", format)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "invalid output")
		})
	}
}

func TestExamples(t *testing.T) {
	isolate(t)

	out, _, code := run(t, "examples")
	require.Equal(t, 0, code)
	for _, header := range []string{"natural:", "formulas:", "filters:", "custom:"} {
		assert.Contains(t, out, header)
	}

	out, _, code = run(t, "examples", "--mode", "custom")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `  sumBy(data, "Sales", "Region")`)
	assert.NotContains(t, out, "formulas:")
}

func TestConfig(t *testing.T) {
	home := isolate(t)

	out, errOut, code := run(t, "config", "init")
	require.Equal(t, 0, code, errOut)
	path := filepath.Join(home, ".dataquery", "config.yaml")
	assert.Equal(t, "Wrote "+path+"\n", out)
	assert.FileExists(t, path)

	_, errOut, code = run(t, "config", "init")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "already exists")

	_, _, code = run(t, "config", "init", "--force")
	assert.Equal(t, 0, code)

	require.NoError(t, os.WriteFile(path, []byte("output: json\nmode: formulas\n"), 0o644))
	out, _, code = run(t, "config", "show")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "output: json")
	assert.Contains(t, out, "page_size: 10")

	out, _, code = run(t, "analyze", "COUNT(*) GROUP BY Region")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"North":3,"East":3,"West":3,"South":3}`, out)
}

func TestConfig_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, errOut, code := run(t, "--config", path, "config", "init")
	require.Equal(t, 0, code, errOut)

	out, _, code := run(t, "--config", path, "--log-level", "off", "config", "show")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "mode: natural")

	_, errOut, code = run(t, "--log-level", "loud", "examples")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}
