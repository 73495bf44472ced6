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
	"encoding/json"
	"fmt"
	"io"

	"github.com/rulego/dataquery/types"
	"github.com/rulego/dataquery/utils/table"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

// writeResult renders result in the requested format. columns orders the
// table view of row results.
func writeResult(w io.Writer, format string, result *types.Result, columns []string) error {
	switch format {
	case OutputText:
		_, err := fmt.Fprintln(w, result.String())
		return err
	case OutputJSON:
		return writeJSON(w, result)
	case OutputYAML:
		return writeYAML(w, result)
	case OutputTable:
		table.WriteResult(w, result, columns)
		return nil
	default:
		return fmt.Errorf("invalid output %q (use text, json, yaml or table)", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
