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

import "strings"

// Mode selects the query dialect
type Mode string

const (
	ModeNatural  Mode = "natural"
	ModeFormulas Mode = "formulas"
	ModeFilters  Mode = "filters"
	ModeCustom   Mode = "custom"
)

// Modes lists the recognised dialects in display order
func Modes() []Mode {
	return []Mode{ModeNatural, ModeFormulas, ModeFilters, ModeCustom}
}

// Valid reports whether m is one of the four recognised dialects
func (m Mode) Valid() bool {
	switch m {
	case ModeNatural, ModeFormulas, ModeFilters, ModeCustom:
		return true
	}
	return false
}

// ParseMode converts a user-supplied mode name. Matching ignores case and
// surrounding whitespace; anything else is an input error.
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	if !m.Valid() {
		return "", NewUnknownModeError(name)
	}
	return m, nil
}
