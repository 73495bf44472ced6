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

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ToNumber coerces a value for aggregation. Missing values, empty strings,
// false and anything that does not parse as a number count as 0. Numeric
// strings are parsed after trimming. This can silently distort sums over
// dirty columns; callers wanting to detect that should use ToNumberStrict.
func ToNumber(v interface{}) float64 {
	f, ok := ToNumberStrict(v)
	if !ok {
		return 0
	}
	return f
}

// ToNumberStrict converts a value the way comparisons see it: nil, "" and
// false are 0, true is 1, numeric strings parse, everything else is not a
// number (ok == false).
func ToNumberStrict(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, true
		}
		return parseNumber(s)
	case float64:
		return val, !math.IsNaN(val)
	case float32:
		return float64(val), !math.IsNaN(float64(val))
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseNumber(s string) (float64, bool) {
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	// strconv accepts spellings like "inf" and "nan" that are not numbers here
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return 0, false
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether v holds a Go number, as opposed to numeric text.
func IsNumeric(v interface{}) bool {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// Stringify renders a value for equality tests and group keys: nil is
// "null", integral floats have no fraction, infinities are spelled out.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return FormatNumber(val)
	case float32:
		return FormatNumber(float64(val))
	}
	if IsNumeric(v) {
		return cast.ToString(v)
	}
	return fmt.Sprint(v)
}

// FormatNumber prints a float the way JavaScript's String does: no trailing
// fraction when integral, exponent notation (1e+21, 1e-7) when the magnitude
// is at least 1e21 or below 1e-6, NaN and infinities by name, -0 as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		return exponent(f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// exponent formats f in shortest exponent form without the zero padding
// strconv adds to the exponent, e.g. 1e-07 becomes 1e-7.
func exponent(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + exp[:1] + digits
}
