// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"math"
	"strconv"
	"strings"
)

// Display markers for non-finite results.
const (
	MarkerInf    = "Infinity"
	MarkerNegInf = "-Infinity"
	MarkerNaN    = "NaN"
)

// Plain notation is used inside [minPlain, maxPlain); exponent notation outside.
const (
	minPlain = 1e-7
	maxPlain = 1e21
)

// Format converts a number to its display string: the shortest decimal
// that round-trips, in plain notation for ordinary magnitudes and in
// exponent notation (1e+21, 1.5e-8) for very large or very small ones.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return MarkerNaN
	case math.IsInf(v, 1):
		return MarkerInf
	case math.IsInf(v, -1):
		return MarkerNegInf
	case v == 0:
		// covers negative zero
		return "0"
	}

	abs := math.Abs(v)
	if abs >= minPlain && abs < maxPlain {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits (1e-07); trim it.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + exp[:1] + digits
}

// Parse reads the longest numeric prefix of s. Text with no numeric prefix
// parses as NaN.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	prefix := numericPrefix(s)
	if prefix == "" {
		return math.NaN()
	}
	// Out-of-range literals come back as ±Inf or 0 alongside ErrRange,
	// which is the value we want either way.
	v, _ := strconv.ParseFloat(prefix, 64)
	return v
}

// numericPrefix returns the leading part of s that forms a decimal literal
// or one of the non-finite markers.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	if strings.HasPrefix(s[i:], MarkerInf) {
		return s[:i+len(MarkerInf)]
	}
	if i == 0 && strings.HasPrefix(s, MarkerNaN) {
		return MarkerNaN
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}

	// Exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isFinite reports whether the display holds a finite number.
func isFinite(display string) bool {
	v := Parse(display)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
