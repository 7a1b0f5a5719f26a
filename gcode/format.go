package gcode

import (
	"math"
	"strconv"
	"strings"
)

const (
	maxDecimalPlaces = 10
	noise            = 1e-4 // absorbs floating point noise when comparing rounded values
)

// parseNumber parses a setting value as an invariant-culture number.
// Empty, malformed and non-finite values are absent.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// sameAt is a predicate: are a and b equal when both are rounded to the
// given number of decimal places?
func sameAt(a, b float64, places int) bool {
	eps := math.Min(noise, 0.5*math.Pow10(-places))
	return math.Abs(roundTo(a, places)-roundTo(b, places)) < eps
}

// formatCoord formats v with exactly the given number of decimal places.
// The decimal point is always present, even for zero places.
func formatCoord(v float64, places int) string {
	r := roundTo(v, places)
	if r == 0 {
		r = 0 // no negative zero
	}
	s := strconv.FormatFloat(r, 'f', places, 64)
	if places == 0 {
		s += "."
	}
	return s
}

// formatNumber formats v in its shortest exact representation, used for
// feeds, speeds and dwell times.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// aliases maps short motion and dwell words to their two-digit form.
var aliases = map[string]string{
	"G0": "G00",
	"G1": "G01",
	"G2": "G02",
	"G3": "G03",
	"G4": "G04",
}

// alias rewrites every short command word of a command line.
func alias(line string) string {
	words := strings.Fields(line)
	for i, w := range words {
		if a, ok := aliases[strings.ToUpper(w)]; ok {
			words[i] = a
		}
	}
	return strings.Join(words, " ")
}
