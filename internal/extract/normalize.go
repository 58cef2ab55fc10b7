package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// countWeekMarker flags species seen during count week but not on count day.
const countWeekMarker = "cw"

// intTextRe matches a plain signed integer cell.
var intTextRe = regexp.MustCompile(`^-?\d+$`)

// zeroFracRe matches integer-valued float text such as "12.0" or "-3.000".
var zeroFracRe = regexp.MustCompile(`^-?\d+\.0+$`)

// tempRe captures a signed decimal and its unit, e.g. "10.6 Celsius".
var tempRe = regexp.MustCompile(`(?i)^\s*(-?\d+(?:\.\d+)?)\s*(Celsius|Fahrenheit)\s*$`)

// cleanText collapses every run of whitespace (including newlines) to a
// single space and trims the result.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// displayName returns the species label shown in output: the text before the
// first line break, trimmed. The raw cells carry the scientific name and
// per-year notes on later lines.
func displayName(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// parseCount turns a raw count cell into a whole number. Blank cells and
// count-week markers are 0; integer-valued text keeps its value; fractional
// values round half away from zero; anything unrecognized is 0. Count cells
// are artefact-prone, so this never fails.
func parseCount(s string) int {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0
	}
	if strings.EqualFold(t, countWeekMarker) {
		return 0
	}
	if intTextRe.MatchString(t) {
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0
		}
		return n
	}
	if zeroFracRe.MatchString(t) {
		n, err := strconv.Atoi(t[:strings.IndexByte(t, '.')])
		if err != nil {
			return 0
		}
		return n
	}
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return int(math.Round(v))
	}
	return 0
}

// parseTempF reads a temperature cell like "42.0 Fahrenheit" or
// "10.6 Celsius" and returns the value in Fahrenheit. Cells without a
// recognizable unit, including bare numbers, return nil.
func parseTempF(s string) *float64 {
	m := tempRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	if strings.EqualFold(m[2], "celsius") {
		v = v*9/5 + 32
	}
	return &v
}

// parseOptionalInt parses a cell into an int. Blank cells and unusable text
// return nil; integer-valued floats are truncated toward zero.
func parseOptionalInt(s string) *int {
	t := cleanText(s)
	if t == "" {
		return nil
	}
	if n, err := strconv.Atoi(t); err == nil {
		return &n
	}
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		n := int(v)
		return &n
	}
	return nil
}

// parseOptionalFloat parses a cell into a float64, nil when blank or
// unusable.
func parseOptionalFloat(s string) *float64 {
	t := cleanText(s)
	if t == "" {
		return nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return nil
	}
	return &v
}
