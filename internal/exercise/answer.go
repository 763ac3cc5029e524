package exercise

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	fractionPattern = regexp.MustCompile(`^\s*(-?\d+)\s*/\s*(-?\d+)\s*$`)
	decimalPattern  = regexp.MustCompile(`^([+-]?)(\d*)\.(\d*)$`)
)

// ParseFraction parses "num/den" with optional surrounding whitespace.
// Anything else, including overflowing integers, is rejected.
func ParseFraction(s string) (num, den int64, ok bool) {
	m := fractionPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	num, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	den, err = strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return num, den, true
}

// ParseInt parses a whole number, ignoring surrounding whitespace.
func ParseInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TruncateDecimal returns the whole part of a decimal such as "2.5" or
// ".5". Any other input is returned unchanged.
func TruncateDecimal(s string) string {
	s = strings.TrimSpace(s)
	m := decimalPattern.FindStringSubmatch(s)
	if m == nil || m[2]+m[3] == "" {
		return s
	}
	if m[2] == "" {
		return "0"
	}
	return m[1] + m[2]
}

// FormatFraction renders num/den.
func FormatFraction(num, den int64) string {
	return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
}
