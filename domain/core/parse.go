package core

import (
	"fmt"
	"strconv"
)

// IsSpace reports whether c is an ASCII whitespace character.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimLeadingSpace strips ASCII whitespace from the front of s.
func TrimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && IsSpace(s[i]) {
		i++
	}
	return s[i:]
}

// AllSpace reports whether s is empty or consists only of ASCII whitespace.
func AllSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsSpace(s[i]) {
			return false
		}
	}
	return true
}

// ParseLeadingInt parses the leading base-10 integer of s. Leading
// whitespace and an optional sign are accepted, and trailing characters
// are ignored. It fails when s has no digits or the value does not fit
// in a 32-bit int.
func ParseLeadingInt(s string) (int, error) {
	t := TrimLeadingSpace(s)
	i := 0
	if i < len(t) && (t[i] == '+' || t[i] == '-') {
		i++
	}
	start := i
	for i < len(t) && isDigit(t[i]) {
		i++
	}
	if i == start {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	v, err := strconv.ParseInt(t[:i], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return int(v), nil
}

// ParseLeadingFloat parses the leading floating-point number of s.
// Leading whitespace is accepted and trailing characters are ignored.
// bitSize selects float32 or float64 range checking as in
// strconv.ParseFloat; values outside the range fail rather than
// saturating.
func ParseLeadingFloat(s string, bitSize int) (float64, error) {
	t := TrimLeadingSpace(s)
	n := floatPrefixLen(t)
	if n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	v, err := strconv.ParseFloat(t[:n], bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}

// floatPrefixLen returns the length of the longest prefix of s that forms
// a decimal floating-point number, an infinity, or a NaN. Zero means no
// such prefix exists.
func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if n := namedFloatLen(s[i:]); n > 0 {
		return i + n
	}
	digits := false
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
		digits = true
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
			digits = true
		}
	}
	if !digits {
		return 0
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		e := k
		for e < len(s) && isDigit(s[e]) {
			e++
		}
		// An exponent counts only when at least one digit follows.
		if e > k {
			j = e
		}
	}
	return j
}

// namedFloatLen matches the case-insensitive literals inf, infinity and
// nan, preferring the longest.
func namedFloatLen(s string) int {
	if hasFoldPrefix(s, "infinity") {
		return len("infinity")
	}
	if hasFoldPrefix(s, "inf") {
		return len("inf")
	}
	if hasFoldPrefix(s, "nan") {
		return len("nan")
	}
	return 0
}

func hasFoldPrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
