package core

import (
	"errors"
	"math"
	"testing"
)

// TestParseLeadingInt tests leading-integer parsing with trailing text
func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		hasError bool
	}{
		{"42", 42, false},
		{"  42", 42, false},
		{"+7", 7, false},
		{"-13", -13, false},
		{"3rd", 3, false},
		{"10.5", 10, false},
		{"0", 0, false},
		{"2147483647", 2147483647, false},
		{"-2147483648", -2147483648, false},
		{"2147483648", 0, true},
		{"99999999999", 0, true},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"- 7", 0, true},
		{"+", 0, true},
	}

	for _, test := range tests {
		result, err := ParseLeadingInt(test.input)
		if test.hasError {
			if err == nil {
				t.Errorf("Expected error for input '%s', but got none", test.input)
			}
			if err != nil && !errors.Is(err, ErrNotANumber) {
				t.Errorf("Expected ErrNotANumber for input '%s', got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("Expected %d for input '%s', got %d", test.expected, test.input, result)
		}
	}
}

// TestParseLeadingFloat tests leading-float parsing with trailing text
func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		hasError bool
	}{
		{"1.5", 1.5, false},
		{"  2.0  ", 2.0, false},
		{"-0.25", -0.25, false},
		{"3.14abc", 3.14, false},
		{"1e3", 1000, false},
		{"1E-2", 0.01, false},
		{"1e", 1, false},
		{"1e+", 1, false},
		{".5", 0.5, false},
		{"-.5", -0.5, false},
		{"7.", 7, false},
		{"0", 0, false},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{".", 0, true},
		{"e5", 0, true},
		{"+", 0, true},
		{"1e999", 0, true},
	}

	for _, test := range tests {
		result, err := ParseLeadingFloat(test.input, 64)
		if test.hasError {
			if err == nil {
				t.Errorf("Expected error for input '%s', but got none", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("Expected %v for input '%s', got %v", test.expected, test.input, result)
		}
	}
}

// TestParseLeadingFloatNamedValues tests inf and nan literals
func TestParseLeadingFloatNamedValues(t *testing.T) {
	inf, err := ParseLeadingFloat("inf", 64)
	if err != nil || !math.IsInf(inf, 1) {
		t.Errorf("Expected +Inf for 'inf', got %v (err %v)", inf, err)
	}

	negInf, err := ParseLeadingFloat("-Infinity", 64)
	if err != nil || !math.IsInf(negInf, -1) {
		t.Errorf("Expected -Inf for '-Infinity', got %v (err %v)", negInf, err)
	}

	nan, err := ParseLeadingFloat("NaN", 64)
	if err != nil || !math.IsNaN(nan) {
		t.Errorf("Expected NaN for 'NaN', got %v (err %v)", nan, err)
	}

	// An incomplete infinity still matches its inf prefix.
	partial, err := ParseLeadingFloat("infin", 64)
	if err != nil || !math.IsInf(partial, 1) {
		t.Errorf("Expected +Inf for 'infin', got %v (err %v)", partial, err)
	}
}

// TestParseLeadingFloatBitSize tests float32 range checking
func TestParseLeadingFloatBitSize(t *testing.T) {
	// Within float32 range at both widths.
	v, err := ParseLeadingFloat("1.5", 32)
	if err != nil || v != 1.5 {
		t.Errorf("Expected 1.5, got %v (err %v)", v, err)
	}

	// Overflows float32 but not float64.
	if _, err := ParseLeadingFloat("1e200", 32); err == nil {
		t.Error("Expected error for '1e200' at 32 bits, but got none")
	}
	if _, err := ParseLeadingFloat("1e200", 64); err != nil {
		t.Errorf("Unexpected error for '1e200' at 64 bits: %v", err)
	}
}

// TestAllSpace tests whitespace-only detection
func TestAllSpace(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{" ", true},
		{" \t\r\n", true},
		{"x", false},
		{"  x  ", false},
	}

	for _, test := range tests {
		if got := AllSpace(test.input); got != test.expected {
			t.Errorf("AllSpace(%q): expected %v, got %v", test.input, test.expected, got)
		}
	}
}
