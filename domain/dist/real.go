package dist

import (
	"distio/domain/core"
)

// Real is the sample precision: float32 for single-precision inputs,
// float64 for double-precision inputs.
type Real interface {
	float32 | float64
}

// BitSize returns the strconv bit size matching F.
func BitSize[F Real]() int {
	if _, ok := interface{}(F(0)).(float32); ok {
		return 32
	}
	return 64
}

// ParseReal parses the leading floating-point number of s at F's
// precision. Trailing characters after the number are ignored; a cell
// with no leading number, or one whose value overflows F, fails.
func ParseReal[F Real](s string) (F, error) {
	v, err := core.ParseLeadingFloat(s, BitSize[F]())
	if err != nil {
		return 0, err
	}
	return F(v), nil
}
