package dist

import (
	"math"
)

// ValueKind tags how a Value was produced.
type ValueKind int

const (
	// ValueFitted values were fitted from numeric samples.
	ValueFitted ValueKind = iota
	// ValueEncoded values carry an encoded distribution representation
	// verbatim.
	ValueEncoded
)

// Value is one distribution-valued variable produced by ingestion.
type Value[F Real] struct {
	Kind    ValueKind
	Fitted  F      // representative value when Kind == ValueFitted
	Encoded string // verbatim cell text when Kind == ValueEncoded
	Samples []F    // the samples the fit consumed, nil for encoded values
}

// NewFittedValue wraps a fitted representative and the samples it came from.
func NewFittedValue[F Real](fitted F, samples []F) Value[F] {
	return Value[F]{Kind: ValueFitted, Fitted: fitted, Samples: samples}
}

// NewEncodedValue wraps verbatim encoded text.
func NewEncodedValue[F Real](text string) Value[F] {
	return Value[F]{Kind: ValueEncoded, Encoded: text}
}

// Representative returns the scalar stand-in for the value. Encoded
// values have no numeric representative and return NaN.
func (v Value[F]) Representative() F {
	if v.Kind == ValueEncoded {
		return F(math.NaN())
	}
	return v.Fitted
}

// SampleCount returns how many samples backed the value.
func (v Value[F]) SampleCount() int {
	return len(v.Samples)
}
