package plot

import (
	"distio/domain/dist"
)

// Values holds a variable's plotted values. The four implementations fix
// the precision and whether entries are distribution values or plain
// particle values; there is no fifth case.
type Values interface {
	Len() int
	isValues()
}

// DoubleValues are distribution values at double precision.
type DoubleValues []dist.Value[float64]

// FloatValues are distribution values at single precision.
type FloatValues []dist.Value[float32]

// DoubleParticles are plain point values at double precision.
type DoubleParticles []float64

// FloatParticles are plain point values at single precision.
type FloatParticles []float32

func (v DoubleValues) Len() int    { return len(v) }
func (v FloatValues) Len() int     { return len(v) }
func (v DoubleParticles) Len() int { return len(v) }
func (v FloatParticles) Len() int  { return len(v) }

func (DoubleValues) isValues()    {}
func (FloatValues) isValues()     {}
func (DoubleParticles) isValues() {}
func (FloatParticles) isValues()  {}
