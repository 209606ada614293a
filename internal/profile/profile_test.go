package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileSamples(t *testing.T) {
	p := NewProfiler()

	vs, err := p.ProfileSamples([]float64{1, 2, 3, 4, 5})
	assert.NoError(t, err)
	assert.NotNil(t, vs)
	assert.Equal(t, 3.0, vs.Mean)
	assert.Equal(t, 2.0, vs.Variance)
	assert.Equal(t, 1.0, vs.Min)
	assert.Equal(t, 5.0, vs.Max)
	assert.Equal(t, 3.0, vs.Median)
	assert.InDelta(t, 0.0, vs.Skewness, 1e-12)
}

func TestProfileSamplesEmpty(t *testing.T) {
	p := NewProfiler()

	vs, err := p.ProfileSamples(nil)
	assert.NoError(t, err)
	assert.Nil(t, vs)
}

func TestProfileSamplesConstant(t *testing.T) {
	p := NewProfiler()

	vs, err := p.ProfileSamples([]float64{7, 7, 7, 7})
	assert.NoError(t, err)
	assert.Equal(t, 7.0, vs.Mean)
	assert.Equal(t, 0.0, vs.Variance)
	assert.Equal(t, 0.0, vs.Skewness)
	assert.Equal(t, 0.0, vs.Kurtosis)
}

func TestProfileSamplesSkewed(t *testing.T) {
	p := NewProfiler()

	// Strong right tail pulls the skewness positive.
	vs, err := p.ProfileSamples([]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 100})
	assert.NoError(t, err)
	assert.Greater(t, vs.Skewness, 1.0)
	assert.False(t, vs.IsNormal)
}

func TestProfileColumns(t *testing.T) {
	p := NewProfiler()

	results := p.ProfileColumns(map[string][]float64{
		"a":     {1, 2, 3},
		"empty": {},
	})
	assert.Len(t, results, 1)
	assert.Equal(t, 2.0, results["a"].Mean)
}
