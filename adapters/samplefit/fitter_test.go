package samplefit

import (
	"math"
	"testing"

	"distio/domain/dist"
)

// TestDistFromSamplesMean tests that the representative is the sample mean
func TestDistFromSamplesMean(t *testing.T) {
	f := Fitter[float64]{}

	v := f.DistFromSamples([]float64{1, 2, 3, 4, 5})
	if v.Kind != dist.ValueFitted {
		t.Fatalf("Expected fitted value, got kind %v", v.Kind)
	}
	if v.Fitted != 3 {
		t.Errorf("Expected representative 3, got %v", v.Fitted)
	}
	if v.SampleCount() != 5 {
		t.Errorf("Expected 5 retained samples, got %d", v.SampleCount())
	}
}

// TestDistFromSamplesEmpty tests fitting an empty population
func TestDistFromSamplesEmpty(t *testing.T) {
	f := Fitter[float64]{}

	v := f.DistFromSamples(nil)
	if v.Fitted != 0 {
		t.Errorf("Expected zero representative for empty population, got %v", v.Fitted)
	}
	if v.SampleCount() != 0 {
		t.Errorf("Expected no samples, got %d", v.SampleCount())
	}
}

// TestNthMoment tests moment extraction from fitted values
func TestNthMoment(t *testing.T) {
	f := Fitter[float64]{}
	v := f.DistFromSamples([]float64{1, 2, 3, 4, 5})

	if got := f.NthMoment(v, 1); got != 3 {
		t.Errorf("Expected first moment 3, got %v", got)
	}
	if got := f.NthMoment(v, 2); got != 2 {
		t.Errorf("Expected second moment 2, got %v", got)
	}

	// Symmetric population: third central moment vanishes.
	if got := f.NthMoment(v, 3); math.Abs(got) > 1e-12 {
		t.Errorf("Expected third moment 0, got %v", got)
	}
}

// TestNthMomentUnsupported tests the cases that extract no moment
func TestNthMomentUnsupported(t *testing.T) {
	f := Fitter[float64]{}

	encoded := dist.NewEncodedValue[float64]("UxAB...")
	if got := f.NthMoment(encoded, 2); got != 0 {
		t.Errorf("Expected 0 for encoded value, got %v", got)
	}

	fitted := f.DistFromSamples([]float64{1, 2})
	if got := f.NthMoment(fitted, 0); got != 0 {
		t.Errorf("Expected 0 for n=0, got %v", got)
	}
	if got := f.NthMoment(fitted, -1); got != 0 {
		t.Errorf("Expected 0 for negative n, got %v", got)
	}

	empty := f.DistFromSamples(nil)
	if got := f.NthMoment(empty, 2); got != 0 {
		t.Errorf("Expected 0 for empty population, got %v", got)
	}
}

// TestFitterSinglePrecision tests the float32 instantiation
func TestFitterSinglePrecision(t *testing.T) {
	f := Fitter[float32]{}

	v := f.DistFromSamples([]float32{2, 4})
	if v.Fitted != 3 {
		t.Errorf("Expected representative 3, got %v", v.Fitted)
	}
	if got := f.NthMoment(v, 2); got != 1 {
		t.Errorf("Expected second moment 1, got %v", got)
	}
}
