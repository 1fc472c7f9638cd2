package fertility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every breakpoint of every step table is exercised on both sides so the
// closed/open boundary choice stays auditable.

func TestPHFactorBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cases := []struct {
		ph   float64
		want float64
	}{
		{0.0, 0.2},
		{5.4999, 0.2},
		{5.5, 0.6},
		{5.9999, 0.6},
		{6.0, 1.0},
		{6.8, 1.0},
		{7.5, 1.0}, // upper bound of the optimal band is inclusive
		{7.5001, 0.7},
		{8.5, 0.7},
		{8.5001, 0.2},
		{14.0, 0.2},
	}
	for _, c := range cases {
		got := cfg.PHFactor(c.ph)
		assert.Equalf(t, c.want, got.Value, "pH=%v", c.ph)
	}
}

func TestECFactorBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		ec   float64
		want float64
	}{
		{0.0, 1.0},
		{1.5, 1.0},
		{2.0, 1.0}, // safe band closes at 2.0
		{2.0001, 0.6},
		{4.0, 0.6},
		{4.0001, 0.1},
		{12.0, 0.1},
	}
	for _, c := range cases {
		got := cfg.ECFactor(c.ec)
		assert.Equalf(t, c.want, got.Value, "EC=%v", c.ec)
	}
}

func TestOCFactorBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		oc   float64
		want float64
	}{
		{0.0, 0.2},
		{0.4999, 0.2},
		{0.5, 0.6},
		{0.7499, 0.6},
		{0.75, 1.0}, // healthy reservoir starts at 0.75 inclusive
		{3.2, 1.0},
	}
	for _, c := range cases {
		got := cfg.OCFactor(c.oc)
		assert.Equalf(t, c.want, got.Value, "OC=%v", c.oc)
	}
}

func TestFactorLabels(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Highly Acidic (< 5.5)", cfg.PHFactor(4.5).Label)
	assert.Equal(t, "Optimal (6.0-7.5)", cfg.PHFactor(7.0).Label)
	assert.Equal(t, "Saline (> 4 dS/m)", cfg.ECFactor(5.2).Label)
	assert.Equal(t, "High (>= 0.75%)", cfg.OCFactor(0.9).Label)
}
