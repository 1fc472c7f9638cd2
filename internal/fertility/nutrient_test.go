package fertility

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilab/soilfert/internal/model/entities"
)

func mustEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestClassifyNutrientDefaults(t *testing.T) {
	e := mustEngine(t, nil)

	cases := []struct {
		nutrient Nutrient
		value    float64
		want     entities.NutrientLevel
	}{
		{Nitrogen, 279.9, entities.NutrientDeficient},
		{Nitrogen, 280, entities.NutrientAdequate},
		{Nitrogen, 560, entities.NutrientAdequate},
		{Nitrogen, 560.1, entities.NutrientExcessive},
		{Phosphorus, 9.9, entities.NutrientDeficient},
		{Phosphorus, 10, entities.NutrientAdequate},
		{Phosphorus, 25, entities.NutrientAdequate},
		{Phosphorus, 25.1, entities.NutrientExcessive},
		{Potassium, 109, entities.NutrientDeficient},
		{Potassium, 110, entities.NutrientAdequate},
		{Potassium, 280, entities.NutrientAdequate},
		{Potassium, 281, entities.NutrientExcessive},
	}
	for _, c := range cases {
		got, err := e.ClassifyNutrient(c.nutrient, c.value, "")
		require.NoError(t, err)
		assert.Equalf(t, c.want, got, "%s=%v", c.nutrient, c.value)
	}
}

func TestClassifyNutrientCropOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Crops = map[string]CropThresholds{
		"rice": {Nitrogen: &NutrientRange{Low: 100, High: 300}},
	}
	e := mustEngine(t, cfg)

	got, err := e.ClassifyNutrient(Nitrogen, 150, "rice")
	require.NoError(t, err)
	assert.Equal(t, entities.NutrientAdequate, got)

	// Phosphorus keeps the default cutoffs for the overridden crop.
	got, err = e.ClassifyNutrient(Phosphorus, 9, "rice")
	require.NoError(t, err)
	assert.Equal(t, entities.NutrientDeficient, got)

	// An unknown crop falls back to the defaults entirely.
	got, err = e.ClassifyNutrient(Nitrogen, 150, "wheat")
	require.NoError(t, err)
	assert.Equal(t, entities.NutrientDeficient, got)
}

func TestClassifyNutrientInvalidInput(t *testing.T) {
	e := mustEngine(t, nil)

	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := e.ClassifyNutrient(Nitrogen, v, "")
		var inv *InvalidInputError
		require.Truef(t, errors.As(err, &inv), "value %v should be rejected", v)
		assert.Equal(t, "nitrogen", inv.Field)
	}
}
