package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilab/soilfert/internal/model"
)

func TestSanitizeMeasurement(t *testing.T) {
	assert.Equal(t, "soil_sample", sanitizeMeasurement("soil_sample"))
	assert.Equal(t, "soil_sample_p_1", sanitizeMeasurement("soil sample/p 1"))
	assert.Equal(t, "a-b:c_9", sanitizeMeasurement("a-b:c_9"))
}

func TestAssignFieldMapsAnalytes(t *testing.T) {
	var r model.SampleReading

	assignField(&r, "nitrogen", 280.0)
	assignField(&r, "phosphorus", int64(12))
	assignField(&r, "ph", 6.5)
	assignField(&r, "electrical_conductivity", 1.2)
	assignField(&r, "organic_carbon", 0.8)
	assignField(&r, "zinc", 0.7)
	assignField(&r, "aggregated", true)
	assignField(&r, "unknown_field", 1.0)

	assert.InDelta(t, 280, r.Nitrogen, 1e-9)
	assert.InDelta(t, 12, r.Phosphorus, 1e-9)
	assert.InDelta(t, 6.5, r.PH, 1e-9)
	assert.InDelta(t, 1.2, r.EC, 1e-9)
	assert.InDelta(t, 0.8, r.OrganicCarbon, 1e-9)
	require.NotNil(t, r.Zinc)
	assert.InDelta(t, 0.7, *r.Zinc, 1e-9)
	assert.True(t, r.Aggregated)
}

func TestAssignFieldIgnoresNonNumeric(t *testing.T) {
	var r model.SampleReading
	assignField(&r, "nitrogen", "not-a-number")
	assert.Zero(t, r.Nitrogen)
}
