package fertility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilab/soilfert/internal/model/entities"
)

func TestPrimaryRecommendationTargetsLimitingFactor(t *testing.T) {
	e := mustEngine(t, nil)

	// Acidic field: pH is limiting, lime comes first.
	a, err := e.Assess(sample(500, 20, 250, 4.5, 1.5, 0.8))
	require.NoError(t, err)
	require.NotEmpty(t, a.Recommendations)
	assert.Equal(t, "Apply agricultural lime", a.Recommendations[0].Action)
	assert.Equal(t, entities.RateRange{Min: 2, Max: 5, Unit: "t/acre"}, a.Recommendations[0].Rate)

	// Saline field: gypsum plus leaching comes first.
	a, err = e.Assess(sample(400, 18, 200, 6.5, 5.2, 0.8))
	require.NoError(t, err)
	require.NotEmpty(t, a.Recommendations)
	assert.Equal(t, "Apply gypsum and leach", a.Recommendations[0].Action)

	// Alkaline field: sulfur application.
	a, err = e.Assess(sample(400, 20, 200, 9.0, 1.0, 0.9))
	require.NoError(t, err)
	require.NotEmpty(t, a.Recommendations)
	assert.Equal(t, "Apply elemental sulfur", a.Recommendations[0].Action)
}

func TestSecondaryRecommendationsOrderedBySeverity(t *testing.T) {
	e := mustEngine(t, nil)

	// EC 0.1 (most severe), OC 0.2, pH 0.6: gypsum, compost, lime.
	a, err := e.Assess(sample(300, 20, 150, 5.7, 4.5, 0.3))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(a.Recommendations), 3)
	assert.Equal(t, "Apply gypsum and leach", a.Recommendations[0].Action)
	assert.Equal(t, "Incorporate organic matter", a.Recommendations[1].Action)
	assert.Equal(t, "Apply agricultural lime", a.Recommendations[2].Action)
}

func TestNutrientDeficiencyRecommendations(t *testing.T) {
	e := mustEngine(t, nil)

	// All three nutrients deficient in an otherwise healthy soil.
	a, err := e.Assess(sample(100, 5, 80, 6.8, 1.0, 0.9))
	require.NoError(t, err)
	require.Len(t, a.Recommendations, 3)
	assert.Equal(t, "Rhizobium/Azotobacter inoculant", a.Recommendations[0].Product)
	assert.Equal(t, "PSB inoculant", a.Recommendations[1].Product)
	assert.Equal(t, "Sulphate of potash", a.Recommendations[2].Product)
}

func TestMicronutrientRecommendations(t *testing.T) {
	e := mustEngine(t, nil)

	zn, fe := 0.3, 20.0
	s := sample(400, 20, 200, 6.8, 1.2, 0.9)
	s.Micro = &entities.Micronutrients{Zinc: &zn, Iron: &fe}

	a, err := e.Assess(s)
	require.NoError(t, err)
	require.Len(t, a.Recommendations, 1)
	assert.Equal(t, "Zinc sulfate", a.Recommendations[0].Product)

	// Unset micronutrients are simply skipped, never treated as zero.
	s.Micro = &entities.Micronutrients{}
	a, err = e.Assess(s)
	require.NoError(t, err)
	assert.Empty(t, a.Recommendations)
}

// Identical limiting factor and severity bucket must yield byte-identical
// text across calls.
func TestRecommendationDeterminism(t *testing.T) {
	e := mustEngine(t, nil)
	s := sample(350, 15, 180, 5.2, 2.5, 0.2)

	first, err := e.Assess(s)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.Assess(s)
		require.NoError(t, err)
		assert.Equal(t, first.Recommendations, again.Recommendations)
	}
}

func TestEnvironmentalSeverityBuckets(t *testing.T) {
	e := mustEngine(t, nil)

	// Mild acidity gets the lighter lime rate.
	a, err := e.Assess(sample(400, 20, 200, 5.7, 1.0, 0.9))
	require.NoError(t, err)
	require.NotEmpty(t, a.Recommendations)
	assert.Equal(t, entities.RateRange{Min: 1, Max: 2, Unit: "t/acre"}, a.Recommendations[0].Rate)

	// Moderate salinity gets the lighter gypsum rate without leaching.
	a, err = e.Assess(sample(400, 20, 200, 6.8, 3.0, 0.9))
	require.NoError(t, err)
	require.NotEmpty(t, a.Recommendations)
	assert.Equal(t, "Apply gypsum", a.Recommendations[0].Action)
}
