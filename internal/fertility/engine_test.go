package fertility

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilab/soilfert/internal/model/entities"
)

func sample(n, p, k, ph, ec, oc float64) entities.SoilSample {
	return entities.SoilSample{
		FieldID:       "field-1",
		SampleID:      "s-1",
		Nitrogen:      n,
		Phosphorus:    p,
		Potassium:     k,
		PH:            ph,
		EC:            ec,
		OrganicCarbon: oc,
	}
}

// Worked example: very high nutrients locked behind an acidic pH. The pH
// factor bottoms out at exactly 0.2, which sits on the inclusive INFERTILE
// floor — strong nutrients cannot rescue a catastrophic factor.
func TestAssessAcidicFieldScenario(t *testing.T) {
	e := mustEngine(t, nil)

	a, err := e.Assess(sample(500, 20, 250, 4.5, 1.5, 0.8))
	require.NoError(t, err)

	assert.InDelta(t, 616.0, a.IndexScore, 1e-9)
	assert.Equal(t, 0.2, a.PHFactor.Value)
	assert.Equal(t, 1.0, a.ECFactor.Value)
	assert.Equal(t, 1.0, a.OCFactor.Value)
	assert.Equal(t, entities.LimitingPH, a.LimitingFactor)
	assert.InDelta(t, 123.2, a.FinalScore, 1e-9)
	assert.Equal(t, entities.ClassInfertile, a.Classification)
}

func TestAssessOptimalFieldScenario(t *testing.T) {
	e := mustEngine(t, nil)

	a, err := e.Assess(sample(400, 20, 200, 6.8, 1.2, 0.9))
	require.NoError(t, err)

	assert.InDelta(t, 558.0, a.IndexScore, 1e-9)
	assert.Equal(t, 1.0, a.PHFactor.Value)
	assert.Equal(t, 1.0, a.ECFactor.Value)
	assert.Equal(t, 1.0, a.OCFactor.Value)
	assert.Equal(t, entities.LimitingNone, a.LimitingFactor)
	assert.InDelta(t, 558.0, a.FinalScore, 1e-9)
	assert.Equal(t, entities.ClassOptimal, a.Classification)
	assert.Empty(t, a.Recommendations)
}

func TestAssessSalineFieldScenario(t *testing.T) {
	e := mustEngine(t, nil)

	a, err := e.Assess(sample(400, 18, 200, 6.5, 5.2, 0.8))
	require.NoError(t, err)

	assert.InDelta(t, 494.4, a.IndexScore, 1e-9)
	assert.Equal(t, 0.1, a.ECFactor.Value)
	assert.Equal(t, entities.LimitingEC, a.LimitingFactor)
	assert.InDelta(t, 49.44, a.FinalScore, 1e-9)
	assert.Equal(t, entities.ClassInfertile, a.Classification)
}

// A single factor below the floor forces INFERTILE no matter how large the
// nutrient pool is.
func TestLiebigDominance(t *testing.T) {
	e := mustEngine(t, nil)

	a, err := e.Assess(sample(1000, 1000, 1000, 4.0, 1.0, 1.5))
	require.NoError(t, err)
	assert.Equal(t, entities.ClassInfertile, a.Classification)
	assert.Equal(t, entities.LimitingPH, a.LimitingFactor)
}

// Class floors are strict: a minimum factor of exactly 0.6 is not enough for
// HIGH even when the score clears its cutoff.
func TestClassFloorsAreStrict(t *testing.T) {
	e := mustEngine(t, nil)

	a, err := e.Assess(sample(300, 50, 150, 5.7, 1.0, 1.0))
	require.NoError(t, err)
	assert.Equal(t, 0.6, a.PHFactor.Value)
	assert.InDelta(t, 300.0, a.FinalScore, 1e-9)
	assert.Equal(t, entities.ClassModerate, a.Classification)
}

func TestClassLowOnSmallScore(t *testing.T) {
	e := mustEngine(t, nil)

	a, err := e.Assess(sample(100, 5, 80, 6.5, 0.8, 0.9))
	require.NoError(t, err)
	assert.InDelta(t, 166.5, a.IndexScore, 1e-9)
	require.InDelta(t, 166.5, a.FinalScore, 1e-9)
	assert.Equal(t, entities.ClassModerate, a.Classification)

	a, err = e.Assess(sample(50, 5, 40, 6.5, 0.8, 0.9))
	require.NoError(t, err)
	assert.Equal(t, entities.ClassLow, a.Classification)
}

// Ties at the minimum report pH first, then EC, then OC.
func TestLimitingFactorTiePriority(t *testing.T) {
	e := mustEngine(t, nil)

	// pH 5.7 -> 0.6 and EC 3.0 -> 0.6 tie at the minimum.
	a, err := e.Assess(sample(300, 20, 150, 5.7, 3.0, 0.9))
	require.NoError(t, err)
	assert.Equal(t, entities.LimitingPH, a.LimitingFactor)

	// EC 3.0 -> 0.6 and OC 0.6% -> 0.6 tie; EC wins over OC.
	a, err = e.Assess(sample(300, 20, 150, 6.8, 3.0, 0.6))
	require.NoError(t, err)
	assert.Equal(t, entities.LimitingEC, a.LimitingFactor)
}

func TestIndexScoreMonotonicInNitrogen(t *testing.T) {
	e := mustEngine(t, nil)

	prev := math.Inf(-1)
	for n := 0.0; n <= 1200; n += 37.5 {
		a, err := e.Assess(sample(n, 20, 150, 6.8, 1.0, 0.8))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, a.IndexScore, prev)
		prev = a.IndexScore
	}
}

func TestAssessIdempotent(t *testing.T) {
	e := mustEngine(t, nil)
	s := sample(350, 15, 180, 6.6, 1.0, 0.2)

	first, err := e.Assess(s)
	require.NoError(t, err)
	second, err := e.Assess(s)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOCFractionUnit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OCUnit = OCFraction
	e := mustEngine(t, cfg)

	// 0.008 as a fraction is 0.8 %: same index, same factor as the percent run.
	a, err := e.Assess(sample(500, 20, 250, 6.8, 1.5, 0.008))
	require.NoError(t, err)
	assert.InDelta(t, 616.0, a.IndexScore, 1e-9)
	assert.Equal(t, 1.0, a.OCFactor.Value)
}

func TestAssessCropOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Crops = map[string]CropThresholds{
		"rice": {Nitrogen: &NutrientRange{Low: 100, High: 300}},
	}
	e := mustEngine(t, cfg)

	s := sample(150, 20, 150, 6.8, 1.0, 0.9)
	s.CropType = "rice"
	a, err := e.Assess(s)
	require.NoError(t, err)
	assert.Equal(t, entities.NutrientAdequate, a.Nitrogen.Level)

	s.CropType = ""
	a, err = e.Assess(s)
	require.NoError(t, err)
	assert.Equal(t, entities.NutrientDeficient, a.Nitrogen.Level)
}

func TestAssessInvalidInput(t *testing.T) {
	e := mustEngine(t, nil)

	cases := []struct {
		name   string
		mutate func(*entities.SoilSample)
		field  string
	}{
		{"negative potassium", func(s *entities.SoilSample) { s.Potassium = -3 }, "potassium"},
		{"nan nitrogen", func(s *entities.SoilSample) { s.Nitrogen = math.NaN() }, "nitrogen"},
		{"ph above scale", func(s *entities.SoilSample) { s.PH = 14.2 }, "ph"},
		{"ph below scale", func(s *entities.SoilSample) { s.PH = -0.1 }, "ph"},
		{"infinite ec", func(s *entities.SoilSample) { s.EC = math.Inf(1) }, "electrical_conductivity"},
		{"negative oc", func(s *entities.SoilSample) { s.OrganicCarbon = -0.1 }, "organic_carbon"},
		{"negative zinc", func(s *entities.SoilSample) {
			z := -1.0
			s.Micro = &entities.Micronutrients{Zinc: &z}
		}, "zinc"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := sample(400, 20, 200, 6.8, 1.2, 0.9)
			c.mutate(&s)
			a, err := e.Assess(s)
			assert.Nil(t, a, "no partial assessment on invalid input")
			var inv *InvalidInputError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, c.field, inv.Field)
		})
	}
}

func TestAssessBatchKeepsOrderAndErrors(t *testing.T) {
	e := mustEngine(t, nil)

	bad := sample(400, 20, 200, 6.8, 1.2, 0.9)
	bad.PH = 15

	results := e.AssessBatch([]entities.SoilSample{
		sample(400, 20, 200, 6.8, 1.2, 0.9),
		bad,
		sample(400, 18, 200, 6.5, 5.2, 0.8),
	})
	require.Len(t, results, 3)

	assert.Equal(t, 0, results[0].Index)
	require.NoError(t, results[0].Err)
	assert.Equal(t, entities.ClassOptimal, results[0].Assessment.Classification)

	assert.Equal(t, 1, results[1].Index)
	require.Error(t, results[1].Err)
	assert.Nil(t, results[1].Assessment)

	assert.Equal(t, 2, results[2].Index)
	require.NoError(t, results[2].Err)
	assert.Equal(t, entities.ClassInfertile, results[2].Assessment.Classification)
}

func TestFieldIdentifierCarriedThrough(t *testing.T) {
	e := mustEngine(t, nil)

	s := sample(400, 20, 200, 6.8, 1.2, 0.9)
	s.FieldID = "north-40"
	s.SampleID = "2026-08-s17"
	a, err := e.Assess(s)
	require.NoError(t, err)
	assert.Equal(t, "north-40", a.FieldID)
	assert.Equal(t, "2026-08-s17", a.SampleID)
}
