package fertility

import (
	"math"

	"github.com/agrilab/soilfert/internal/model/entities"
)

// Nutrient identifies one of the big three.
type Nutrient string

const (
	Nitrogen   Nutrient = "nitrogen"
	Phosphorus Nutrient = "phosphorus"
	Potassium  Nutrient = "potassium"
)

// ClassifyNutrient labels a measured N, P or K value against the cutoffs for
// the given crop ("" uses the crop-independent defaults). Below the low
// cutoff the nutrient is Deficient, above the high cutoff Excessive,
// otherwise Adequate.
func (e *Engine) ClassifyNutrient(n Nutrient, value float64, crop string) (entities.NutrientLevel, error) {
	if err := checkMeasurement(string(n), value); err != nil {
		return "", err
	}
	t := e.cfg.thresholdsFor(crop)
	var r NutrientRange
	switch n {
	case Nitrogen:
		r = t.Nitrogen
	case Phosphorus:
		r = t.Phosphorus
	case Potassium:
		r = t.Potassium
	default:
		return "", &InvalidInputError{Field: string(n), Reason: "unknown nutrient"}
	}
	return classifyAgainst(r, value), nil
}

func classifyAgainst(r NutrientRange, value float64) entities.NutrientLevel {
	switch {
	case value < r.Low:
		return entities.NutrientDeficient
	case value > r.High:
		return entities.NutrientExcessive
	default:
		return entities.NutrientAdequate
	}
}

// checkMeasurement rejects negative and non-finite readings.
func checkMeasurement(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidInputError{Field: field, Reason: "must be finite"}
	}
	if v < 0 {
		return &InvalidInputError{Field: field, Reason: "must be non-negative"}
	}
	return nil
}
