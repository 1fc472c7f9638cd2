// Package fertility implements the Liebig's-Law fertility scoring engine.
//
// The engine is a pure, synchronous, stateless computation: it validates a
// soil sample, classifies each nutrient against table-driven cutoffs, derives
// three environmental correction factors from discrete step tables, combines
// them into an index score and a corrected final score, maps the result onto
// one of five fertility classes, and emits deterministic amendment
// recommendations keyed to the limiting factor. The only shared state is the
// read-only threshold table set, validated once at construction; the engine is
// safe for concurrent use without locking.
package fertility

import (
	"math"

	"github.com/agrilab/soilfert/internal/model/entities"
)

// Engine scores soil samples against an immutable threshold table set.
type Engine struct {
	cfg *Config
}

// New builds an engine over the given tables (nil selects DefaultConfig).
// A table set that fails validation is rejected with *ConfigError: every
// subsequent call would otherwise run on partial tables.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config exposes the validated tables for reporting.
func (e *Engine) Config() *Config { return e.cfg }

// Assess scores one sample. It either returns a complete assessment or an
// *InvalidInputError naming the offending field; there is no partial result
// and no side effect. Identical inputs yield identical outputs.
func (e *Engine) Assess(s entities.SoilSample) (*entities.FertilityAssessment, error) {
	if err := e.validate(s); err != nil {
		return nil, err
	}

	t := e.cfg.thresholdsFor(s.CropType)
	nStatus := entities.NutrientStatus{Value: s.Nitrogen, Level: classifyAgainst(t.Nitrogen, s.Nitrogen)}
	pStatus := entities.NutrientStatus{Value: s.Phosphorus, Level: classifyAgainst(t.Phosphorus, s.Phosphorus)}
	kStatus := entities.NutrientStatus{Value: s.Potassium, Level: classifyAgainst(t.Potassium, s.Potassium)}

	ocPct := e.ocPercent(s.OrganicCarbon)

	phF := e.cfg.PHFactor(s.PH)
	ecF := e.cfg.ECFactor(s.EC)
	ocF := e.cfg.OCFactor(ocPct)

	// Index score: the raw nutrient pool amplified by the soil's biological
	// capacity to cycle it. The OC percent value is the amplifier itself
	// (0.8 % -> x0.8).
	indexScore := (s.Nitrogen + s.Phosphorus + s.Potassium) * ocPct

	limiting, minFactor := limitingOf(phF, ecF, ocF)
	finalScore := indexScore * minFactor

	assessment := &entities.FertilityAssessment{
		FieldID:        s.FieldID,
		SampleID:       s.SampleID,
		Nitrogen:       nStatus,
		Phosphorus:     pStatus,
		Potassium:      kStatus,
		PHFactor:       phF,
		ECFactor:       ecF,
		OCFactor:       ocF,
		IndexScore:     indexScore,
		FinalScore:     finalScore,
		LimitingFactor: limiting,
		Classification: e.classify(finalScore, minFactor),
	}
	assessment.Recommendations = e.recommend(s, ocPct, assessment)
	return assessment, nil
}

// BatchResult is the outcome of scoring one row of a batch.
type BatchResult struct {
	Index      int
	Assessment *entities.FertilityAssessment
	Err        error
}

// AssessBatch scores samples row by row, preserving order. A row that fails
// validation yields an error result without stopping the batch; the engine
// stays unaware of whatever file format the rows came from.
func (e *Engine) AssessBatch(samples []entities.SoilSample) []BatchResult {
	out := make([]BatchResult, len(samples))
	for i, s := range samples {
		a, err := e.Assess(s)
		out[i] = BatchResult{Index: i, Assessment: a, Err: err}
	}
	return out
}

// validate applies the InvalidInput taxonomy: required fields finite and
// non-negative, pH on the 0-14 scale, optional micronutrients sane when set.
func (e *Engine) validate(s entities.SoilSample) error {
	if err := checkMeasurement("nitrogen", s.Nitrogen); err != nil {
		return err
	}
	if err := checkMeasurement("phosphorus", s.Phosphorus); err != nil {
		return err
	}
	if err := checkMeasurement("potassium", s.Potassium); err != nil {
		return err
	}
	if math.IsNaN(s.PH) || math.IsInf(s.PH, 0) {
		return &InvalidInputError{Field: "ph", Reason: "must be finite"}
	}
	if s.PH < 0 || s.PH > 14 {
		return &InvalidInputError{Field: "ph", Reason: "must be within [0,14]"}
	}
	if err := checkMeasurement("electrical_conductivity", s.EC); err != nil {
		return err
	}
	if err := checkMeasurement("organic_carbon", s.OrganicCarbon); err != nil {
		return err
	}
	if s.Micro != nil {
		micros := []struct {
			name string
			v    *float64
		}{
			{"sulfur", s.Micro.Sulfur},
			{"zinc", s.Micro.Zinc},
			{"iron", s.Micro.Iron},
			{"boron", s.Micro.Boron},
		}
		for _, m := range micros {
			if m.v == nil {
				continue
			}
			if err := checkMeasurement(m.name, *m.v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ocPercent normalizes organic carbon to percent-of-dry-soil, the unit the
// step table and the index amplifier are defined in.
func (e *Engine) ocPercent(oc float64) float64 {
	if e.cfg.OCUnit == OCFraction {
		return oc * 100
	}
	return oc
}

// limitingOf picks the environmental dimension with the smallest factor.
// Exact ties at the minimum report in the fixed priority pH > EC > OC, with
// pH first because it is the gatekeeper. None is reported only when no factor
// constrains the sample at all.
func limitingOf(ph, ec, oc entities.CorrectionFactor) (entities.LimitingFactor, float64) {
	min := math.Min(ph.Value, math.Min(ec.Value, oc.Value))
	if ph.Value == 1.0 && ec.Value == 1.0 && oc.Value == 1.0 {
		return entities.LimitingNone, min
	}
	switch {
	case ph.Value == min:
		return entities.LimitingPH, min
	case ec.Value == min:
		return entities.LimitingEC, min
	default:
		return entities.LimitingOC, min
	}
}

// classify maps the corrected score onto a terminal class. INFERTILE is
// checked first: a single catastrophic factor overrides an otherwise strong
// nutrient profile, which is the point of Liebig's Law. The INFERTILE floor
// is inclusive (min factor <= 0.2 trips it); see engine tests for the exact
// boundary behavior.
func (e *Engine) classify(finalScore, minFactor float64) entities.FertilityClass {
	cl := e.cfg.Classes
	switch {
	case minFactor <= cl.InfertileFactor:
		return entities.ClassInfertile
	case finalScore > cl.OptimalScore && minFactor > cl.OptimalFactor:
		return entities.ClassOptimal
	case finalScore > cl.HighScore && minFactor > cl.HighFactor:
		return entities.ClassHigh
	case finalScore > cl.ModerateScore && minFactor > cl.ModerateFactor:
		return entities.ClassModerate
	default:
		return entities.ClassLow
	}
}
