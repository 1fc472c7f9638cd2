package entities

// FertilityClass is the terminal classification of a sample.
type FertilityClass string

const (
	ClassOptimal   FertilityClass = "OPTIMAL"
	ClassHigh      FertilityClass = "HIGH"
	ClassModerate  FertilityClass = "MODERATE"
	ClassLow       FertilityClass = "LOW"
	ClassInfertile FertilityClass = "INFERTILE"
)

// LimitingFactor names the environmental dimension with the lowest
// correction factor. Ties at the minimum report in the fixed priority
// order pH > EC > OrganicCarbon; None is reported only when no factor
// constrains the sample at all.
type LimitingFactor string

const (
	LimitingPH   LimitingFactor = "pH"
	LimitingEC   LimitingFactor = "EC/Salinity"
	LimitingOC   LimitingFactor = "OrganicCarbon"
	LimitingNone LimitingFactor = "None"
)

// NutrientLevel is the three-way classification of a single nutrient.
type NutrientLevel string

const (
	NutrientDeficient NutrientLevel = "Deficient"
	NutrientAdequate  NutrientLevel = "Adequate"
	NutrientExcessive NutrientLevel = "Excessive"
)

// CorrectionFactor is a [0,1] multiplier describing how strongly an
// environmental condition constrains nutrient uptake (1.0 = no constraint),
// together with the agronomic label of the band it fell in.
type CorrectionFactor struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// NutrientStatus pairs a measured nutrient value with its classification.
type NutrientStatus struct {
	Value float64       `json:"value"`
	Level NutrientLevel `json:"level"`
}

// RateRange is a numeric application-rate interval with its unit.
type RateRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// Recommendation is one amendment action. Identical inputs always produce
// identical recommendation text; generation is a fixed template lookup.
type Recommendation struct {
	Action  string    `json:"action"`
	Product string    `json:"product"`
	Rate    RateRange `json:"rate"`
	Impact  string    `json:"impact"`
}

// FertilityAssessment is the immutable result of scoring one sample.
type FertilityAssessment struct {
	FieldID  string `json:"field_id"`
	SampleID string `json:"sample_id,omitempty"`

	Nitrogen   NutrientStatus `json:"nitrogen"`
	Phosphorus NutrientStatus `json:"phosphorus"`
	Potassium  NutrientStatus `json:"potassium"`

	PHFactor CorrectionFactor `json:"ph_factor"`
	ECFactor CorrectionFactor `json:"ec_factor"`
	OCFactor CorrectionFactor `json:"oc_factor"`

	IndexScore     float64        `json:"index_score"` // unconstrained nutrient potential
	FinalScore     float64        `json:"final_score"` // index_score x min(correction factors)
	LimitingFactor LimitingFactor `json:"limiting_factor"`
	Classification FertilityClass `json:"classification"`

	Recommendations []Recommendation `json:"recommendations"`
}
