package fertility

import "math"

// NPKUnit declares the unit the deployment measures N, P and K in. The engine
// never converts units: thresholds and sample values must use the same one.
type NPKUnit string

const (
	UnitKgPerHa NPKUnit = "kg/ha"
	UnitMgPerKg NPKUnit = "mg/kg"
)

// OCUnit declares how organic carbon arrives in the sample.
type OCUnit string

const (
	OCPercent  OCUnit = "percent"  // e.g. 0.8 meaning 0.8 %
	OCFraction OCUnit = "fraction" // e.g. 0.008 meaning 0.8 %
)

// NutrientRange is a pair of cutoffs for one nutrient: below Low the nutrient
// is Deficient, above High it is Excessive, in between it is Adequate.
type NutrientRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// NutrientThresholds holds the cutoffs for the big three.
type NutrientThresholds struct {
	Nitrogen   NutrientRange `json:"nitrogen"`
	Phosphorus NutrientRange `json:"phosphorus"`
	Potassium  NutrientRange `json:"potassium"`
}

// CropThresholds overrides the default cutoffs for a single crop. Only the
// nutrients that are set are overridden; nil keeps the default.
type CropThresholds struct {
	Nitrogen   *NutrientRange `json:"nitrogen,omitempty"`
	Phosphorus *NutrientRange `json:"phosphorus,omitempty"`
	Potassium  *NutrientRange `json:"potassium,omitempty"`
}

// Band is one row of a correction-factor step table. A value v falls in the
// band when v < Upper, or v == Upper if the band is UpperInclusive. Bands are
// ordered by Upper ascending and the last band must be open-ended (+Inf), so
// every boundary choice is auditable per breakpoint.
type Band struct {
	Upper          float64 `json:"upper"`
	UpperInclusive bool    `json:"upper_inclusive"`
	Factor         float64 `json:"factor"`
	Label          string  `json:"label"`
}

// ClassCutoffs are the final-score and factor floors of the five terminal
// classes. Evaluation order is fixed: INFERTILE first, then OPTIMAL, HIGH,
// MODERATE, falling through to LOW.
type ClassCutoffs struct {
	InfertileFactor float64 `json:"infertile_factor"` // class INFERTILE when min factor <= this
	OptimalScore    float64 `json:"optimal_score"`    // OPTIMAL when final > score and min factor > floor
	OptimalFactor   float64 `json:"optimal_factor"`
	HighScore       float64 `json:"high_score"`
	HighFactor      float64 `json:"high_factor"`
	ModerateScore   float64 `json:"moderate_score"`
	ModerateFactor  float64 `json:"moderate_factor"`
}

// Config is the full threshold table set. It is loaded once, validated at
// engine construction, and never mutated afterwards.
type Config struct {
	NPKUnit NPKUnit `json:"npk_unit"`
	OCUnit  OCUnit  `json:"oc_unit"`

	Nutrients NutrientThresholds        `json:"nutrients"`
	Crops     map[string]CropThresholds `json:"crops,omitempty"`

	PHBands []Band `json:"ph_bands"`
	ECBands []Band `json:"ec_bands"`
	OCBands []Band `json:"oc_bands"`

	Classes ClassCutoffs `json:"classes"`
}

// defaultNutrients are the crop-independent cutoffs in kg/ha from the
// agronomic reference tables the system was calibrated against.
var defaultNutrients = NutrientThresholds{
	Nitrogen:   NutrientRange{Low: 280, High: 560},
	Phosphorus: NutrientRange{Low: 10, High: 25},
	Potassium:  NutrientRange{Low: 110, High: 280},
}

// DefaultConfig returns the stock threshold tables. The factor tables encode
// discrete agronomic zones rather than a smooth curve; reproducing the step
// behavior is required for parity with the documented worked examples.
func DefaultConfig() *Config {
	return &Config{
		NPKUnit:   UnitKgPerHa,
		OCUnit:    OCPercent,
		Nutrients: defaultNutrients,
		PHBands: []Band{
			{Upper: 5.5, Factor: 0.2, Label: "Highly Acidic (< 5.5)"},
			{Upper: 6.0, Factor: 0.6, Label: "Suboptimal (5.5-6.0)"},
			{Upper: 7.5, UpperInclusive: true, Factor: 1.0, Label: "Optimal (6.0-7.5)"},
			{Upper: 8.5, UpperInclusive: true, Factor: 0.7, Label: "Slightly Alkaline (7.5-8.5)"},
			{Upper: math.Inf(1), Factor: 0.2, Label: "Highly Alkaline (> 8.5)"},
		},
		ECBands: []Band{
			{Upper: 2.0, UpperInclusive: true, Factor: 1.0, Label: "Good (0-2 dS/m)"},
			{Upper: 4.0, UpperInclusive: true, Factor: 0.6, Label: "Moderate (2-4 dS/m)"},
			{Upper: math.Inf(1), Factor: 0.1, Label: "Saline (> 4 dS/m)"},
		},
		OCBands: []Band{
			{Upper: 0.5, Factor: 0.2, Label: "Low (< 0.5%)"},
			{Upper: 0.75, Factor: 0.6, Label: "Average (0.5-0.75%)"},
			{Upper: math.Inf(1), Factor: 1.0, Label: "High (>= 0.75%)"},
		},
		Classes: ClassCutoffs{
			InfertileFactor: 0.2,
			OptimalScore:    400, OptimalFactor: 0.8,
			HighScore: 200, HighFactor: 0.6,
			ModerateScore: 100, ModerateFactor: 0.3,
		},
	}
}

// Validate checks the tables for internal consistency. Any failure means the
// engine refuses to start; there are no partial tables at runtime.
func (c *Config) Validate() error {
	switch c.NPKUnit {
	case UnitKgPerHa:
	case UnitMgPerKg:
		// The stock cutoffs are calibrated in kg/ha. A mg/kg deployment must
		// bring its own tables rather than silently reuse them.
		if c.Nutrients == defaultNutrients {
			return &ConfigError{Section: "nutrients", Reason: "default thresholds are kg/ha; supply mg/kg thresholds explicitly"}
		}
	default:
		return &ConfigError{Section: "npk_unit", Reason: "must be kg/ha or mg/kg"}
	}
	if c.OCUnit != OCPercent && c.OCUnit != OCFraction {
		return &ConfigError{Section: "oc_unit", Reason: "must be percent or fraction"}
	}

	if err := validateRange("nutrients.nitrogen", c.Nutrients.Nitrogen); err != nil {
		return err
	}
	if err := validateRange("nutrients.phosphorus", c.Nutrients.Phosphorus); err != nil {
		return err
	}
	if err := validateRange("nutrients.potassium", c.Nutrients.Potassium); err != nil {
		return err
	}
	for crop, ct := range c.Crops {
		for _, nr := range []*NutrientRange{ct.Nitrogen, ct.Phosphorus, ct.Potassium} {
			if nr == nil {
				continue
			}
			if err := validateRange("crops."+crop, *nr); err != nil {
				return err
			}
		}
	}

	if err := validateBands("ph_bands", c.PHBands); err != nil {
		return err
	}
	if err := validateBands("ec_bands", c.ECBands); err != nil {
		return err
	}
	if err := validateBands("oc_bands", c.OCBands); err != nil {
		return err
	}

	cl := c.Classes
	if cl.InfertileFactor < 0 || cl.InfertileFactor >= cl.ModerateFactor {
		return &ConfigError{Section: "classes", Reason: "infertile factor floor must sit below the moderate floor"}
	}
	if !(cl.OptimalScore > cl.HighScore && cl.HighScore > cl.ModerateScore && cl.ModerateScore > 0) {
		return &ConfigError{Section: "classes", Reason: "score cutoffs must be strictly descending and positive"}
	}
	if !(cl.OptimalFactor > cl.HighFactor && cl.HighFactor > cl.ModerateFactor) {
		return &ConfigError{Section: "classes", Reason: "factor floors must be strictly descending"}
	}
	return nil
}

func validateRange(section string, r NutrientRange) error {
	if r.Low < 0 || r.High < 0 {
		return &ConfigError{Section: section, Reason: "cutoffs must be non-negative"}
	}
	if r.Low >= r.High {
		return &ConfigError{Section: section, Reason: "low cutoff must be below high cutoff"}
	}
	return nil
}

func validateBands(section string, bands []Band) error {
	if len(bands) == 0 {
		return &ConfigError{Section: section, Reason: "empty step table"}
	}
	prev := math.Inf(-1)
	for _, b := range bands {
		if b.Factor < 0 || b.Factor > 1 {
			return &ConfigError{Section: section, Reason: "factor outside [0,1]"}
		}
		if b.Upper <= prev {
			return &ConfigError{Section: section, Reason: "breakpoints must be strictly increasing"}
		}
		prev = b.Upper
	}
	last := bands[len(bands)-1]
	if !math.IsInf(last.Upper, 1) {
		return &ConfigError{Section: section, Reason: "last band must be open-ended"}
	}
	return nil
}

// thresholdsFor resolves the cutoffs for a crop, applying any enumerated
// per-nutrient overrides over the defaults.
func (c *Config) thresholdsFor(crop string) NutrientThresholds {
	t := c.Nutrients
	ct, ok := c.Crops[crop]
	if !ok {
		return t
	}
	if ct.Nitrogen != nil {
		t.Nitrogen = *ct.Nitrogen
	}
	if ct.Phosphorus != nil {
		t.Phosphorus = *ct.Phosphorus
	}
	if ct.Potassium != nil {
		t.Potassium = *ct.Potassium
	}
	return t
}
