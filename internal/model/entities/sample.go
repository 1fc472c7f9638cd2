package entities

// SoilSample is one set of laboratory measurements taken at a sampling point.
// All values must already be expressed in the deployment's configured units;
// the scoring engine performs no unit inference or conversion.
type SoilSample struct {
	FieldID  string `json:"field_id"`            // opaque label, carried through to reports
	SampleID string `json:"sample_id,omitempty"` // unique sample identifier
	CropType string `json:"crop_type,omitempty"` // selects crop-specific thresholds when set

	Nitrogen   float64 `json:"nitrogen"`   // N, kg/ha or mg/kg per deployment
	Phosphorus float64 `json:"phosphorus"` // P
	Potassium  float64 `json:"potassium"`  // K

	PH            float64 `json:"ph"`                      // 0-14 scale
	EC            float64 `json:"electrical_conductivity"` // dS/m
	OrganicCarbon float64 `json:"organic_carbon"`          // % of dry soil (or fraction, per config)

	Micro *Micronutrients `json:"micronutrients,omitempty"`
}

// Micronutrients are optional secondary measurements in mg/kg. They feed the
// extended recommendation layer only and never enter the Liebig score.
type Micronutrients struct {
	Sulfur *float64 `json:"sulfur,omitempty"`
	Zinc   *float64 `json:"zinc,omitempty"`
	Iron   *float64 `json:"iron,omitempty"`
	Boron  *float64 `json:"boron,omitempty"`
}
