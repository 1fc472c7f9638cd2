package messages

import (
	"time"

	"github.com/agrilab/soilfert/internal/model/entities"
)

// SampleReading carries one laboratory reading over the broker. It holds both
// raw replicate readings and the aggregated per-point mean.
type SampleReading struct {
	FieldID  string `json:"field_id"`
	SampleID string `json:"sample_id"`
	CropType string `json:"crop_type,omitempty"`

	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`

	PH            float64 `json:"ph"`
	EC            float64 `json:"electrical_conductivity"`
	OrganicCarbon float64 `json:"organic_carbon"`

	Sulfur *float64 `json:"sulfur,omitempty"`
	Zinc   *float64 `json:"zinc,omitempty"`
	Iron   *float64 `json:"iron,omitempty"`
	Boron  *float64 `json:"boron,omitempty"`

	Aggregated bool      `json:"aggregated"`
	Timestamp  time.Time `json:"timestamp"`
}

// ToSample converts the wire reading into the engine's input record.
func (r SampleReading) ToSample() entities.SoilSample {
	s := entities.SoilSample{
		FieldID:       r.FieldID,
		SampleID:      r.SampleID,
		CropType:      r.CropType,
		Nitrogen:      r.Nitrogen,
		Phosphorus:    r.Phosphorus,
		Potassium:     r.Potassium,
		PH:            r.PH,
		EC:            r.EC,
		OrganicCarbon: r.OrganicCarbon,
	}
	if r.Sulfur != nil || r.Zinc != nil || r.Iron != nil || r.Boron != nil {
		s.Micro = &entities.Micronutrients{
			Sulfur: r.Sulfur,
			Zinc:   r.Zinc,
			Iron:   r.Iron,
			Boron:  r.Boron,
		}
	}
	return s
}
