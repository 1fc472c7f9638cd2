package messages

import (
	"time"

	"github.com/agrilab/soilfert/internal/model/entities"
)

// AssessmentEvent is published by the assessor to record the outcome of
// scoring one sample.
type AssessmentEvent struct {
	AssessmentID string `json:"assessment_id,omitempty"`
	FieldID      string `json:"field_id"`
	SampleID     string `json:"sample_id"`

	IndexScore float64 `json:"index_score"`
	FinalScore float64 `json:"final_score"`

	PHFactor float64 `json:"ph_factor"`
	ECFactor float64 `json:"ec_factor"`
	OCFactor float64 `json:"oc_factor"`

	LimitingFactor string `json:"limiting_factor"`
	Classification string `json:"classification"`

	Recommendations []entities.Recommendation `json:"recommendations,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// FromAssessment builds the wire event for a completed assessment.
func FromAssessment(a *entities.FertilityAssessment, ts time.Time) AssessmentEvent {
	return AssessmentEvent{
		FieldID:         a.FieldID,
		SampleID:        a.SampleID,
		IndexScore:      a.IndexScore,
		FinalScore:      a.FinalScore,
		PHFactor:        a.PHFactor.Value,
		ECFactor:        a.ECFactor.Value,
		OCFactor:        a.OCFactor.Value,
		LimitingFactor:  string(a.LimitingFactor),
		Classification:  string(a.Classification),
		Recommendations: a.Recommendations,
		Timestamp:       ts,
	}
}
