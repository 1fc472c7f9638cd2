package model

import (
	"github.com/agrilab/soilfert/internal/model/entities"
	"github.com/agrilab/soilfert/internal/model/messages"
)

// Aliases exposing common types to the services.

type (
	SampleReading       = messages.SampleReading
	AssessmentEvent     = messages.AssessmentEvent
	SoilSample          = entities.SoilSample
	FertilityAssessment = entities.FertilityAssessment
	Field               = entities.Field
	SamplePoint         = entities.SamplePoint
)
