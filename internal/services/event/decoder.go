package event

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	msg "github.com/agrilab/soilfert/internal/model/messages"
)

type CommonEvent struct {
	EventType      string // fertility.assessment
	SourceService  string // assessor-service | ...
	FieldID        string
	SampleID       string
	Severity       string // info|warning|error
	Classification string // OPTIMAL..INFERTILE
	LimitingFactor string
	Fields         map[string]interface{}
	Timestamp      time.Time
}

// MQTTHandler turns MQTT messages into CommonEvents and hands them to sink
// (Influx).
type MQTTHandler struct{ sink func(CommonEvent) }

func NewMQTTHandler(sink func(CommonEvent)) *MQTTHandler { return &MQTTHandler{sink: sink} }

func (h *MQTTHandler) Handle(_ string, m mqtt.Message) error {
	topic := m.Topic()
	payload := m.Payload()

	var (
		evt CommonEvent
		err error
	)
	switch {
	case strings.HasPrefix(topic, "event/fertilityAssessment/"):
		evt, err = decodeAssessment(topic, payload)
	default:
		return nil // ignore other topics
	}
	if err != nil {
		return err
	}
	if h.sink != nil {
		h.sink(evt)
	}
	return nil
}

func decodeAssessment(topic string, payload []byte) (CommonEvent, error) {
	var a msg.AssessmentEvent
	if err := json.Unmarshal(payload, &a); err != nil {
		return CommonEvent{}, err
	}
	fieldID, sampleID := pickIDs(topic, a.FieldID, a.SampleID, "event/fertilityAssessment/")
	if fieldID == "" || sampleID == "" {
		return CommonEvent{}, errors.New("assessment: missing field/sample")
	}
	sev := "info"
	if strings.EqualFold(a.Classification, "INFERTILE") {
		sev = "warning"
	}
	return CommonEvent{
		EventType:      "fertility.assessment",
		SourceService:  "assessor-service",
		FieldID:        fieldID,
		SampleID:       sampleID,
		Severity:       sev,
		Classification: a.Classification,
		LimitingFactor: a.LimitingFactor,
		Fields: map[string]interface{}{
			"index_score":     a.IndexScore,
			"final_score":     a.FinalScore,
			"ph_factor":       a.PHFactor,
			"ec_factor":       a.ECFactor,
			"oc_factor":       a.OCFactor,
			"recommendations": int64(len(a.Recommendations)),
		},
		Timestamp: a.Timestamp,
	}, nil
}

// pickIDs prefers the payload IDs, else topic "prefix/{field}/{sample}".
func pickIDs(topic, fieldID, sampleID, prefix string) (string, string) {
	if strings.TrimSpace(fieldID) != "" && strings.TrimSpace(sampleID) != "" {
		return fieldID, sampleID
	}
	suffix := strings.TrimPrefix(topic, prefix)
	parts := strings.Split(suffix, "/")
	if len(parts) >= 2 {
		return parts[0], parts[1]
	}
	return fieldID, sampleID
}
