package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilab/soilfert/internal/model/messages"
)

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 0 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func assessmentPayload(t *testing.T, evt messages.AssessmentEvent) []byte {
	t.Helper()
	b, err := json.Marshal(evt)
	require.NoError(t, err)
	return b
}

func TestHandleDecodesAssessment(t *testing.T) {
	var got CommonEvent
	h := NewMQTTHandler(func(e CommonEvent) { got = e })

	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	payload := assessmentPayload(t, messages.AssessmentEvent{
		FieldID:        "f1",
		SampleID:       "p2",
		IndexScore:     616,
		FinalScore:     123.2,
		PHFactor:       0.2,
		ECFactor:       1.0,
		OCFactor:       1.0,
		LimitingFactor: "pH",
		Classification: "INFERTILE",
		Timestamp:      ts,
	})

	err := h.Handle("", fakeMessage{topic: "event/fertilityAssessment/f1/p2", payload: payload})
	require.NoError(t, err)

	assert.Equal(t, "fertility.assessment", got.EventType)
	assert.Equal(t, "f1", got.FieldID)
	assert.Equal(t, "p2", got.SampleID)
	assert.Equal(t, "warning", got.Severity) // INFERTILE escalates severity
	assert.Equal(t, "INFERTILE", got.Classification)
	assert.Equal(t, "pH", got.LimitingFactor)
	assert.Equal(t, ts, got.Timestamp)
	assert.InDelta(t, 123.2, got.Fields["final_score"].(float64), 1e-9)
	assert.InDelta(t, 0.2, got.Fields["ph_factor"].(float64), 1e-9)
}

func TestHandleFallsBackToTopicIDs(t *testing.T) {
	var got CommonEvent
	h := NewMQTTHandler(func(e CommonEvent) { got = e })

	payload := assessmentPayload(t, messages.AssessmentEvent{
		FinalScore:     558,
		Classification: "OPTIMAL",
	})

	err := h.Handle("", fakeMessage{topic: "event/fertilityAssessment/f9/p4", payload: payload})
	require.NoError(t, err)
	assert.Equal(t, "f9", got.FieldID)
	assert.Equal(t, "p4", got.SampleID)
	assert.Equal(t, "info", got.Severity)
}

func TestHandleIgnoresOtherTopics(t *testing.T) {
	called := false
	h := NewMQTTHandler(func(CommonEvent) { called = true })

	err := h.Handle("", fakeMessage{topic: "sample/reading/f1/p1", payload: []byte(`{}`)})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestEventToPointTagsAndFields(t *testing.T) {
	p := EventToPoint(CommonEvent{
		EventType:      "fertility.assessment",
		SourceService:  "assessor-service",
		FieldID:        "f1",
		SampleID:       "p1",
		Severity:       "info",
		Classification: "HIGH",
		LimitingFactor: "OrganicCarbon",
		Fields:         map[string]interface{}{"final_score": 250.0},
		Timestamp:      time.Now(),
	})

	assert.Equal(t, "fertility_event", p.Name())

	tags := map[string]string{}
	for _, tag := range p.TagList() {
		tags[tag.Key] = tag.Value
	}
	assert.Equal(t, "HIGH", tags["classification"])
	assert.Equal(t, "OrganicCarbon", tags["limiting_factor"])
	assert.Equal(t, "f1", tags["field_id"])

	fields := map[string]interface{}{}
	for _, f := range p.FieldList() {
		fields[f.Key] = f.Value
	}
	assert.Equal(t, 250.0, fields["final_score"])
}
