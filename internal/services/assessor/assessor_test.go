package assessor

import (
	"context"
	"encoding/json"
	"testing"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilab/soilfert/internal/fertility"
	"github.com/agrilab/soilfert/internal/model/messages"
)

type fakeConsumer struct {
	handler func(string, mqtt.Message) error
}

func (c *fakeConsumer) ConsumeMessage(context.Context) {}
func (c *fakeConsumer) SetHandler(h func(string, mqtt.Message) error) {
	c.handler = h
}

type published struct {
	topic   string
	qos     byte
	payload string
}

type fakePublisher struct {
	messages []published
}

func (p *fakePublisher) PublishMessage(message interface{}) error {
	p.messages = append(p.messages, published{payload: message.(string)})
	return nil
}
func (p *fakePublisher) PublishToQos(topic string, qos byte, _ bool, message string) error {
	p.messages = append(p.messages, published{topic: topic, qos: qos, payload: message})
	return nil
}
func (p *fakePublisher) Close() {}

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

func newTestAssessor(t *testing.T) (*fakeConsumer, *fakePublisher, *Assessor) {
	t.Helper()
	engine, err := fertility.New(nil)
	require.NoError(t, err)

	consumer := &fakeConsumer{}
	publisher := &fakePublisher{}
	svc, err := New(consumer, publisher, engine, "", nil)
	require.NoError(t, err)
	require.NotNil(t, consumer.handler, "constructor must inject the handler")
	return consumer, publisher, svc
}

func readingPayload(t *testing.T, r messages.SampleReading) []byte {
	t.Helper()
	b, err := json.Marshal(r)
	require.NoError(t, err)
	return b
}

func aggregatedReading() messages.SampleReading {
	return messages.SampleReading{
		FieldID: "f1", SampleID: "p1",
		Nitrogen: 350, Phosphorus: 20, Potassium: 200,
		PH: 6.8, EC: 1.0, OrganicCarbon: 0.9,
		Aggregated: true,
	}
}

func TestHandlerPublishesAssessmentEvent(t *testing.T) {
	consumer, publisher, _ := newTestAssessor(t)

	err := consumer.handler("", fakeMessage{payload: readingPayload(t, aggregatedReading())})
	require.NoError(t, err)
	require.Len(t, publisher.messages, 1)

	pub := publisher.messages[0]
	assert.Equal(t, "event/fertilityAssessment/f1/p1", pub.topic)
	assert.Equal(t, byte(1), pub.qos)

	var evt messages.AssessmentEvent
	require.NoError(t, json.Unmarshal([]byte(pub.payload), &evt))
	assert.Equal(t, "f1", evt.FieldID)
	assert.Equal(t, "p1", evt.SampleID)
	assert.Equal(t, "OPTIMAL", evt.Classification)
	assert.NotEmpty(t, evt.AssessmentID)
	// (350+20+200) * 0.9 OC amplifier
	assert.InDelta(t, 513, evt.IndexScore, 1e-9)
}

func TestHandlerSkipsNonAggregated(t *testing.T) {
	consumer, publisher, _ := newTestAssessor(t)

	r := aggregatedReading()
	r.Aggregated = false
	err := consumer.handler("", fakeMessage{payload: readingPayload(t, r)})
	require.NoError(t, err)
	assert.Empty(t, publisher.messages)
}

func TestHandlerDropsRedeliveries(t *testing.T) {
	consumer, publisher, _ := newTestAssessor(t)

	payload := readingPayload(t, aggregatedReading())
	require.NoError(t, consumer.handler("", fakeMessage{payload: payload}))
	require.NoError(t, consumer.handler("", fakeMessage{payload: payload}))

	assert.Len(t, publisher.messages, 1, "identical QoS1 redelivery must be deduplicated")
}

func TestHandlerRejectsInvalidSampleWithoutPublishing(t *testing.T) {
	consumer, publisher, _ := newTestAssessor(t)

	r := aggregatedReading()
	r.PH = 15 // out of range
	err := consumer.handler("", fakeMessage{payload: readingPayload(t, r)})
	require.NoError(t, err, "invalid input is logged and dropped, not retried")
	assert.Empty(t, publisher.messages)
}
