package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilab/soilfert/internal/model/messages"
)

func ptr(v float64) *float64 { return &v }

func TestMeanReadingAveragesAnalytes(t *testing.T) {
	readings := []messages.SampleReading{
		{FieldID: "f1", SampleID: "p1", CropType: "wheat",
			Nitrogen: 300, Phosphorus: 12, Potassium: 100, PH: 6.4, EC: 1.0, OrganicCarbon: 0.8},
		{FieldID: "f1", SampleID: "p1", CropType: "wheat",
			Nitrogen: 320, Phosphorus: 16, Potassium: 120, PH: 6.8, EC: 1.4, OrganicCarbon: 1.0},
	}

	out := MeanReading(readings)

	assert.Equal(t, "f1", out.FieldID)
	assert.Equal(t, "p1", out.SampleID)
	assert.Equal(t, "wheat", out.CropType)
	assert.InDelta(t, 310, out.Nitrogen, 1e-9)
	assert.InDelta(t, 14, out.Phosphorus, 1e-9)
	assert.InDelta(t, 110, out.Potassium, 1e-9)
	assert.InDelta(t, 6.6, out.PH, 1e-9)
	assert.InDelta(t, 1.2, out.EC, 1e-9)
	assert.InDelta(t, 0.9, out.OrganicCarbon, 1e-9)
}

func TestMeanReadingMicronutrients(t *testing.T) {
	readings := []messages.SampleReading{
		{FieldID: "f1", SampleID: "p1", Zinc: ptr(0.5), Sulfur: ptr(12)},
		{FieldID: "f1", SampleID: "p1", Zinc: ptr(0.7)},
		{FieldID: "f1", SampleID: "p1"},
	}

	out := MeanReading(readings)

	// zinc averaged over the two replicates that report it
	require.NotNil(t, out.Zinc)
	assert.InDelta(t, 0.6, *out.Zinc, 1e-9)
	require.NotNil(t, out.Sulfur)
	assert.InDelta(t, 12, *out.Sulfur, 1e-9)
	assert.Nil(t, out.Iron)
	assert.Nil(t, out.Boron)
}

func TestMessageHandlerSkipsAggregated(t *testing.T) {
	svc := NewSampleAggregatorService(nil, nil, "sample/aggregated", 0)

	err := svc.messageHandler("", fakeMessage{payload: []byte(`{"field_id":"f1","sample_id":"p1","aggregated":true}`)})
	require.NoError(t, err)
	assert.Empty(t, svc.buffer)

	err = svc.messageHandler("", fakeMessage{payload: []byte(`{"field_id":"f1","sample_id":"p1","nitrogen":280}`)})
	require.NoError(t, err)
	require.Len(t, svc.buffer["f1|p1"], 1)
	assert.InDelta(t, 280, svc.buffer["f1|p1"][0].Nitrogen, 1e-9)
}

// fakeMessage satisfies mqtt.Message for handler tests.
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 0 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 0 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}
