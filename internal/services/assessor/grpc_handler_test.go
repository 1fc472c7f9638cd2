package assessor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/agrilab/soilfert/grpc/gen/go/fertility"
	"github.com/agrilab/soilfert/internal/fertility"
)

func newGrpcHandler(t *testing.T) *GrpcHandler {
	t.Helper()
	engine, err := fertility.New(nil)
	require.NoError(t, err)
	return NewGrpcHandler(engine, nil)
}

func TestGrpcAssessSuccess(t *testing.T) {
	h := newGrpcHandler(t)

	reply, err := h.Assess(context.Background(), &pb.AssessRequest{
		FieldId:                "f1",
		SampleId:               "p1",
		Nitrogen:               350,
		Phosphorus:             20,
		Potassium:              200,
		Ph:                     6.8,
		ElectricalConductivity: 1.0,
		OrganicCarbon:          0.9,
	})
	require.NoError(t, err)
	require.True(t, reply.GetSuccess())

	assert.InDelta(t, 513, reply.GetIndexScore(), 1e-9)
	assert.InDelta(t, 513, reply.GetFinalScore(), 1e-9)
	assert.Equal(t, "OPTIMAL", reply.GetClassification())
	assert.Equal(t, "None", reply.GetLimitingFactor())
	assert.InDelta(t, 1.0, reply.GetPhFactor(), 1e-9)
	assert.Empty(t, reply.GetRecommendations())
}

func TestGrpcAssessConstrainedSampleCarriesRecommendations(t *testing.T) {
	h := newGrpcHandler(t)

	reply, err := h.Assess(context.Background(), &pb.AssessRequest{
		FieldId:                "f1",
		SampleId:               "p2",
		Nitrogen:               450,
		Phosphorus:             20,
		Potassium:              300,
		Ph:                     5.2, // strongly acidic
		ElectricalConductivity: 0.8,
		OrganicCarbon:          0.8,
	})
	require.NoError(t, err)
	require.True(t, reply.GetSuccess())

	assert.Equal(t, "pH", reply.GetLimitingFactor())
	assert.Equal(t, "INFERTILE", reply.GetClassification())
	require.NotEmpty(t, reply.GetRecommendations())
	first := reply.GetRecommendations()[0]
	assert.NotEmpty(t, first.GetProduct())
	assert.Greater(t, first.GetRateMax(), first.GetRateMin())
}

func TestGrpcAssessInvalidInput(t *testing.T) {
	h := newGrpcHandler(t)

	reply, err := h.Assess(context.Background(), &pb.AssessRequest{
		FieldId:                "f1",
		Nitrogen:               -1,
		Ph:                     6.5,
		ElectricalConductivity: 1,
		OrganicCarbon:          1,
	})
	require.NoError(t, err, "validation failures answer in-band, not as RPC errors")
	assert.False(t, reply.GetSuccess())
	assert.Contains(t, reply.GetMessage(), "nitrogen")
}
