package assessor

import (
	"context"
	"errors"
	"strings"

	pb "github.com/agrilab/soilfert/grpc/gen/go/fertility"
	"github.com/agrilab/soilfert/internal/fertility"
	"github.com/agrilab/soilfert/internal/model/entities"
)

// GrpcHandler serves on-demand single-sample assessments.
type GrpcHandler struct {
	pb.UnimplementedFertilityServiceServer

	engine  *fertility.Engine
	metrics *Metrics
}

func NewGrpcHandler(engine *fertility.Engine, metrics *Metrics) *GrpcHandler {
	return &GrpcHandler{engine: engine, metrics: metrics}
}

func (h *GrpcHandler) Assess(_ context.Context, req *pb.AssessRequest) (*pb.AssessReply, error) {
	sample := entities.SoilSample{
		FieldID:       strings.TrimSpace(req.GetFieldId()),
		SampleID:      strings.TrimSpace(req.GetSampleId()),
		CropType:      strings.TrimSpace(req.GetCropType()),
		Nitrogen:      req.GetNitrogen(),
		Phosphorus:    req.GetPhosphorus(),
		Potassium:     req.GetPotassium(),
		PH:            req.GetPh(),
		EC:            req.GetElectricalConductivity(),
		OrganicCarbon: req.GetOrganicCarbon(),
	}

	a, err := h.engine.Assess(sample)
	if err != nil {
		var inv *fertility.InvalidInputError
		if errors.As(err, &inv) {
			if h.metrics != nil {
				h.metrics.InvalidTotal.Inc()
			}
			return &pb.AssessReply{Success: false, Message: inv.Error()}, nil
		}
		return &pb.AssessReply{Success: false, Message: "internal error"}, err
	}
	if h.metrics != nil {
		h.metrics.AssessedTotal.WithLabelValues(string(a.Classification)).Inc()
	}

	recs := make([]*pb.Recommendation, 0, len(a.Recommendations))
	for _, r := range a.Recommendations {
		recs = append(recs, &pb.Recommendation{
			Action:   r.Action,
			Product:  r.Product,
			RateMin:  r.Rate.Min,
			RateMax:  r.Rate.Max,
			RateUnit: r.Rate.Unit,
			Impact:   r.Impact,
		})
	}

	return &pb.AssessReply{
		Success:         true,
		Message:         "ok",
		IndexScore:      a.IndexScore,
		FinalScore:      a.FinalScore,
		PhFactor:        a.PHFactor.Value,
		EcFactor:        a.ECFactor.Value,
		OcFactor:        a.OCFactor.Value,
		LimitingFactor:  string(a.LimitingFactor),
		Classification:  string(a.Classification),
		Recommendations: recs,
	}, nil
}
