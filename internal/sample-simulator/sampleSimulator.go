package sample_simulator

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/agrilab/soilfert/internal/model/entities"
	"github.com/agrilab/soilfert/pkg/rabbitmq"
)

// SampleSimulator emits synthetic lab replicates for one sample point at a
// fixed cadence.
type SampleSimulator struct {
	point      *entities.SamplePoint
	cropType   string
	generator  *DataGenerator
	publisher  rabbitmq.IPublisher
	topicTmpl  string // e.g. "sample/reading/{field}/{sample}"
	replicates int
}

func NewSampleSimulator(publisher rabbitmq.IPublisher, gen *DataGenerator,
	point *entities.SamplePoint, cropType, topicTmpl string, replicates int) *SampleSimulator {
	if replicates < 1 {
		replicates = 2
	}
	return &SampleSimulator{
		point:      point,
		cropType:   cropType,
		generator:  gen,
		publisher:  publisher,
		topicTmpl:  topicTmpl,
		replicates: replicates,
	}
}

// Start seeds the generator once, then publishes replicate readings every
// interval until the context is cancelled.
func (s *SampleSimulator) Start(ctx context.Context, interval time.Duration) {
	seedCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	s.generator.SeedFromSoilGrids(seedCtx, s.point)
	cancel()

	topic := strings.NewReplacer(
		"{field}", s.point.FieldID,
		"{sample}", s.point.ID,
	).Replace(s.topicTmpl)

	for {
		select {
		case <-ctx.Done():
			s.publisher.Close()
			return
		case <-time.After(interval):
			for i := 0; i < s.replicates; i++ {
				sd, err := s.generator.Next(s.point, s.cropType)
				if err != nil {
					log.Printf("data gen error: %v", err)
					continue
				}
				payload, _ := json.Marshal(sd)
				// raw replicates ride QoS0; the aggregated mean is the durable one
				if err := s.publisher.PublishToQos(topic, 0, false, string(payload)); err != nil {
					log.Printf("publish error: %v", err)
				}
			}
			log.Printf("simulator: pub %d replicates field=%s sample=%s", s.replicates, s.point.FieldID, s.point.ID)
		}
	}
}
