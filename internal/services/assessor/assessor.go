package assessor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/agrilab/soilfert/internal/fertility"
	"github.com/agrilab/soilfert/internal/model"
	"github.com/agrilab/soilfert/internal/model/messages"
	"github.com/agrilab/soilfert/pkg/dedup"
	"github.com/agrilab/soilfert/pkg/rabbitmq"
)

// Assessor consumes aggregated lab readings, scores them through the
// fertility engine and publishes the resulting assessment event.
type Assessor struct {
	consumer  rabbitmq.IConsumer[model.SampleReading]
	publisher rabbitmq.IPublisher
	engine    *fertility.Engine

	eventTopicTmpl string

	metrics *Metrics

	// deduper drops QoS1 redeliveries (payload hash)
	deduper *dedup.Deduper
}

func New(
	c rabbitmq.IConsumer[model.SampleReading],
	p rabbitmq.IPublisher,
	engine *fertility.Engine,
	eventTopicTmpl string,
	metrics *Metrics,
) (*Assessor, error) {
	if engine == nil {
		return nil, errors.New("fertility engine is nil")
	}
	a := &Assessor{
		consumer:       c,
		publisher:      p,
		engine:         engine,
		eventTopicTmpl: firstNonEmpty(eventTopicTmpl, "event/fertilityAssessment/{field}/{sample}"),
		metrics:        metrics,
		deduper:        dedup.New(10*time.Minute, 20000),
	}
	c.SetHandler(a.handleAggregated)
	return a, nil
}

func (a *Assessor) Start(ctx context.Context) {
	go a.consumer.ConsumeMessage(ctx)
	<-ctx.Done()
}

func (a *Assessor) handleAggregated(_ string, msg mqtt.Message) error {
	// dedup before unmarshal: identical QoS1 redeliveries share a hash
	h := sha256.Sum256(msg.Payload())
	if a.deduper != nil && !a.deduper.ShouldProcess(hex.EncodeToString(h[:])) {
		return nil
	}

	var r model.SampleReading
	if err := json.Unmarshal(msg.Payload(), &r); err != nil {
		log.Printf("assessor: bad payload: %v", err)
		return nil
	}
	if !r.Aggregated {
		return nil
	}

	started := time.Now()
	assessment, err := a.engine.Assess(r.ToSample())
	if err != nil {
		var inv *fertility.InvalidInputError
		if errors.As(err, &inv) {
			if a.metrics != nil {
				a.metrics.InvalidTotal.Inc()
			}
			log.Printf("assessor: invalid sample %s/%s: %v", r.FieldID, r.SampleID, err)
			return nil
		}
		log.Printf("assessor: assess %s/%s: %v", r.FieldID, r.SampleID, err)
		return err
	}
	if a.metrics != nil {
		a.metrics.Duration.Observe(time.Since(started).Seconds())
		a.metrics.AssessedTotal.WithLabelValues(string(assessment.Classification)).Inc()
	}

	log.Printf("assessor: %s/%s score=%.2f class=%s limiting=%s",
		assessment.FieldID, assessment.SampleID, assessment.FinalScore,
		assessment.Classification, assessment.LimitingFactor)

	return a.publishAssessment(assessment)
}

func (a *Assessor) publishAssessment(assessment *model.FertilityAssessment) error {
	evt := messages.FromAssessment(assessment, time.Now().UTC())
	evt.AssessmentID = uuid.New().String()
	b, _ := json.Marshal(evt)
	topic := strings.NewReplacer(
		"{field}", assessment.FieldID,
		"{sample}", assessment.SampleID,
	).Replace(a.eventTopicTmpl)

	if err := a.publisher.PublishToQos(topic, 1, false, string(b)); err != nil {
		log.Printf("assessor: publish assessment error: %v", err)
		return err
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
