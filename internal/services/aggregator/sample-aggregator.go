package aggregator

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/agrilab/soilfert/internal/model/messages"
	"github.com/agrilab/soilfert/pkg/rabbitmq"
)

// SampleAggregatorService buffers replicate lab readings per sample point and
// publishes their mean once per aggregation interval. Labs run each analysis
// in duplicate or triplicate; downstream scoring wants one value per point.
type SampleAggregatorService struct {
	consumer            rabbitmq.IConsumer[messages.SampleReading]
	publisher           rabbitmq.IPublisher
	buffer              map[string][]messages.SampleReading // key is field|sample
	mutex               sync.Mutex
	aggregationInterval time.Duration
	publishTopic        string
}

func NewSampleAggregatorService(consumer rabbitmq.IConsumer[messages.SampleReading], publisher rabbitmq.IPublisher,
	publishTopic string, aggregationInterval time.Duration) *SampleAggregatorService {
	return &SampleAggregatorService{
		consumer:            consumer,
		publisher:           publisher,
		aggregationInterval: aggregationInterval,
		publishTopic:        publishTopic,
		buffer:              make(map[string][]messages.SampleReading),
	}
}

func (d *SampleAggregatorService) messageHandler(_ string, message mqtt.Message) error {
	var reading messages.SampleReading
	if err := json.Unmarshal(message.Payload(), &reading); err != nil {
		log.Printf("aggregator: bad reading payload: %v", err)
		return err
	}
	if reading.Aggregated {
		// never re-buffer our own output
		return nil
	}

	k := reading.FieldID + "|" + reading.SampleID
	d.mutex.Lock()
	d.buffer[k] = append(d.buffer[k], reading)
	d.mutex.Unlock()
	return nil
}

func (d *SampleAggregatorService) Start(ctx context.Context) {
	d.consumer.SetHandler(d.messageHandler)
	go d.consumer.ConsumeMessage(ctx)

	ticker := time.NewTicker(d.aggregationInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.publisher.Close()
			return
		case <-ticker.C:
			d.aggregateAndPublish()
		}
	}
}

func (d *SampleAggregatorService) aggregateAndPublish() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for k, readings := range d.buffer {
		if len(readings) == 0 {
			continue
		}
		out := MeanReading(readings)
		out.Aggregated = true
		out.Timestamp = time.Now().UTC()

		b, err := json.Marshal(out)
		if err != nil {
			log.Printf("aggregator: marshal err %v", err)
			continue
		}
		// QoS1: the assessor must not miss an aggregated point
		if err := d.publisher.PublishToQos(d.publishTopic, 1, false, string(b)); err != nil {
			log.Printf("aggregator: publish err %v", err)
		} else {
			log.Printf("aggregator: published %s replicates=%d", k, len(readings))
		}

		d.buffer[k] = readings[:0]
	}
}

// MeanReading averages every analyte over the replicates. Micronutrients are
// averaged over the replicates that actually report them; a micronutrient
// absent from all replicates stays absent.
func MeanReading(readings []messages.SampleReading) messages.SampleReading {
	n := float64(len(readings))
	out := messages.SampleReading{
		FieldID:  readings[0].FieldID,
		SampleID: readings[0].SampleID,
		CropType: readings[0].CropType,
	}
	for _, r := range readings {
		out.Nitrogen += r.Nitrogen / n
		out.Phosphorus += r.Phosphorus / n
		out.Potassium += r.Potassium / n
		out.PH += r.PH / n
		out.EC += r.EC / n
		out.OrganicCarbon += r.OrganicCarbon / n
	}
	out.Sulfur = meanPtr(readings, func(r messages.SampleReading) *float64 { return r.Sulfur })
	out.Zinc = meanPtr(readings, func(r messages.SampleReading) *float64 { return r.Zinc })
	out.Iron = meanPtr(readings, func(r messages.SampleReading) *float64 { return r.Iron })
	out.Boron = meanPtr(readings, func(r messages.SampleReading) *float64 { return r.Boron })
	return out
}

func meanPtr(readings []messages.SampleReading, get func(messages.SampleReading) *float64) *float64 {
	sum, count := 0.0, 0
	for _, r := range readings {
		if v := get(r); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	m := sum / float64(count)
	return &m
}
