package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/agrilab/soilfert/internal/model"
	"github.com/agrilab/soilfert/pkg/rabbitmq"
)

type InfluxConfig struct {
	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string
	Measurement  string // e.g. "soil_sample"
}

// Service consumes lab readings from the broker, writes them to InfluxDB with
// the blocking API and keeps the latest reading per sample point in memory as
// a fallback for /data/latest.
type Service struct {
	consumer    rabbitmq.IConsumer[model.SampleReading]
	influx      influxdb2.Client
	writeAPI    api.WriteAPIBlocking
	org         string
	bucket      string
	measurement string

	mu     sync.RWMutex
	latest map[string]model.SampleReading // key field|sample
}

func NewService(consumer rabbitmq.IConsumer[model.SampleReading], client influxdb2.Client, cfg InfluxConfig) (*Service, error) {
	if cfg.InfluxURL == "" || cfg.InfluxOrg == "" || cfg.InfluxBucket == "" {
		return nil, fmt.Errorf("influx config incomplete")
	}
	measurement := cfg.Measurement
	if measurement == "" {
		measurement = "soil_sample"
	}

	return &Service{
		consumer:    consumer,
		influx:      client,
		writeAPI:    client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		org:         cfg.InfluxOrg,
		bucket:      cfg.InfluxBucket,
		measurement: sanitizeMeasurement(measurement),
		latest:      make(map[string]model.SampleReading),
	}, nil
}

func (s *Service) Start(ctx context.Context) {
	s.consumer.SetHandler(func(topic string, msg mqtt.Message) error {
		var r model.SampleReading
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("persistence: invalid JSON on %s: %v", topic, err)
			return nil // do not block the stream
		}

		t := r.Timestamp
		if t.IsZero() {
			t = time.Now()
		}

		tags := map[string]string{
			"field_id":  r.FieldID,
			"sample_id": r.SampleID,
		}
		if r.CropType != "" {
			tags["crop_type"] = r.CropType
		}
		fields := map[string]interface{}{
			"nitrogen":                r.Nitrogen,
			"phosphorus":              r.Phosphorus,
			"potassium":               r.Potassium,
			"ph":                      r.PH,
			"electrical_conductivity": r.EC,
			"organic_carbon":          r.OrganicCarbon,
			"aggregated":              r.Aggregated,
		}
		for k, v := range map[string]*float64{
			"sulfur": r.Sulfur, "zinc": r.Zinc, "iron": r.Iron, "boron": r.Boron,
		} {
			if v != nil {
				fields[k] = *v
			}
		}

		point := influxdb2.NewPoint(s.measurement, tags, fields, t)
		if err := s.writeAPI.WritePoint(ctx, point); err != nil {
			log.Printf("persistence: write error: %v", err)
			return err
		}

		s.mu.Lock()
		s.latest[r.FieldID+"|"+r.SampleID] = r
		s.mu.Unlock()

		log.Printf("persistence: wrote %s field=%s sample=%s n=%.1f p=%.1f k=%.1f",
			s.measurement, r.FieldID, r.SampleID, r.Nitrogen, r.Phosphorus, r.Potassium)
		return nil
	})

	s.consumer.ConsumeMessage(ctx)
}

// LatestCache returns the most recent reading per sample point held in memory.
func (s *Service) LatestCache() []model.SampleReading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SampleReading, 0, len(s.latest))
	for _, r := range s.latest {
		out = append(out, r)
	}
	return out
}

// QueryLatestFromInflux pulls the last reading per sample point within the
// given window. Each field comes back as its own record; records are folded
// by (field_id, sample_id).
func (s *Service) QueryLatestFromInflux(ctx context.Context, minutes int) ([]model.SampleReading, error) {
	flux := fmt.Sprintf(`
from(bucket: %q)
  |> range(start: -%dm)
  |> filter(fn: (r) => r._measurement == %q)
  |> group(columns: ["field_id","sample_id","_field"])
  |> last()
`, s.bucket, minutes, s.measurement)

	res, err := s.influx.QueryAPI(s.org).Query(ctx, flux)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Close() }()

	byKey := make(map[string]*model.SampleReading)
	for res.Next() {
		rec := res.Record()
		fieldID, _ := rec.ValueByKey("field_id").(string)
		sampleID, _ := rec.ValueByKey("sample_id").(string)
		if fieldID == "" || sampleID == "" {
			continue
		}
		k := fieldID + "|" + sampleID
		r, ok := byKey[k]
		if !ok {
			r = &model.SampleReading{FieldID: fieldID, SampleID: sampleID}
			byKey[k] = r
		}
		if rec.Time().After(r.Timestamp) {
			r.Timestamp = rec.Time()
		}
		if ct, _ := rec.ValueByKey("crop_type").(string); ct != "" {
			r.CropType = ct
		}
		assignField(r, rec.Field(), rec.Value())
	}
	if res.Err() != nil {
		return nil, res.Err()
	}

	out := make([]model.SampleReading, 0, len(byKey))
	for _, r := range byKey {
		out = append(out, *r)
	}
	return out, nil
}

func assignField(r *model.SampleReading, field string, value interface{}) {
	switch field {
	case "aggregated":
		if b, ok := value.(bool); ok {
			r.Aggregated = b
		}
		return
	}
	v, ok := toFloat(value)
	if !ok {
		return
	}
	switch field {
	case "nitrogen":
		r.Nitrogen = v
	case "phosphorus":
		r.Phosphorus = v
	case "potassium":
		r.Potassium = v
	case "ph":
		r.PH = v
	case "electrical_conductivity":
		r.EC = v
	case "organic_carbon":
		r.OrganicCarbon = v
	case "sulfur":
		r.Sulfur = &v
	case "zinc":
		r.Zinc = &v
	case "iron":
		r.Iron = &v
	case "boron":
		r.Boron = &v
	}
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func sanitizeMeasurement(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == ':', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
