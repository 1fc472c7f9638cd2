package event

import (
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// EventToPoint normalizes a CommonEvent into a *write.Point for InfluxDB.
func EventToPoint(evt CommonEvent) *write.Point {
	// tags (strings only)
	tags := map[string]string{
		"event_type":     evt.EventType,
		"source_service": evt.SourceService,
		"severity":       evt.Severity,
	}
	if evt.FieldID != "" {
		tags["field_id"] = evt.FieldID
	}
	if evt.SampleID != "" {
		tags["sample_id"] = evt.SampleID
	}
	if evt.Classification != "" {
		tags["classification"] = evt.Classification
	}
	if evt.LimitingFactor != "" {
		tags["limiting_factor"] = evt.LimitingFactor
	}

	fields := map[string]interface{}{}
	for k, v := range evt.Fields {
		fields[k] = v
	}

	// guarantee at least one field so the point is writable
	if _, ok := fields["count"]; !ok {
		fields["count"] = int64(1)
	}

	return influxdb2.NewPoint("fertility_event", tags, fields, evt.Timestamp)
}
