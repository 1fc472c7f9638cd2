package event

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

// Assessment is the payload exposed to the gateway.
type Assessment struct {
	FieldID        string  `json:"field_id,omitempty"`
	SampleID       string  `json:"sample_id,omitempty"`
	FinalScore     float64 `json:"final_score"`
	Classification string  `json:"classification,omitempty"`
	LimitingFactor string  `json:"limiting_factor,omitempty"`
	Time           string  `json:"time"` // RFC3339
}

type queryParams struct {
	Minutes   int
	Limit     int
	TimeoutMS int
}

func parseQuery(r *http.Request, defMin, defLim, defTOms int) queryParams {
	q := r.URL.Query()
	get := func(k string, def, min, max int) int {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				if n < min {
					return min
				}
				if max > 0 && n > max {
					return max
				}
				return n
			}
		}
		return def
	}
	return queryParams{
		Minutes:   get("minutes", defMin, 1, 7*24*60),
		Limit:     get("limit", defLim, 1, 500),
		TimeoutMS: get("timeout_ms", defTOms, 200, 5000),
	}
}

func buildFlux(bucket string, minutes, limit int) string {
	return fmt.Sprintf(`
from(bucket: %q)
  |> range(start: -%dm)
  |> filter(fn: (r) => r._measurement == "fertility_event" and r.event_type == "fertility.assessment")
  |> filter(fn: (r) => r._field == "final_score")
  |> keep(columns: ["_time","_value","field_id","sample_id","classification","limiting_factor"])
  |> sort(columns: ["_time"], desc: true)
  |> limit(n:%d)
`, bucket, minutes, limit)
}

func runLatest(w http.ResponseWriter, r *http.Request, influx influxdb2.Client, org, bucket string, defMin, defLim int) {
	p := parseQuery(r, defMin, defLim, 2000)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(p.TimeoutMS)*time.Millisecond)
	defer cancel()

	api := influx.QueryAPI(org)
	res, err := api.Query(ctx, buildFlux(bucket, p.Minutes, p.Limit))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Error", "influx-query-error")
		_, _ = w.Write([]byte("[]"))
		return
	}
	defer func() { _ = res.Close() }()

	out := make([]Assessment, 0, p.Limit)
	for res.Next() {
		rec := res.Record()

		var score float64
		switch v := rec.Value().(type) {
		case float64:
			score = v
		case int64:
			score = float64(v)
		case int:
			score = float64(v)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				score = f
			}
		}

		tag := func(key string) string {
			if v := rec.ValueByKey(key); v != nil {
				if s, ok := v.(string); ok {
					return strings.TrimSpace(s)
				}
			}
			return ""
		}

		out = append(out, Assessment{
			FieldID:        tag("field_id"),
			SampleID:       tag("sample_id"),
			FinalScore:     score,
			Classification: tag("classification"),
			LimitingFactor: tag("limiting_factor"),
			Time:           rec.Time().UTC().Format(time.RFC3339),
		})
	}
	if res.Err() != nil {
		w.Header().Set("X-Error", "influx-iter-error")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// NewAssessmentLatestHandler serves
// GET /assessments/latest?limit=20[&minutes=1440]
func NewAssessmentLatestHandler(influx influxdb2.Client, org, bucket string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runLatest(w, r, influx, org, bucket, 1440, 20)
	})
}
