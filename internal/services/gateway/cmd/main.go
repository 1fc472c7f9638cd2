package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

/************* MODELS (DTOs toward the dashboard) *************/

type Sample struct {
	FieldID       string  `json:"field_id"`
	SampleID      string  `json:"sample_id"`
	CropType      string  `json:"crop_type,omitempty"`
	Nitrogen      float64 `json:"nitrogen"`
	Phosphorus    float64 `json:"phosphorus"`
	Potassium     float64 `json:"potassium"`
	PH            float64 `json:"ph"`
	EC            float64 `json:"electrical_conductivity"`
	OrganicCarbon float64 `json:"organic_carbon"`
	Timestamp     string  `json:"timestamp"`
}

type Assessment struct {
	FieldID        string  `json:"field_id,omitempty"`
	SampleID       string  `json:"sample_id,omitempty"`
	FinalScore     float64 `json:"final_score"`
	Classification string  `json:"classification,omitempty"`
	LimitingFactor string  `json:"limiting_factor,omitempty"`
	Time           string  `json:"time"`
}

type Stats struct {
	Mean float64 `json:"mean"`
	Max  float64 `json:"max"`
	Min  float64 `json:"min"`
}

type Payload struct {
	Samples     []Sample     `json:"samples"`
	Assessments []Assessment `json:"assessments"`
	Stats       Stats        `json:"stats"`
}

/************* UPSTREAM REST CLIENT *************/

type Upstream struct {
	http    *http.Client
	timeout time.Duration
}

func NewUpstream(timeoutMs int) *Upstream {
	return &Upstream{
		http:    &http.Client{Timeout: time.Duration(timeoutMs) * time.Millisecond},
		timeout: time.Duration(timeoutMs) * time.Millisecond,
	}
}

func (u *Upstream) getJSON(ctx context.Context, url string, out any) error {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	res, err := u.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("GET %s -> %s", url, res.Status)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// Persistence-Service: latest reading per sample point
func (u *Upstream) GetSamples(ctx context.Context, base string) ([]Sample, error) {
	var out []Sample
	if err := u.getJSON(ctx, base+"/data/latest", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Event-Service: recent assessments
func (u *Upstream) GetAssessments(ctx context.Context, base string) ([]Assessment, error) {
	var out []Assessment
	if err := u.getJSON(ctx, base+"/assessments/latest", &out); err != nil {
		return nil, err
	}
	return out, nil
}

/************* HELPERS *************/

// scoreStats summarizes the final scores in the current assessment window.
func scoreStats(assessments []Assessment) Stats {
	if len(assessments) == 0 {
		return Stats{}
	}
	st := Stats{Min: assessments[0].FinalScore, Max: assessments[0].FinalScore}
	sum := 0.0
	for _, a := range assessments {
		sum += a.FinalScore
		if a.FinalScore > st.Max {
			st.Max = a.FinalScore
		}
		if a.FinalScore < st.Min {
			st.Min = a.FinalScore
		}
	}
	st.Mean = sum / float64(len(assessments))
	return st
}

/************* MAIN *************/

var (
	persistenceCB *gobreaker.CircuitBreaker
	eventCB       *gobreaker.CircuitBreaker

	lastGoodSamples     []Sample
	lastGoodAssessments []Assessment
)

func mkCB(name string, fails, openMs, intervalMs int) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     name,
		Interval: time.Duration(intervalMs) * time.Millisecond,
		Timeout:  time.Duration(openMs) * time.Millisecond,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(fails)
		},
	})
}

func main() {
	cfg := loadConfig()

	persistenceCB = mkCB("persistence-service", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs)
	eventCB = mkCB("event-service", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs)

	http.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	http.HandleFunc("/dashboard/data", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(cfg.TimeoutMs)*time.Millisecond)
		defer cancel()

		up := NewUpstream(cfg.TimeoutMs)

		// (1) SAMPLES: REST with circuit breaker, last-good fallback
		var samples []Sample
		if res, err := persistenceCB.Execute(func() (any, error) {
			s, err := up.GetSamples(ctx, cfg.PersistenceURL)
			if err != nil {
				return nil, err
			}
			if len(s) == 0 {
				return nil, fmt.Errorf("empty samples")
			}
			return s, nil
		}); err == nil {
			samples = res.([]Sample)
			lastGoodSamples = samples
		} else {
			samples = lastGoodSamples
		}

		// (2) ASSESSMENTS: same pattern on its own breaker
		var assessments []Assessment
		if res, err := eventCB.Execute(func() (any, error) {
			a, err := up.GetAssessments(ctx, cfg.EventURL)
			if err != nil {
				return nil, err
			}
			if len(a) == 0 {
				return nil, fmt.Errorf("empty assessments")
			}
			return a, nil
		}); err == nil {
			assessments = res.([]Assessment)
			lastGoodAssessments = assessments
		} else {
			assessments = lastGoodAssessments
		}

		resp := Payload{
			Samples:     samples,
			Assessments: assessments,
			Stats:       scoreStats(assessments),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)

		log.Printf("GET /dashboard/data [%dms] cb[pers]=%v cb[event]=%v samples=%d assessments=%d",
			time.Since(start).Milliseconds(), persistenceCB.State(), eventCB.State(),
			len(resp.Samples), len(resp.Assessments))
	})

	addr := ":" + cfg.Port
	log.Printf("gateway listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
