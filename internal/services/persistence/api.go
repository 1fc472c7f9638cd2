package persistence

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

func NewHTTPMux(svc *Service) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })

	// GET /data/latest
	// Query params:
	//   source=auto|influx|cache   (default auto: try Influx, fall back to cache)
	//   minutes=<int>              (Influx lookback window, default 1440 = 24h)
	mux.HandleFunc("/data/latest", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		source := strings.ToLower(q.Get("source"))
		if source == "" {
			source = "auto"
		}
		minutes := 60 * 24
		if s := q.Get("minutes"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				minutes = n
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var used string
		list := svc.LatestCache()
		if source == "influx" || source == "auto" {
			if fromInflux, err := svc.QueryLatestFromInflux(ctx, minutes); err == nil && len(fromInflux) > 0 {
				list = fromInflux
				used = "influx"
			}
		}
		if used == "" {
			used = "cache"
		}

		type outT struct {
			FieldID       string  `json:"field_id"`
			SampleID      string  `json:"sample_id"`
			CropType      string  `json:"crop_type,omitempty"`
			Nitrogen      float64 `json:"nitrogen"`
			Phosphorus    float64 `json:"phosphorus"`
			Potassium     float64 `json:"potassium"`
			PH            float64 `json:"ph"`
			EC            float64 `json:"electrical_conductivity"`
			OrganicCarbon float64 `json:"organic_carbon"`
			Aggregated    bool    `json:"aggregated"`
			Timestamp     string  `json:"timestamp"`
		}
		out := make([]outT, 0, len(list))
		for _, v := range list {
			out = append(out, outT{
				FieldID: v.FieldID, SampleID: v.SampleID, CropType: v.CropType,
				Nitrogen: v.Nitrogen, Phosphorus: v.Phosphorus, Potassium: v.Potassium,
				PH: v.PH, EC: v.EC, OrganicCarbon: v.OrganicCarbon,
				Aggregated: v.Aggregated, Timestamp: v.Timestamp.UTC().Format(time.RFC3339),
			})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].FieldID != out[j].FieldID {
				return out[i].FieldID < out[j].FieldID
			}
			return out[i].SampleID < out[j].SampleID
		})

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Data-Source", used)
		_ = json.NewEncoder(w).Encode(out)
	})

	return mux
}
