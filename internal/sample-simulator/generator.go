package sample_simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/agrilab/soilfert/internal/model/entities"
	"github.com/agrilab/soilfert/internal/model/messages"
)

// ====== Tunables ======
const (
	// defaultOCPercent: organic carbon seed when SoilGrids is unavailable.
	defaultOCPercent = 0.6

	// soilGridsURL: single fetch at startup; never called per tick.
	soilGridsURL = "https://rest.isric.org/soilgrids/v2.0/properties/query?lat=%f&lon=%f&property=soc"

	// replicateNoise: relative spread between lab replicates of one point.
	replicateNoise = 0.05
)

// cropBaseline holds typical analyte levels a synthetic point drifts around.
type cropBaseline struct {
	N, P, K float64
	PH, EC  float64
}

var baselines = map[string]cropBaseline{
	"wheat":  {N: 320, P: 18, K: 180, PH: 6.8, EC: 0.9},
	"corn":   {N: 380, P: 22, K: 220, PH: 6.5, EC: 1.1},
	"rice":   {N: 300, P: 15, K: 160, PH: 6.2, EC: 1.4},
	"cotton": {N: 350, P: 20, K: 240, PH: 7.2, EC: 1.8},
}

var defaultBaseline = cropBaseline{N: 330, P: 18, K: 190, PH: 6.7, EC: 1.2}

// DataGenerator keeps per-point analyte state and drifts it over time.
// At most ONE optional SoilGrids fetch happens, at startup, to seed the
// organic carbon level from the point's real-world location.
type DataGenerator struct {
	mu        sync.Mutex
	seeded    bool
	base      cropBaseline
	ocPercent float64
	rng       *rand.Rand

	httpClient *http.Client
}

func NewDataGenerator(cropType string, seed int64) *DataGenerator {
	base, ok := baselines[cropType]
	if !ok {
		base = defaultBaseline
	}
	return &DataGenerator{
		base:       base,
		ocPercent:  defaultOCPercent,
		rng:        rand.New(rand.NewSource(seed)),
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

// SeedFromSoilGrids performs the single startup fetch. On failure the default
// organic carbon seed stays in place.
func (g *DataGenerator) SeedFromSoilGrids(ctx context.Context, p *entities.SamplePoint) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seeded {
		return
	}
	g.seeded = true

	if p.Latitude == 0 && p.Longitude == 0 {
		return
	}
	if oc, err := g.fetchOrganicCarbon(ctx, p.Latitude, p.Longitude); err == nil && oc > 0 {
		g.ocPercent = oc
	}
}

// Next produces one lab replicate for the point. Replicates jitter around the
// crop baseline so the aggregator has something to average.
func (g *DataGenerator) Next(p *entities.SamplePoint, cropType string) (messages.SampleReading, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	jitter := func(v float64) float64 {
		return v * (1 + replicateNoise*(2*g.rng.Float64()-1))
	}

	return messages.SampleReading{
		FieldID:       p.FieldID,
		SampleID:      p.ID,
		CropType:      cropType,
		Nitrogen:      jitter(g.base.N),
		Phosphorus:    jitter(g.base.P),
		Potassium:     jitter(g.base.K),
		PH:            clampPH(jitter(g.base.PH)),
		EC:            math.Max(0, jitter(g.base.EC)),
		OrganicCarbon: math.Max(0, jitter(g.ocPercent)),
		Aggregated:    false,
		Timestamp:     time.Now().UTC(),
	}, nil
}

func clampPH(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 14 {
		return 14
	}
	return v
}

// ===== SoilGrids =====

// fetchOrganicCarbon queries SoilGrids for topsoil soc (dg/kg) and converts
// it to percent. One retry on transient failures.
func (g *DataGenerator) fetchOrganicCarbon(ctx context.Context, lat, lon float64) (float64, error) {
	url := fmt.Sprintf(soilGridsURL, lat, lon)
	var lastErr error

	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(g.rng.Intn(400)+600) * time.Millisecond)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return 0, err
		}
		req.Header.Set("User-Agent", "soilfert-sample-simulator/1.0")

		resp, err := g.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			var parsed any
			if err := json.Unmarshal(body, &parsed); err != nil {
				lastErr = err
				continue
			}
			if v := extractMeanValue(parsed); v > 0 {
				return v / 100.0, nil // dg/kg -> percent
			}
			lastErr = fmt.Errorf("soilgrids: soc value not found")
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("soilgrids HTTP %d", resp.StatusCode)
		default:
			return 0, fmt.Errorf("soilgrids HTTP %d: %s", resp.StatusCode, string(body))
		}
	}
	return 0, lastErr
}

// extractMeanValue walks the SoilGrids response for the first "mean" value of
// the topmost depth layer.
func extractMeanValue(v any) float64 {
	switch t := v.(type) {
	case map[string]any:
		if m, ok := t["mean"]; ok {
			if f, ok := m.(float64); ok {
				return f
			}
		}
		for _, child := range t {
			if f := extractMeanValue(child); f > 0 {
				return f
			}
		}
	case []any:
		for _, child := range t {
			if f := extractMeanValue(child); f > 0 {
				return f
			}
		}
	}
	return -1
}
