package fertility

import (
	"sort"

	"github.com/agrilab/soilfert/internal/model/entities"
)

// Recommendation generation is a deterministic lookup: every template below is
// fixed text keyed by factor and severity bucket, so identical inputs always
// produce byte-identical output. Exactly one primary recommendation targets
// the limiting factor; secondary recommendations cover every other factor or
// nutrient sitting below its own healthy range, ordered most severe first.

// Critical limits for the optional micronutrients, mg/kg. Values below these
// trigger the extended recommendation layer; they never enter the score.
const (
	sulfurCritical = 10.0
	zincCritical   = 0.6
	ironCritical   = 4.5
	boronCritical  = 0.5
)

func (e *Engine) recommend(s entities.SoilSample, ocPct float64, a *entities.FertilityAssessment) []entities.Recommendation {
	type candidate struct {
		factor   entities.LimitingFactor
		severity float64 // 1 - correction factor
		priority int     // tie order: pH before EC before OC
		rec      entities.Recommendation
	}
	var cands []candidate
	if rec, ok := phRemedy(s.PH); ok {
		cands = append(cands, candidate{entities.LimitingPH, 1 - a.PHFactor.Value, 0, rec})
	}
	if rec, ok := ecRemedy(s.EC); ok {
		cands = append(cands, candidate{entities.LimitingEC, 1 - a.ECFactor.Value, 1, rec})
	}
	if rec, ok := ocRemedy(ocPct); ok {
		cands = append(cands, candidate{entities.LimitingOC, 1 - a.OCFactor.Value, 2, rec})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].severity != cands[j].severity {
			return cands[i].severity > cands[j].severity
		}
		return cands[i].priority < cands[j].priority
	})

	var out []entities.Recommendation
	for _, c := range cands {
		out = append(out, c.rec)
	}

	// Extended layer: nutrient deficiencies, then micronutrients.
	out = append(out, nutrientRemedies(a)...)
	if s.Micro != nil {
		out = append(out, microRemedies(s.Micro)...)
	}
	return out
}

func phRemedy(ph float64) (entities.Recommendation, bool) {
	switch {
	case ph < 5.5:
		return entities.Recommendation{
			Action:  "Apply agricultural lime",
			Product: "Calcitic/dolomitic lime",
			Rate:    entities.RateRange{Min: 2, Max: 5, Unit: "t/acre"},
			Impact:  "Raises pH toward the optimal band, supplies calcium and counters aluminum/manganese toxicity",
		}, true
	case ph < 6.0:
		return entities.Recommendation{
			Action:  "Apply agricultural lime",
			Product: "Calcitic/dolomitic lime",
			Rate:    entities.RateRange{Min: 1, Max: 2, Unit: "t/acre"},
			Impact:  "Nudges pH into the 6.0-7.5 optimal band and frees tied-up nutrients",
		}, true
	case ph <= 7.5:
		return entities.Recommendation{}, false
	case ph <= 8.5:
		return entities.Recommendation{
			Action:  "Apply elemental sulfur",
			Product: "Elemental sulfur",
			Rate:    entities.RateRange{Min: 100, Max: 300, Unit: "kg/acre"},
			Impact:  "Gradually lowers pH and improves micronutrient availability",
		}, true
	default:
		return entities.Recommendation{
			Action:  "Apply elemental sulfur",
			Product: "Elemental sulfur",
			Rate:    entities.RateRange{Min: 300, Max: 500, Unit: "kg/acre"},
			Impact:  "Lowers pH from the highly alkaline range, countering iron lockup and boron toxicity risk",
		}, true
	}
}

func ecRemedy(ec float64) (entities.Recommendation, bool) {
	switch {
	case ec <= 2.0:
		return entities.Recommendation{}, false
	case ec <= 4.0:
		return entities.Recommendation{
			Action:  "Apply gypsum",
			Product: "Gypsum (calcium sulfate)",
			Rate:    entities.RateRange{Min: 0.5, Max: 1, Unit: "t/acre"},
			Impact:  "Displaces sodium, improves structure and relieves moderate salt stress",
		}, true
	default:
		return entities.Recommendation{
			Action:  "Apply gypsum and leach",
			Product: "Gypsum (calcium sulfate)",
			Rate:    entities.RateRange{Min: 1, Max: 2, Unit: "t/acre"},
			Impact:  "Combined with leaching irrigation, flushes salts below the root zone to relieve severe osmotic stress",
		}, true
	}
}

func ocRemedy(ocPct float64) (entities.Recommendation, bool) {
	switch {
	case ocPct < 0.5:
		return entities.Recommendation{
			Action:  "Incorporate organic matter",
			Product: "Compost/vermicompost",
			Rate:    entities.RateRange{Min: 2, Max: 3, Unit: "t/acre"},
			Impact:  "Rebuilds the biological reservoir of an exhausted soil and restarts nutrient cycling",
		}, true
	case ocPct < 0.75:
		return entities.Recommendation{
			Action:  "Incorporate organic matter",
			Product: "Compost/vermicompost",
			Rate:    entities.RateRange{Min: 1, Max: 2, Unit: "t/acre"},
			Impact:  "Lifts organic carbon into the healthy reservoir range and sustains microbial activity",
		}, true
	default:
		return entities.Recommendation{}, false
	}
}

func nutrientRemedies(a *entities.FertilityAssessment) []entities.Recommendation {
	var out []entities.Recommendation
	if a.Nitrogen.Level == entities.NutrientDeficient {
		out = append(out, entities.Recommendation{
			Action:  "Inoculate with nitrogen-fixing biofertilizer",
			Product: "Rhizobium/Azotobacter inoculant",
			Rate:    entities.RateRange{Min: 2, Max: 4, Unit: "kg/acre"},
			Impact:  "Restores nitrogen supply through biological fixation",
		})
	}
	if a.Phosphorus.Level == entities.NutrientDeficient {
		out = append(out, entities.Recommendation{
			Action:  "Inoculate with phosphate-solubilizing bacteria",
			Product: "PSB inoculant",
			Rate:    entities.RateRange{Min: 2, Max: 4, Unit: "kg/acre"},
			Impact:  "Unlocks phosphorus already bound in the soil",
		})
	}
	if a.Potassium.Level == entities.NutrientDeficient {
		out = append(out, entities.Recommendation{
			Action:  "Apply potassium amendment",
			Product: "Sulphate of potash",
			Rate:    entities.RateRange{Min: 40, Max: 80, Unit: "kg/acre"},
			Impact:  "Replenishes exchangeable potassium",
		})
	}
	return out
}

func microRemedies(m *entities.Micronutrients) []entities.Recommendation {
	var out []entities.Recommendation
	if m.Sulfur != nil && *m.Sulfur < sulfurCritical {
		out = append(out, entities.Recommendation{
			Action:  "Correct sulfur deficiency",
			Product: "Gypsum (calcium sulfate)",
			Rate:    entities.RateRange{Min: 100, Max: 200, Unit: "kg/acre"},
			Impact:  "Supplies sulfate sulfur for protein synthesis",
		})
	}
	if m.Zinc != nil && *m.Zinc < zincCritical {
		out = append(out, entities.Recommendation{
			Action:  "Correct zinc deficiency",
			Product: "Zinc sulfate",
			Rate:    entities.RateRange{Min: 10, Max: 25, Unit: "kg/acre"},
			Impact:  "Restores zinc for enzyme activation and early growth",
		})
	}
	if m.Iron != nil && *m.Iron < ironCritical {
		out = append(out, entities.Recommendation{
			Action:  "Correct iron deficiency",
			Product: "Ferrous sulfate (foliar)",
			Rate:    entities.RateRange{Min: 5, Max: 10, Unit: "kg/acre"},
			Impact:  "Relieves chlorosis by restoring available iron",
		})
	}
	if m.Boron != nil && *m.Boron < boronCritical {
		out = append(out, entities.Recommendation{
			Action:  "Correct boron deficiency",
			Product: "Borax",
			Rate:    entities.RateRange{Min: 4, Max: 8, Unit: "kg/acre"},
			Impact:  "Restores boron for cell-wall formation and fruit set",
		})
	}
	return out
}
