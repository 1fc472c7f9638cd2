package fertility

import "github.com/agrilab/soilfert/internal/model/entities"

// The three correction-factor calculators are independent pure functions over
// their step tables. Lower bounds are closed: a value sitting exactly on a
// breakpoint belongs to the band above it unless that band's upper bound is
// marked inclusive (the optimal pH band closes at 7.5, EC at 2.0 and 4.0).

func lookupBand(bands []Band, v float64) Band {
	for _, b := range bands {
		if v < b.Upper || (b.UpperInclusive && v == b.Upper) {
			return b
		}
	}
	// unreachable on a validated table (last band is open-ended)
	return bands[len(bands)-1]
}

func factorFor(bands []Band, v float64) entities.CorrectionFactor {
	b := lookupBand(bands, v)
	return entities.CorrectionFactor{Value: b.Factor, Label: b.Label}
}

// PHFactor maps soil pH to its correction factor. pH is the gatekeeper:
// outside 6.0-7.5 nutrient availability drops sharply at both extremes.
func (c *Config) PHFactor(ph float64) entities.CorrectionFactor {
	return factorFor(c.PHBands, ph)
}

// ECFactor maps electrical conductivity (dS/m) to its correction factor.
// High salt creates osmotic stress that blocks nutrient uptake.
func (c *Config) ECFactor(ec float64) entities.CorrectionFactor {
	return factorFor(c.ECBands, ec)
}

// OCFactor maps organic carbon (percent of dry soil) to its correction
// factor. OC is the soil's biological battery.
func (c *Config) OCFactor(ocPercent float64) entities.CorrectionFactor {
	return factorFor(c.OCBands, ocPercent)
}
