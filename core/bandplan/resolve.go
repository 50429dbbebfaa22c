package bandplan

import (
	"github.com/ftl/bandkeeper/core"
)

// wwvFrequencies are the nominal frequencies of the standard time signal stations.
var wwvFrequencies = []core.Frequency{2500000, 5000000, 10000000, 15000000, 20000000, 25000000}

// wwvTolerance is the maximum deviation from a nominal WWV frequency that still resolves to WWV.
const wwvTolerance core.Frequency = 1000

// Resolve returns the band that contains the given frequency.
//
// Fixed bands are only searched if the radio supports the frequency. An assigned transverter band
// that contains the frequency always takes precedence over a fixed band. Without any match, the
// frequency resolves to WWV if it is close to a time signal frequency, to GEN otherwise.
// An assigned transverter with the [0,0] range matches 0Hz.
func (r *Registry) Resolve(f core.Frequency) BandID {
	found := BandID(-1)

	if r.radio.Supports(f) {
		for i := 0; i < Bands; i++ {
			band := &r.bands[i]
			if band.assigned && band.Contains(f) {
				found = band.ID
				break
			}
		}
	}

	for i := Bands; i < BandCount; i++ {
		band := &r.bands[i]
		if band.assigned && band.Contains(f) {
			found = band.ID
			break
		}
	}

	if found >= 0 {
		return found
	}

	for _, wwv := range wwvFrequencies {
		if (f - wwv).Abs() <= wwvTolerance {
			return BandWWV
		}
	}
	return BandGEN
}
