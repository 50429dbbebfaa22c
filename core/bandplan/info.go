package bandplan

import (
	"github.com/ftl/bandkeeper/core"
)

// OutOfBand is the frequency info of a signal that is not within any band.
const OutOfBand = "Out of band"

// FrequencyInfo returns the title of the first band that contains the passband [f+low, f+high].
// On 60m, the passband must also lie within one of the channels of the active region.
func (r *Registry) FrequencyInfo(f, low, high core.Frequency) string {
	span := core.FrequencyRange{From: f + low, To: f + high}

	for i := range r.bands {
		band := &r.bands[i]
		if !band.assigned || !band.ContainsRange(span) {
			continue
		}
		if band.ID != Band60m {
			return band.Title
		}
		for _, channel := range r.Channels() {
			if channel.Range().ContainsRange(span) {
				return band.Title
			}
		}
	}

	return OutOfBand
}
