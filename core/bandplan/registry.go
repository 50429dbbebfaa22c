package bandplan

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/bandstack"
)

// Registry owns the band table, the bandstacks and the active 60m region of one radio.
// It is not safe for concurrent use; all calls must be serialized by the caller.
type Registry struct {
	radio    core.Radio
	bands    [BandCount]Band
	region   Region
	regional map[Region][]bandstack.Entry
}

// New returns a registry with the default band table, bound to the VFO region.
func New(radio core.Radio) *Registry {
	result := &Registry{
		radio:    radio,
		region:   RegionVFO,
		regional: make(map[Region][]bandstack.Entry, len(regionPlans)),
	}

	for region, plan := range regionPlans {
		result.regional[region] = plan.catalog.Instantiate()
	}

	for i := 0; i < Bands; i++ {
		defaults := defaultBands[i]
		entries := defaults.catalog.Instantiate()
		if BandID(i) == Band60m {
			entries = result.regional[result.region]
		}
		result.bands[i] = Band{
			FrequencyRange: core.FrequencyRange{From: defaults.from, To: defaults.to},
			ID:             BandID(i),
			Title:          defaults.title,
			Bandstack:      bandstack.New(entries, defaults.current),
			PACalibration:  defaults.paCalibration,
			assigned:       true,
		}
	}

	for slot := 0; slot < Transverters; slot++ {
		id := Transverter(slot)
		result.bands[id] = Band{
			ID:            id,
			Bandstack:     bandstack.New(catalogTransverter.Instantiate(), 0),
			PACalibration: transverterPACalibration,
		}
	}

	return result
}

// Radio returns the hardware description used for frequency resolution.
func (r *Registry) Radio() core.Radio {
	return r.radio
}

// Band returns the band record with the given ID. The ID must be valid.
func (r *Registry) Band(id BandID) *Band {
	if !id.Valid() {
		panic(fmt.Sprintf("band %d out of range [0,%d)", int(id), BandCount))
	}
	return &r.bands[id]
}

// Bandstack returns the bandstack of the band with the given ID. The ID must be valid.
func (r *Registry) Bandstack(id BandID) *bandstack.Bandstack {
	return r.Band(id).Bandstack
}

// IDs returns the IDs of all band records in table order.
func (r *Registry) IDs() []BandID {
	result := make([]BandID, BandCount)
	for i := range result {
		result[i] = BandID(i)
	}
	return result
}

// Assigned returns the IDs of all assigned bands in table order.
func (r *Registry) Assigned() []BandID {
	result := make([]BandID, 0, BandCount)
	for i := range r.bands {
		if r.bands[i].assigned {
			result = append(result, BandID(i))
		}
	}
	return result
}

// Region returns the active 60m region.
func (r *Registry) Region() Region {
	return r.region
}

// Channels returns the 60m channels of the active region.
func (r *Registry) Channels() []Channel {
	return regionPlans[r.region].channels
}

// ChangeRegion binds the 60m bandstack to the entry set of the given region and makes its first
// entry current. Unknown regions are ignored.
func (r *Registry) ChangeRegion(region Region) {
	if !region.Valid() {
		log.WithField("region", int(region)).Warn("ignoring unknown region")
		return
	}

	r.region = region
	r.bands[Band60m].Bandstack.Rebind(r.regional[region])
	log.WithField("region", region).Infof("60m bandstack switched to %d entries, %d channels", len(r.regional[region]), len(r.Channels()))
}

// TransverterSetup describes the configuration of a transverter slot.
type TransverterSetup struct {
	Title   string
	Range   core.FrequencyRange
	LO      core.Frequency
	LOError core.Frequency
	Gain    int
}

// AssignTransverter configures the given transverter slot. The title must not be empty.
func (r *Registry) AssignTransverter(slot int, setup TransverterSetup) *Band {
	if setup.Title == "" {
		panic("transverter title must not be empty")
	}
	band := r.Band(Transverter(slot))
	band.Title = setup.Title
	band.FrequencyRange = setup.Range
	band.LO = setup.LO
	band.LOError = setup.LOError
	band.Gain = setup.Gain
	band.assigned = true

	log.WithField("slot", slot).Infof("transverter %s assigned to %v, LO %v", setup.Title, setup.Range, setup.LO)
	return band
}

// ReleaseTransverter returns the given transverter slot to the unassigned state.
func (r *Registry) ReleaseTransverter(slot int) {
	band := r.Band(Transverter(slot))
	band.Title = ""
	band.FrequencyRange = core.FrequencyRange{}
	band.LO = 0
	band.LOError = 0
	band.Gain = 0
	band.assigned = false

	log.WithField("slot", slot).Info("transverter released")
}

// setTitle keeps the assignment state in sync with a restored title.
func (b *Band) setTitle(title string) {
	b.Title = title
	b.assigned = title != ""
}

// CheckInvariants verifies the structural invariants of the band table.
func (r *Registry) CheckInvariants() error {
	for i := range r.bands {
		band := &r.bands[i]
		if i < Bands && !band.assigned {
			return errors.Errorf("fixed band %v is not assigned", band.ID)
		}
		if !band.assigned {
			continue
		}
		if band.Title == "" {
			return errors.Errorf("band %v is assigned but has no title", band.ID)
		}
		if band.Bandstack == nil {
			return errors.Errorf("band %v has no bandstack", band.ID)
		}
		if !band.FrequencyRange.Valid() {
			return errors.Errorf("band %v has an inverted range %v", band.ID, band.FrequencyRange)
		}
	}
	return nil
}
