package bandplan

import (
	log "github.com/sirupsen/logrus"
)

// BandSwitcher is the part of the VFO subsystem that is needed to switch bands.
type BandSwitcher interface {
	// Band returns the current band of the given VFO.
	Band(vfo int) BandID
	// ChangeBand requests the given VFO to switch to the given band. The VFO may refuse.
	ChangeBand(vfo int, band BandID)
}

// Direction of a band step.
type Direction int

// All directions.
const (
	Down Direction = -1
	Up   Direction = 1
)

// StepBand moves the given VFO to the next assigned band in the given direction, wrapping around
// at the ends of the band table. Bands that the VFO refuses are skipped. StepBand returns the band
// the VFO is on afterwards and whether it changed. If the VFO refuses every band, it stays on its
// current band.
func (r *Registry) StepBand(vfos BandSwitcher, vfo int, direction Direction) (BandID, bool) {
	start := vfos.Band(vfo)
	b := int(start)

	for i := 0; i < BandCount; i++ {
		b = wrap(b + int(direction))
		if BandID(b) == start {
			break
		}
		if !r.bands[b].assigned {
			continue
		}

		vfos.ChangeBand(vfo, BandID(b))
		if vfos.Band(vfo) == BandID(b) {
			return BandID(b), true
		}
		log.WithField("vfo", vfo).Debugf("band %v refused", BandID(b))
	}

	return start, false
}

func wrap(b int) int {
	if b >= BandCount {
		return 0
	}
	if b < 0 {
		return BandCount - 1
	}
	return b
}
