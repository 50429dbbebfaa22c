package bandplan

import (
	log "github.com/sirupsen/logrus"

	"github.com/ftl/bandkeeper/core"
)

// TXState is the part of the VFO subsystem that describes the transmit VFO.
type TXState interface {
	// TXVFO returns the ID of the VFO used for transmitting.
	TXVFO() int
	// Band returns the current band of the given VFO.
	Band(vfo int) BandID
	// TXFrequency returns the transmit frequency.
	TXFrequency() core.Frequency
	// TXMode returns the transmit mode.
	TXMode() core.Mode
}

// TXSpan returns the spectrum occupied by a transmission on the given carrier frequency.
// CW occupies only the carrier, all other modes the TX filter passband.
func TXSpan(f core.Frequency, mode core.Mode, tx core.Transmitter) core.FrequencyRange {
	if mode.IsCW() {
		return core.FrequencyRange{From: f, To: f}
	}
	return core.FrequencyRange{From: f + tx.FilterLow, To: f + tx.FilterHigh}
}

// TransmitAllowed indicates if the transmit VFO may transmit with its current settings. The
// occupied spectrum must lie completely within the band of the transmit VFO. Transmitting on
// GEN, WWV, and AIR is never allowed unless out-of-band transmitting is enabled. Without a
// transmitter, nothing is allowed.
func (r *Registry) TransmitAllowed(vfos TXState, tx core.Transmitter) bool {
	if !tx.Enabled {
		return false
	}
	if tx.OutOfBandAllowed {
		return true
	}

	id := vfos.Band(vfos.TXVFO())
	switch id {
	case BandGEN, BandWWV, BandAIR:
		return false
	}

	band := r.Band(id)
	span := TXSpan(vfos.TXFrequency(), vfos.TXMode(), tx)
	result := band.ContainsRange(span)

	log.WithField("band", id).Debugf("TX span %v allowed: %t", span, result)
	return result
}
