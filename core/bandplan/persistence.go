package bandplan

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/ftl/bandkeeper/core"
)

// PropertyStore is a flat key/value store for persisted state.
type PropertyStore interface {
	Int(key string) (int64, bool)
	Float(key string) (float64, bool)
	String(key string) (string, bool)
	SetInt(key string, value int64)
	SetFloat(key string, value float64)
	SetString(key string, value string)
}

const regionKey = "region"

func bandKey(b BandID, field string) string {
	return fmt.Sprintf("band.%d.%s", int(b), field)
}

func entryKey(b BandID, slot int, field string) string {
	return fmt.Sprintf("band.%d.stack.%d.%s", int(b), slot, field)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// SaveState writes the region and the state of all assigned bands into the given store.
func (r *Registry) SaveState(store PropertyStore) {
	store.SetInt(regionKey, int64(r.region))

	saved := 0
	for i := range r.bands {
		band := &r.bands[i]
		if !band.assigned {
			continue
		}
		id := band.ID

		if id.IsTransverter() {
			store.SetInt(bandKey(id, "frequencyLO"), int64(band.LO))
			store.SetInt(bandKey(id, "errorLO"), int64(band.LOError))
			store.SetInt(bandKey(id, "gain"), int64(band.Gain))
		}

		store.SetString(bandKey(id, "title"), band.Title)

		if id > lastFixedRangeBand {
			store.SetInt(bandKey(id, "frequencyMin"), int64(band.From))
			store.SetInt(bandKey(id, "frequencyMax"), int64(band.To))
		}

		store.SetInt(bandKey(id, "disablePA"), boolToInt(band.DisablePA))
		store.SetInt(bandKey(id, "current"), int64(band.Bandstack.CurrentIndex()))
		store.SetInt(bandKey(id, "alexRxAntenna"), int64(band.RXAntenna))
		store.SetInt(bandKey(id, "alexTxAntenna"), int64(band.TXAntenna))
		store.SetInt(bandKey(id, "alexAttenuation"), int64(band.Attenuation))
		store.SetFloat(bandKey(id, "pa_calibration"), band.PACalibration)
		store.SetInt(bandKey(id, "OCrx"), int64(band.OCrx))
		store.SetInt(bandKey(id, "OCtx"), int64(band.OCtx))

		for slot, entry := range band.Bandstack.Entries() {
			store.SetInt(entryKey(id, slot, "a"), int64(entry.Frequency))
			store.SetInt(entryKey(id, slot, "mode"), int64(entry.Mode))
			store.SetInt(entryKey(id, slot, "filter"), int64(entry.Filter))
			store.SetInt(entryKey(id, slot, "ctun"), boolToInt(entry.CTUN))
			store.SetInt(entryKey(id, slot, "c"), int64(entry.CTUNFrequency))
			store.SetInt(entryKey(id, slot, "deviation"), int64(entry.Deviation))
			store.SetInt(entryKey(id, slot, "ctcss_enabled"), boolToInt(entry.CTCSSEnabled))
			store.SetInt(entryKey(id, slot, "ctcss"), int64(entry.CTCSS))
		}
		saved++
	}

	log.Infof("saved state of %d bands, region %v", saved, r.region)
}

// RestoreState reads the region and the band state from the given store. Missing keys leave the
// current values untouched. Titles are only restored for transverter slots, frequency ranges only
// for bands above 10m. Out-of-range values are clamped to safe defaults afterwards.
func (r *Registry) RestoreState(store PropertyStore) {
	if value, ok := store.Int(regionKey); ok {
		r.ChangeRegion(Region(value))
	}

	for i := range r.bands {
		band := &r.bands[i]
		id := band.ID

		if id.IsTransverter() {
			if title, ok := store.String(bandKey(id, "title")); ok {
				band.setTitle(title)
			}
			restoreFrequency(store, bandKey(id, "frequencyLO"), &band.LO)
			restoreFrequency(store, bandKey(id, "errorLO"), &band.LOError)
			restoreInt(store, bandKey(id, "gain"), &band.Gain)
		}

		if id > lastFixedRangeBand {
			restoreFrequency(store, bandKey(id, "frequencyMin"), &band.From)
			restoreFrequency(store, bandKey(id, "frequencyMax"), &band.To)
		}

		restoreBool(store, bandKey(id, "disablePA"), &band.DisablePA)
		current := band.Bandstack.CurrentIndex()
		if restoreInt(store, bandKey(id, "current"), &current) {
			band.Bandstack.SetCurrentIndex(current)
		}
		restoreInt(store, bandKey(id, "alexRxAntenna"), &band.RXAntenna)
		restoreInt(store, bandKey(id, "alexTxAntenna"), &band.TXAntenna)
		restoreInt(store, bandKey(id, "alexAttenuation"), &band.Attenuation)
		if value, ok := store.Float(bandKey(id, "pa_calibration")); ok {
			band.PACalibration = value
		}
		restoreInt(store, bandKey(id, "OCrx"), &band.OCrx)
		restoreInt(store, bandKey(id, "OCtx"), &band.OCtx)

		entries := band.Bandstack.Entries()
		for slot := range entries {
			entry := &entries[slot]
			restoreFrequency(store, entryKey(id, slot, "a"), &entry.Frequency)
			restoreMode(store, entryKey(id, slot, "mode"), &entry.Mode)
			restoreFilter(store, entryKey(id, slot, "filter"), &entry.Filter)
			restoreBool(store, entryKey(id, slot, "ctun"), &entry.CTUN)
			restoreFrequency(store, entryKey(id, slot, "c"), &entry.CTUNFrequency)
			restoreInt(store, entryKey(id, slot, "deviation"), &entry.Deviation)
			restoreBool(store, entryKey(id, slot, "ctcss_enabled"), &entry.CTCSSEnabled)
			restoreInt(store, entryKey(id, slot, "ctcss"), &entry.CTCSS)
		}
	}

	r.sanitize()
	log.Infof("restored state of %d bands, region %v", len(r.Assigned()), r.region)
}

func (r *Registry) sanitize() {
	for i := range r.bands {
		band := &r.bands[i]
		logger := log.WithField("band", band.ID)

		if band.Bandstack.Sanitize() {
			logger.Debug("current entry out of range, reset to 0")
		}

		if band.TXAntenna < 0 || band.TXAntenna > 2 {
			logger.Debugf("TX antenna %d out of range, reset to 0", band.TXAntenna)
			band.TXAntenna = 0
		}

		if math.IsNaN(band.PACalibration) || band.PACalibration < MinPACalibration {
			logger.Debugf("PA calibration %.1f too low", band.PACalibration)
			band.PACalibration = MinPACalibration
		}
		if band.PACalibration > MaxPACalibration {
			logger.Debugf("PA calibration %.1f too high", band.PACalibration)
			band.PACalibration = MaxPACalibration
		}
	}
}

func restoreInt(store PropertyStore, key string, target *int) bool {
	value, ok := store.Int(key)
	if ok {
		*target = int(value)
	}
	return ok
}

func restoreBool(store PropertyStore, key string, target *bool) {
	if value, ok := store.Int(key); ok {
		*target = value != 0
	}
}

func restoreFrequency(store PropertyStore, key string, target *core.Frequency) {
	if value, ok := store.Int(key); ok {
		*target = core.Frequency(value)
	}
}

func restoreMode(store PropertyStore, key string, target *core.Mode) {
	if value, ok := store.Int(key); ok {
		*target = core.Mode(value)
	}
}

func restoreFilter(store PropertyStore, key string, target *core.Filter) {
	if value, ok := store.Int(key); ok {
		*target = core.Filter(value)
	}
}
