package vfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/bandplan"
)

// The VFOs.
const (
	A = iota
	B
	count
)

// Rig is a transceiver that follows VFO A.
type Rig interface {
	SetFrequency(ctx context.Context, f core.Frequency) error
	SetMode(ctx context.Context, mode core.Mode) error
}

// Bands gives access to the band table.
type Bands interface {
	Band(id bandplan.BandID) *bandplan.Band
	Resolve(f core.Frequency) bandplan.BandID
	Radio() core.Radio
}

// State of one VFO.
type State struct {
	Band          bandplan.BandID
	Frequency     core.Frequency
	CTUN          bool
	CTUNFrequency core.Frequency
	Mode          core.Mode
	Filter        core.Filter
	Deviation     int
}

// TuningFrequency is the frequency the VFO listens and transmits on. With CTUN, this is the
// CTUN frequency.
func (s State) TuningFrequency() core.Frequency {
	if s.CTUN {
		return s.CTUNFrequency
	}
	return s.Frequency
}

func (s State) String() string {
	return fmt.Sprintf("%v %s %v %v", s.Band, s.TuningFrequency().MHz(), s.Mode, s.Filter)
}

// StateChanged is called when the state of a VFO changes.
type StateChanged func(vfo int, state State)

// VFOs holds the state of VFO A and B. It is not safe for concurrent use.
type VFOs struct {
	bands                 Bands
	rig                   Rig
	rigTimeout            time.Duration
	vfos                  [count]State
	split                 bool
	stateChangedCallbacks []StateChanged
}

// New returns both VFOs on the current entry of 20m. The rig is optional.
func New(bands Bands, rig Rig) *VFOs {
	result := &VFOs{
		bands:      bands,
		rig:        rig,
		rigTimeout: 2 * time.Second,
	}
	for vfo := range result.vfos {
		result.load(vfo, bandplan.Band20m)
	}
	return result
}

// OnStateChange registers the given callback to be notified if the state of a VFO changes.
func (v *VFOs) OnStateChange(f StateChanged) {
	v.stateChangedCallbacks = append(v.stateChangedCallbacks, f)
}

// State returns the state of the given VFO.
func (v *VFOs) State(vfo int) State {
	return v.vfos[vfo]
}

// Band returns the current band of the given VFO.
func (v *VFOs) Band(vfo int) bandplan.BandID {
	return v.vfos[vfo].Band
}

// Split indicates if VFO B is used for transmitting.
func (v *VFOs) Split() bool {
	return v.split
}

// SetSplit enables or disables split operation.
func (v *VFOs) SetSplit(split bool) {
	v.split = split
}

// TXVFO returns the VFO used for transmitting.
func (v *VFOs) TXVFO() int {
	if v.split {
		return B
	}
	return A
}

// TXFrequency returns the transmit frequency.
func (v *VFOs) TXFrequency() core.Frequency {
	return v.vfos[v.TXVFO()].TuningFrequency()
}

// TXMode returns the transmit mode.
func (v *VFOs) TXMode() core.Mode {
	return v.vfos[v.TXVFO()].Mode
}

// Supports indicates if the given band can be selected with this radio. Transverter bands and
// bands without a range are always supported, fixed bands only if the radio covers their lower edge.
func (v *VFOs) Supports(id bandplan.BandID) bool {
	band := v.bands.Band(id)
	if band.Transverter() || !band.HasRange() {
		return true
	}
	return v.bands.Radio().Supports(band.From)
}

// ChangeBand moves the given VFO to the current entry of the given band. If the VFO is already on
// this band, the next entry of the bandstack becomes current. Unassigned bands and bands that the
// radio does not support are refused.
func (v *VFOs) ChangeBand(vfo int, id bandplan.BandID) {
	band := v.bands.Band(id)
	logger := log.WithField("vfo", vfo)
	if !band.Assigned() {
		logger.Infof("band %v is not assigned", id)
		return
	}
	if !v.Supports(id) {
		logger.Infof("band %v is not supported by the radio", id)
		return
	}

	v.StoreEntry(vfo)
	if v.vfos[vfo].Band == id {
		band.Bandstack.Next()
	}
	v.load(vfo, id)
	v.apply(vfo)
}

// Reload moves the given VFO to the current entry of its band without storing its state before.
func (v *VFOs) Reload(vfo int) {
	v.load(vfo, v.vfos[vfo].Band)
	v.apply(vfo)
}

// StoreEntry writes the state of the given VFO into the current entry of its band.
func (v *VFOs) StoreEntry(vfo int) {
	state := v.vfos[vfo]
	entry := v.bands.Band(state.Band).Bandstack.Current()
	if entry == nil {
		return
	}
	entry.Frequency = state.Frequency
	entry.CTUN = state.CTUN
	entry.CTUNFrequency = state.CTUNFrequency
	entry.Mode = state.Mode
	entry.Filter = state.Filter
	entry.Deviation = state.Deviation
}

func (v *VFOs) load(vfo int, id bandplan.BandID) {
	band := v.bands.Band(id)
	state := &v.vfos[vfo]
	state.Band = id

	entry := band.Bandstack.Current()
	if entry == nil {
		return
	}
	state.Frequency = entry.Frequency
	if band.HasRange() && !band.Contains(state.Frequency) {
		state.Frequency = band.From
	}
	state.CTUN = entry.CTUN
	state.CTUNFrequency = entry.CTUNFrequency
	state.Mode = entry.Mode
	state.Filter = entry.Filter
	state.Deviation = entry.Deviation
}

// TuneTo tunes the given VFO to the given frequency. The band follows the frequency.
func (v *VFOs) TuneTo(vfo int, f core.Frequency) {
	state := &v.vfos[vfo]
	state.Frequency = f
	state.CTUN = false
	state.CTUNFrequency = 0

	id := v.bands.Resolve(f)
	if id != state.Band {
		log.WithField("vfo", vfo).Debugf("band %v -> %v", state.Band, id)
		state.Band = id
	}
	v.apply(vfo)
}

// SetMode sets the mode of the given VFO.
func (v *VFOs) SetMode(vfo int, mode core.Mode) {
	v.vfos[vfo].Mode = mode
	v.apply(vfo)
}

// SetFilter sets the filter of the given VFO.
func (v *VFOs) SetFilter(vfo int, filter core.Filter) {
	v.vfos[vfo].Filter = filter
	v.notify(vfo)
}

// FollowRig updates VFO A with the frequency the rig reports. The rig frequency is mapped through
// the LO of the current transverter band.
func (v *VFOs) FollowRig(rigFrequency core.Frequency) bool {
	state := &v.vfos[A]
	f := rigFrequency + v.lo(state.Band)
	if f == state.TuningFrequency() {
		return false
	}

	state.Frequency = f
	state.CTUN = false
	state.CTUNFrequency = 0
	state.Band = v.bands.Resolve(f)
	v.notify(A)
	return true
}

func (v *VFOs) lo(id bandplan.BandID) core.Frequency {
	band := v.bands.Band(id)
	if !band.Transverter() {
		return 0
	}
	return band.LO + band.LOError
}

// RigFrequency is the frequency the rig needs to be tuned to for the given VFO.
func (v *VFOs) RigFrequency(vfo int) core.Frequency {
	state := v.vfos[vfo]
	return state.TuningFrequency() - v.lo(state.Band)
}

func (v *VFOs) apply(vfo int) {
	v.notify(vfo)
	if v.rig == nil || vfo != A {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), v.rigTimeout)
	defer cancel()

	logger := log.WithField("vfo", vfo)
	if err := v.rig.SetFrequency(ctx, v.RigFrequency(vfo)); err != nil {
		logger.WithError(err).Warn("cannot tune rig")
		return
	}
	if err := v.rig.SetMode(ctx, v.vfos[vfo].Mode); err != nil {
		logger.WithError(err).Warn("cannot set rig mode")
	}
}

func (v *VFOs) notify(vfo int) {
	for _, stateChanged := range v.stateChangedCallbacks {
		stateChanged(vfo, v.vfos[vfo])
	}
}

func vfoKey(vfo int, field string) string {
	return fmt.Sprintf("vfo.%d.%s", vfo, field)
}

const splitKey = "vfo.split"

// SaveState writes the state of both VFOs into the given store.
func (v *VFOs) SaveState(store bandplan.PropertyStore) {
	for vfo, state := range v.vfos {
		store.SetInt(vfoKey(vfo, "band"), int64(state.Band))
		store.SetInt(vfoKey(vfo, "frequency"), int64(state.Frequency))
		store.SetInt(vfoKey(vfo, "ctun"), boolToInt(state.CTUN))
		store.SetInt(vfoKey(vfo, "ctun_frequency"), int64(state.CTUNFrequency))
		store.SetInt(vfoKey(vfo, "mode"), int64(state.Mode))
		store.SetInt(vfoKey(vfo, "filter"), int64(state.Filter))
		store.SetInt(vfoKey(vfo, "deviation"), int64(state.Deviation))
	}
	store.SetInt(splitKey, boolToInt(v.split))
}

// RestoreState reads the state of both VFOs from the given store. A VFO whose stored band is
// invalid or unassigned keeps its state.
func (v *VFOs) RestoreState(store bandplan.PropertyStore) {
	for vfo := range v.vfos {
		value, ok := store.Int(vfoKey(vfo, "band"))
		if !ok {
			continue
		}
		id := bandplan.BandID(value)
		if !id.Valid() || !v.bands.Band(id).Assigned() {
			log.WithField("vfo", vfo).Warnf("ignoring stored band %d", value)
			continue
		}

		state := &v.vfos[vfo]
		state.Band = id
		if value, ok := store.Int(vfoKey(vfo, "frequency")); ok {
			state.Frequency = core.Frequency(value)
		}
		if value, ok := store.Int(vfoKey(vfo, "ctun")); ok {
			state.CTUN = value != 0
		}
		if value, ok := store.Int(vfoKey(vfo, "ctun_frequency")); ok {
			state.CTUNFrequency = core.Frequency(value)
		}
		if value, ok := store.Int(vfoKey(vfo, "mode")); ok {
			state.Mode = core.Mode(value)
		}
		if value, ok := store.Int(vfoKey(vfo, "filter")); ok {
			state.Filter = core.Filter(value)
		}
		if value, ok := store.Int(vfoKey(vfo, "deviation")); ok {
			state.Deviation = int(value)
		}
	}
	if value, ok := store.Int(splitKey); ok {
		v.split = value != 0
	}
	v.apply(A)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
