package app

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/bandplan"
	"github.com/ftl/bandkeeper/core/props"
	"github.com/ftl/bandkeeper/core/vfo"
)

// Store keeps the persisted state between sessions.
type Store interface {
	bandplan.PropertyStore
	Clear()
	Save() error
}

// Rig is a transceiver that follows VFO A and reports its frequency.
type Rig interface {
	vfo.Rig
	rigPoller
	Close()
}

// NewController returns a new controller for the given configuration.
func NewController(configuration core.Configuration) *Controller {
	return &Controller{
		configuration: configuration,
		pollInterval:  500 * time.Millisecond,
		openStore:     openStore,
		openRig:       openRig,
	}
}

// Controller for the application. All commands are executed one after the other in the main loop.
type Controller struct {
	configuration core.Configuration
	pollInterval  time.Duration
	openStore     func(filename string) (Store, error)
	openRig       func(address string) (Rig, error)

	done         chan struct{}
	subProcesses *sync.WaitGroup
	loop         *mainLoop

	store    Store
	rig      Rig
	registry *bandplan.Registry
	vfos     *vfo.VFOs
	mox      bool
}

func openStore(filename string) (Store, error) {
	if filename == "" {
		return inMemoryStore{props.New()}, nil
	}
	store, err := props.Open(filename)
	if err != nil {
		return nil, err
	}
	return store, nil
}

type inMemoryStore struct {
	*props.Store
}

func (s inMemoryStore) Save() error {
	return nil
}

func openRig(address string) (Rig, error) {
	rig, err := vfo.OpenHamlib(address)
	if err != nil {
		return nil, err
	}
	return rig, nil
}

// Startup the application: restore the persisted state and connect to the rig, if configured.
func (c *Controller) Startup() error {
	var err error
	c.store, err = c.openStore(c.configuration.PropsFile)
	if err != nil {
		return errors.Wrap(err, "cannot open state")
	}

	var rig vfo.Rig
	var poller rigPoller
	if c.configuration.RigHost != "" {
		c.rig, err = c.openRig(c.configuration.RigHost)
		if err != nil {
			return err
		}
		rig = c.rig
		poller = c.rig
	}

	c.registry = bandplan.New(c.configuration.Radio)
	c.vfos = vfo.New(c.registry, rig)
	c.vfos.OnStateChange(func(id int, state vfo.State) {
		log.WithField("vfo", id).Debugf("%v", state)
	})

	c.registry.RestoreState(c.store)
	c.vfos.RestoreState(c.store)
	if err := c.registry.CheckInvariants(); err != nil {
		log.WithError(err).Warn("band table is inconsistent")
	}

	c.done = make(chan struct{})
	c.subProcesses = new(sync.WaitGroup)
	c.loop = newMainLoop(poller, c.vfos, c.pollInterval)

	c.subProcesses.Add(1)
	go func() {
		defer c.subProcesses.Done()
		c.loop.Run(c.done)
	}()

	return nil
}

// Shutdown the application and save the state.
func (c *Controller) Shutdown() error {
	close(c.done)
	c.subProcesses.Wait()

	if c.rig != nil {
		c.rig.Close()
	}

	c.vfos.StoreEntry(vfo.A)
	c.store.Clear()
	c.registry.SaveState(c.store)
	c.vfos.SaveState(c.store)
	if err := c.store.Save(); err != nil {
		return errors.Wrap(err, "cannot save state")
	}
	return nil
}

// BandUp moves VFO A to the next band.
func (c *Controller) BandUp() (bandplan.BandID, bool) {
	return c.stepBand(bandplan.Up)
}

// BandDown moves VFO A to the previous band.
func (c *Controller) BandDown() (bandplan.BandID, bool) {
	return c.stepBand(bandplan.Down)
}

func (c *Controller) stepBand(direction bandplan.Direction) (result bandplan.BandID, changed bool) {
	c.loop.do(func() {
		result, changed = c.registry.StepBand(c.vfos, vfo.A, direction)
	})
	return result, changed
}

// SelectBand moves VFO A to the given band. Selecting the current band again cycles through its
// bandstack. SelectBand reports false if the band was refused.
func (c *Controller) SelectBand(id bandplan.BandID) (accepted bool) {
	c.loop.do(func() {
		c.vfos.ChangeBand(vfo.A, id)
		accepted = c.vfos.Band(vfo.A) == id
	})
	return accepted
}

// Tune VFO A to the given frequency and return the band it is on afterwards.
func (c *Controller) Tune(f core.Frequency) (result bandplan.BandID) {
	c.loop.do(func() {
		c.vfos.TuneTo(vfo.A, f)
		result = c.vfos.Band(vfo.A)
	})
	return result
}

// SetMode sets the mode of VFO A.
func (c *Controller) SetMode(mode core.Mode) {
	c.loop.do(func() {
		c.vfos.SetMode(vfo.A, mode)
	})
}

// SetSplit enables or disables transmitting on VFO B.
func (c *Controller) SetSplit(split bool) {
	c.loop.do(func() {
		c.vfos.SetSplit(split)
	})
}

// VFO returns the state of the given VFO.
func (c *Controller) VFO(id int) (result vfo.State) {
	c.loop.do(func() {
		result = c.vfos.State(id)
	})
	return result
}

// Region returns the active 60m region.
func (c *Controller) Region() (result bandplan.Region) {
	c.loop.do(func() {
		result = c.registry.Region()
	})
	return result
}

// Channels returns the 60m channels of the active region.
func (c *Controller) Channels() (result []bandplan.Channel) {
	c.loop.do(func() {
		result = c.registry.Channels()
	})
	return result
}

// SetRegion switches the 60m bandstack to the given region. A VFO on 60m moves to the first
// entry of the new region.
func (c *Controller) SetRegion(region bandplan.Region) error {
	if !region.Valid() {
		return errors.Errorf("unknown region %d", int(region))
	}
	c.loop.do(func() {
		if c.vfos.Band(vfo.A) == bandplan.Band60m {
			c.vfos.StoreEntry(vfo.A)
		}
		c.registry.ChangeRegion(region)
		if c.vfos.Band(vfo.A) == bandplan.Band60m {
			c.vfos.Reload(vfo.A)
		}
	})
	return nil
}

// Resolve returns the band that contains the given frequency.
func (c *Controller) Resolve(f core.Frequency) (result bandplan.BandID) {
	c.loop.do(func() {
		result = c.registry.Resolve(f)
	})
	return result
}

// FrequencyInfo returns the title of the band that contains a transmission on the given
// frequency in the given mode.
func (c *Controller) FrequencyInfo(f core.Frequency, mode core.Mode) (result string) {
	span := bandplan.TXSpan(f, mode, c.configuration.Transmitter)
	c.loop.do(func() {
		result = c.registry.FrequencyInfo(f, span.From-f, span.To-f)
	})
	return result
}

// BandInfo describes one band for presentation.
type BandInfo struct {
	ID           bandplan.BandID
	Title        string
	Range        core.FrequencyRange
	Assigned     bool
	Current      int
	Entries      int
	CurrentEntry string
	LO           core.Frequency
}

// Bands returns the description of all bands in table order.
func (c *Controller) Bands() (result []BandInfo) {
	c.loop.do(func() {
		for _, id := range c.registry.IDs() {
			band := c.registry.Band(id)
			info := BandInfo{
				ID:       id,
				Title:    band.Title,
				Range:    band.FrequencyRange,
				Assigned: band.Assigned(),
				Current:  band.Bandstack.CurrentIndex(),
				Entries:  band.Bandstack.Len(),
				LO:       band.LO,
			}
			if entry := band.Bandstack.Current(); entry != nil {
				info.CurrentEntry = entry.String()
			}
			result = append(result, info)
		}
	})
	return result
}

// TransmitAllowed indicates if the TX VFO may transmit with its current settings.
func (c *Controller) TransmitAllowed() (result bool) {
	c.loop.do(func() {
		result = c.registry.TransmitAllowed(c.vfos, c.configuration.Transmitter)
	})
	return result
}

// Key requests MOX. The request is refused if transmitting is not allowed.
func (c *Controller) Key() bool {
	allowed := c.TransmitAllowed()
	logger := log.WithField("frequency", c.VFO(c.txVFO()).TuningFrequency())
	if !allowed {
		logger.Warn("out of band")
		return false
	}

	c.loop.do(func() {
		c.mox = true
	})
	logger.Info("MOX on")
	return true
}

// Unkey releases MOX.
func (c *Controller) Unkey() {
	c.loop.do(func() {
		c.mox = false
	})
}

// MOX indicates if the transmitter is keyed.
func (c *Controller) MOX() (result bool) {
	c.loop.do(func() {
		result = c.mox
	})
	return result
}

func (c *Controller) txVFO() (result int) {
	c.loop.do(func() {
		result = c.vfos.TXVFO()
	})
	return result
}

// AssignTransverter configures the given transverter slot.
func (c *Controller) AssignTransverter(slot int, setup bandplan.TransverterSetup) error {
	if slot < 0 || slot >= bandplan.Transverters {
		return errors.Errorf("transverter slot %d out of range [0,%d)", slot, bandplan.Transverters)
	}
	if setup.Title == "" {
		return errors.New("transverter title must not be empty")
	}
	if !setup.Range.Valid() {
		return errors.Errorf("invalid transverter range %v", setup.Range)
	}
	c.loop.do(func() {
		c.registry.AssignTransverter(slot, setup)
	})
	return nil
}

// ReleaseTransverter returns the given transverter slot to the unassigned state. A VFO on this
// transverter moves to the band of its frequency.
func (c *Controller) ReleaseTransverter(slot int) error {
	if slot < 0 || slot >= bandplan.Transverters {
		return errors.Errorf("transverter slot %d out of range [0,%d)", slot, bandplan.Transverters)
	}
	c.loop.do(func() {
		c.registry.ReleaseTransverter(slot)
		for _, id := range []int{vfo.A, vfo.B} {
			if c.vfos.Band(id) == bandplan.Transverter(slot) {
				c.vfos.TuneTo(id, c.vfos.State(id).Frequency)
			}
		}
	})
	return nil
}

// ApplyN2ADR sets the OC outputs for the N2ADR filter board.
func (c *Controller) ApplyN2ADR(txOnly, hpf bool) {
	c.loop.do(func() {
		c.registry.ApplyN2ADR(txOnly, hpf)
	})
}
