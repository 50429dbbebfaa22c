package bandplan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl/bandkeeper/core"
)

var testRadio = core.Radio{FrequencyRange: core.FrequencyRange{From: 0, To: 61440000}}

type fakeVFO struct {
	bands   map[int]BandID
	refuse  map[BandID]bool
	changes []BandID

	txVFO       int
	txFrequency core.Frequency
	txMode      core.Mode
}

func newFakeVFO(band BandID) *fakeVFO {
	return &fakeVFO{
		bands:  map[int]BandID{0: band},
		refuse: make(map[BandID]bool),
	}
}

func (v *fakeVFO) Band(vfo int) BandID {
	return v.bands[vfo]
}

func (v *fakeVFO) ChangeBand(vfo int, band BandID) {
	v.changes = append(v.changes, band)
	if v.refuse[band] {
		return
	}
	v.bands[vfo] = band
}

func (v *fakeVFO) TXVFO() int {
	return v.txVFO
}

func (v *fakeVFO) TXFrequency() core.Frequency {
	return v.txFrequency
}

func (v *fakeVFO) TXMode() core.Mode {
	return v.txMode
}

func TestNew(t *testing.T) {
	r := New(testRadio)

	require.NoError(t, r.CheckInvariants())
	assert.Len(t, r.Assigned(), Bands)
	assert.Equal(t, "20", r.Band(Band20m).Title)
	assert.Equal(t, core.FrequencyRange{From: 14000000, To: 14350000}, r.Band(Band20m).FrequencyRange)
	assert.Equal(t, 4, r.Bandstack(Band20m).Len())
	assert.Equal(t, 1, r.Bandstack(Band20m).CurrentIndex())
	assert.Equal(t, 0, r.Bandstack(Band136kHz).CurrentIndex())
	assert.Equal(t, 38.8, r.Band(Band10m).PACalibration)
	assert.Equal(t, 53.0, r.Band(Band6m).PACalibration)
	assert.False(t, r.Band(BandGEN).HasRange())

	xvtr := r.Band(Transverter(0))
	assert.False(t, xvtr.Assigned())
	assert.True(t, xvtr.Transverter())
	assert.Equal(t, 3, xvtr.Bandstack.Len())
}

func TestBand_OutOfRangePanics(t *testing.T) {
	r := New(testRadio)

	assert.Panics(t, func() { r.Band(BandID(BandCount)) })
	assert.Panics(t, func() { r.Band(BandID(-1)) })
	assert.Panics(t, func() { Transverter(Transverters) })
}

func TestRegistriesAreIndependent(t *testing.T) {
	r1 := New(testRadio)
	r2 := New(testRadio)

	r1.Bandstack(Band20m).Entry(0).Frequency = 14020000
	r1.ChangeRegion(RegionUK)

	assert.Equal(t, core.Frequency(14010000), r2.Bandstack(Band20m).Entry(0).Frequency)
	assert.Equal(t, RegionVFO, r2.Region())
	assert.Equal(t, 5, r2.Bandstack(Band60m).Len())
}

func TestParseBandID(t *testing.T) {
	tt := []struct {
		value    string
		expected BandID
		valid    bool
	}{
		{"20", Band20m, true},
		{"20m", Band20m, true},
		{"4", Band4m, true},
		{"136kHz", Band136kHz, true},
		{"air", BandAIR, true},
		{"xvtr3", Transverter(3), true},
		{"XVTR0", Transverter(0), true},
		{"xvtr10", 0, false},
		{"foo", 0, false},
	}

	for _, tc := range tt {
		t.Run(tc.value, func(t *testing.T) {
			actual, valid := ParseBandID(tc.value)
			assert.Equal(t, tc.valid, valid)
			if tc.valid {
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tt := []struct {
		desc      string
		frequency core.Frequency
		expected  BandID
	}{
		{"20m", 14200000, Band20m},
		{"lower edge of 20m", 14000000, Band20m},
		{"6m", 50100000, Band6m},
		{"WWV exact", 10000000, BandWWV},
		{"WWV within tolerance", 5000999, BandWWV},
		{"WWV below", 2499000, BandWWV},
		{"outside WWV tolerance", 10001500, BandGEN},
		{"far out of range", 3, BandGEN},
		{"between bands", 9000000, BandGEN},
		{"not supported by the radio", 144300000, BandGEN},
		{"zero range sentinel", 0, BandWWV},
	}

	r := New(testRadio)
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Resolve(tc.frequency))
		})
	}
}

func TestResolve_TransverterTakesPrecedence(t *testing.T) {
	r := New(testRadio)
	r.AssignTransverter(2, TransverterSetup{
		Title: "10m XVTR",
		Range: core.FrequencyRange{From: 28000000, To: 29700000},
	})

	assert.Equal(t, Transverter(2), r.Resolve(28500000))
	assert.Equal(t, Band10m, r.Resolve(27000000))

	r.ReleaseTransverter(2)

	assert.Equal(t, Band10m, r.Resolve(28500000))
}

func TestResolve_TransverterOutsideRadioRange(t *testing.T) {
	r := New(testRadio)
	r.AssignTransverter(0, TransverterSetup{
		Title: "2m",
		Range: core.FrequencyRange{From: 144000000, To: 146000000},
		LO:    116000000,
	})

	assert.Equal(t, Transverter(0), r.Resolve(145000000))
	assert.Equal(t, BandGEN, r.Resolve(147000000))
}

func TestResolve_ZeroRangeTransverterMatchesZero(t *testing.T) {
	r := New(testRadio)
	r.AssignTransverter(1, TransverterSetup{Title: "unconfigured"})

	assert.Equal(t, Transverter(1), r.Resolve(0))
	assert.Equal(t, BandGEN, r.Resolve(1))
}

func TestResolve_AlwaysContainsOrFallsBack(t *testing.T) {
	r := New(testRadio)
	for f := core.Frequency(0); f <= testRadio.FrequencyRange.To; f += 97531 {
		id := r.Resolve(f)
		if id == BandGEN || id == BandWWV {
			continue
		}
		assert.True(t, r.Band(id).Contains(f), "%v does not contain %v", id, f)
	}
}

func TestStepBand(t *testing.T) {
	tt := []struct {
		desc      string
		start     BandID
		direction Direction
		expected  BandID
	}{
		{"up", Band20m, Up, Band17m},
		{"down", Band20m, Down, Band30m},
		{"down wraps around", Band136kHz, Down, BandGEN},
		{"up skips unassigned transverters", BandGEN, Up, Band136kHz},
	}

	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			r := New(testRadio)
			vfo := newFakeVFO(tc.start)

			actual, changed := r.StepBand(vfo, 0, tc.direction)

			assert.True(t, changed)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.expected, vfo.Band(0))
			assert.Equal(t, []BandID{tc.expected}, vfo.changes)
		})
	}
}

func TestStepBand_AssignedTransverter(t *testing.T) {
	r := New(testRadio)
	r.AssignTransverter(3, TransverterSetup{Title: "2m", Range: core.FrequencyRange{From: 144000000, To: 146000000}})
	vfo := newFakeVFO(BandGEN)

	actual, _ := r.StepBand(vfo, 0, Up)
	assert.Equal(t, Transverter(3), actual)

	actual, _ = r.StepBand(vfo, 0, Up)
	assert.Equal(t, Band136kHz, actual)

	actual, _ = r.StepBand(vfo, 0, Down)
	assert.Equal(t, Transverter(3), actual)
}

func TestStepBand_SkipsRefusedBands(t *testing.T) {
	r := New(testRadio)
	vfo := newFakeVFO(Band20m)
	vfo.refuse[Band17m] = true
	vfo.refuse[Band15m] = true

	actual, changed := r.StepBand(vfo, 0, Up)

	assert.True(t, changed)
	assert.Equal(t, Band12m, actual)
	assert.Equal(t, []BandID{Band17m, Band15m, Band12m}, vfo.changes)
}

func TestStepBand_AllRefused(t *testing.T) {
	r := New(testRadio)
	vfo := newFakeVFO(Band20m)
	for _, id := range r.IDs() {
		vfo.refuse[id] = true
	}

	actual, changed := r.StepBand(vfo, 0, Up)

	assert.False(t, changed)
	assert.Equal(t, Band20m, actual)
	assert.Len(t, vfo.changes, Bands-1)
}

func TestStepBand_RoundTrip(t *testing.T) {
	for _, direction := range []Direction{Up, Down} {
		t.Run(fmt.Sprintf("%d", direction), func(t *testing.T) {
			r := New(testRadio)
			r.AssignTransverter(5, TransverterSetup{Title: "23cm", Range: core.FrequencyRange{From: 1296000000, To: 1298000000}})
			vfo := newFakeVFO(Band40m)
			n := len(r.Assigned())

			for i := 0; i < n; i++ {
				actual, changed := r.StepBand(vfo, 0, direction)
				require.True(t, changed)
				assert.True(t, r.Band(actual).Assigned(), "landed on unassigned band %v", actual)
			}

			assert.Equal(t, Band40m, vfo.Band(0))
		})
	}
}

func TestTXSpan(t *testing.T) {
	tx := core.Transmitter{Enabled: true, FilterLow: 300, FilterHigh: 2700}

	assert.Equal(t, core.FrequencyRange{From: 14200000, To: 14200000}, TXSpan(14200000, core.ModeCWU, tx))
	assert.Equal(t, core.FrequencyRange{From: 14200000, To: 14200000}, TXSpan(14200000, core.ModeCWL, tx))
	assert.Equal(t, core.FrequencyRange{From: 14200300, To: 14202700}, TXSpan(14200000, core.ModeUSB, tx))
}

func TestTransmitAllowed(t *testing.T) {
	usbFilter := core.Transmitter{Enabled: true, FilterLow: 300, FilterHigh: 2700}

	tt := []struct {
		desc      string
		tx        core.Transmitter
		band      BandID
		frequency core.Frequency
		mode      core.Mode
		expected  bool
	}{
		{"USB within 20m", usbFilter, Band20m, 14200000, core.ModeUSB, true},
		{"USB across the upper edge", usbFilter, Band20m, 14348000, core.ModeUSB, false},
		{"USB below the lower edge", usbFilter, Band20m, 13999000, core.ModeUSB, false},
		{"CW on the upper edge", usbFilter, Band20m, 14350000, core.ModeCWU, true},
		{"CW above the upper edge", usbFilter, Band20m, 14350001, core.ModeCWL, false},
		{"GEN", usbFilter, BandGEN, 14200000, core.ModeUSB, false},
		{"WWV", usbFilter, BandWWV, 10000000, core.ModeCWU, false},
		{"AIR", usbFilter, BandAIR, 120000000, core.ModeAM, false},
		{"no transmitter", core.Transmitter{}, Band20m, 14200000, core.ModeUSB, false},
		{"no transmitter, out of band allowed", core.Transmitter{OutOfBandAllowed: true}, BandGEN, 9000000, core.ModeUSB, false},
		{"out of band allowed", core.Transmitter{Enabled: true, OutOfBandAllowed: true}, BandGEN, 9000000, core.ModeUSB, true},
	}

	r := New(testRadio)
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			vfo := newFakeVFO(tc.band)
			vfo.txFrequency = tc.frequency
			vfo.txMode = tc.mode

			assert.Equal(t, tc.expected, r.TransmitAllowed(vfo, tc.tx))
		})
	}
}

func TestTransmitAllowed_UsesTXVFO(t *testing.T) {
	r := New(testRadio)
	vfo := newFakeVFO(BandGEN)
	vfo.bands[1] = Band40m
	vfo.txVFO = 1
	vfo.txFrequency = 7100000
	vfo.txMode = core.ModeLSB

	allowed := r.TransmitAllowed(vfo, core.Transmitter{Enabled: true, FilterLow: -2700, FilterHigh: -300})

	assert.True(t, allowed)
}

func TestChangeRegion(t *testing.T) {
	r := New(testRadio)
	assert.Equal(t, RegionVFO, r.Region())
	assert.Equal(t, 5, r.Bandstack(Band60m).Len())
	assert.Len(t, r.Channels(), 1)

	r.Bandstack(Band20m).Select(3)
	before := append(r.Bandstack(Band20m).Entries()[:0:0], r.Bandstack(Band20m).Entries()...)

	r.ChangeRegion(RegionUK)

	assert.Equal(t, RegionUK, r.Region())
	assert.Equal(t, 11, r.Bandstack(Band60m).Len())
	assert.Equal(t, 0, r.Bandstack(Band60m).CurrentIndex())
	assert.Len(t, r.Channels(), 11)
	assert.Equal(t, core.Frequency(5261250), r.Bandstack(Band60m).Current().Frequency)
	assert.Equal(t, 3, r.Bandstack(Band20m).CurrentIndex())
	assert.Equal(t, before, r.Bandstack(Band20m).Entries())
}

func TestChangeRegion_AllRegions(t *testing.T) {
	tt := []struct {
		region   Region
		entries  int
		channels int
	}{
		{RegionVFO, 5, 1},
		{RegionUK, 11, 11},
		{RegionUS, 5, 5},
		{RegionWRC15, 5, 1},
		{RegionCA, 5, 5},
	}

	for _, tc := range tt {
		t.Run(tc.region.Name(), func(t *testing.T) {
			r := New(testRadio)
			r.Bandstack(Band60m).Select(2)

			r.ChangeRegion(tc.region)

			assert.Equal(t, tc.entries, r.Bandstack(Band60m).Len())
			assert.Equal(t, 0, r.Bandstack(Band60m).CurrentIndex())
			assert.Len(t, r.Channels(), tc.channels)
		})
	}
}

func TestChangeRegion_KeepsEditsPerRegion(t *testing.T) {
	r := New(testRadio)
	r.ChangeRegion(RegionUS)
	r.Bandstack(Band60m).Entry(0).Mode = core.ModeCWU

	r.ChangeRegion(RegionCA)
	assert.Equal(t, core.ModeUSB, r.Bandstack(Band60m).Entry(0).Mode)

	r.ChangeRegion(RegionUS)
	assert.Equal(t, core.ModeCWU, r.Bandstack(Band60m).Entry(0).Mode)
}

func TestChangeRegion_UnknownIsIgnored(t *testing.T) {
	r := New(testRadio)
	r.ChangeRegion(RegionWRC15)

	r.ChangeRegion(Region(17))

	assert.Equal(t, RegionWRC15, r.Region())
}

func TestParseRegion(t *testing.T) {
	for _, region := range Regions {
		actual, ok := ParseRegion(region.Name())
		assert.True(t, ok)
		assert.Equal(t, region, actual)
	}
	_, ok := ParseRegion("mars")
	assert.False(t, ok)
	assert.Equal(t, "UK Channels", RegionUK.String())
}

func TestFrequencyInfo(t *testing.T) {
	r := New(testRadio)

	assert.Equal(t, "20", r.FrequencyInfo(14200000, 300, 2700))
	assert.Equal(t, OutOfBand, r.FrequencyInfo(14349000, 300, 2700))
	assert.Equal(t, OutOfBand, r.FrequencyInfo(9000000, 300, 2700))
	assert.Equal(t, "60", r.FrequencyInfo(5357000, 300, 2700))

	r.ChangeRegion(RegionUK)

	assert.Equal(t, OutOfBand, r.FrequencyInfo(5357000, 300, 2700))
	assert.Equal(t, "60", r.FrequencyInfo(5355000, 300, 2700))
}

func TestApplyN2ADR(t *testing.T) {
	r := New(testRadio)

	r.ApplyN2ADR(false, false)
	assert.Equal(t, 66, r.Band(Band80m).OCrx)
	assert.Equal(t, 66, r.Band(Band80m).OCtx)
	assert.Equal(t, 96, r.Band(Band10m).OCrx)
	assert.Equal(t, 0, r.Band(Band6m).OCtx)

	r.ApplyN2ADR(true, true)
	assert.Equal(t, 0, r.Band(Band160m).OCrx)
	assert.Equal(t, 1, r.Band(Band160m).OCtx)
	assert.Equal(t, 64, r.Band(Band40m).OCrx)
	assert.Equal(t, 68, r.Band(Band40m).OCtx)

	r.ApplyN2ADR(true, false)
	assert.Equal(t, 0, r.Band(Band40m).OCrx)
}

func TestCheckInvariants(t *testing.T) {
	r := New(testRadio)
	r.AssignTransverter(0, TransverterSetup{Title: "broken", Range: core.FrequencyRange{From: 2, To: 1}})

	assert.Error(t, r.CheckInvariants())
	assert.Panics(t, func() { r.AssignTransverter(1, TransverterSetup{}) })
}
