package bandplan

import (
	"fmt"
	"strings"

	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/bandstack"
)

// BandID identifies a band by its position in the band table.
type BandID int

// All fixed bands, in table order.
const (
	Band136kHz BandID = iota
	Band472kHz
	Band160m
	Band80m
	Band60m
	Band40m
	Band30m
	Band20m
	Band17m
	Band15m
	Band12m
	Band10m
	Band6m
	Band4m
	Band144MHz
	Band220MHz
	Band430MHz
	Band902MHz
	Band1240MHz
	Band2300MHz
	Band3400MHz
	BandAIR
	BandWWV
	BandGEN

	// Bands is the number of fixed bands.
	Bands int = iota
)

const (
	// Transverters is the number of user-configurable transverter slots following the fixed bands.
	Transverters = 10

	// BandCount is the total number of band records.
	BandCount = Bands + Transverters

	// lastFixedRangeBand is the last band whose frequency range is compiled in and never persisted.
	lastFixedRangeBand = Band10m
)

// Transverter returns the BandID of the given transverter slot.
func Transverter(slot int) BandID {
	if slot < 0 || slot >= Transverters {
		panic(fmt.Sprintf("transverter slot %d out of range [0,%d)", slot, Transverters))
	}
	return BandID(Bands + slot)
}

// Valid indicates if the ID refers to a record in the band table.
func (id BandID) Valid() bool {
	return id >= 0 && int(id) < BandCount
}

// IsTransverter indicates a transverter slot.
func (id BandID) IsTransverter() bool {
	return int(id) >= Bands && int(id) < BandCount
}

// TransverterSlot returns the slot number of a transverter band.
func (id BandID) TransverterSlot() int {
	return int(id) - Bands
}

func (id BandID) String() string {
	switch {
	case id >= 0 && int(id) < Bands:
		return defaultBands[id].title
	case id.IsTransverter():
		return fmt.Sprintf("XVTR%d", id.TransverterSlot())
	default:
		return fmt.Sprintf("BandID(%d)", int(id))
	}
}

// ParseBandID accepts the title of a fixed band (e.g. "20", "AIR") or "xvtrN".
func ParseBandID(s string) (BandID, bool) {
	s = strings.TrimSpace(s)
	for i := 0; i < Bands; i++ {
		if strings.EqualFold(defaultBands[i].title, s) || strings.EqualFold(defaultBands[i].title+"m", s) {
			return BandID(i), true
		}
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "xvtr") {
		var slot int
		if _, err := fmt.Sscanf(lower, "xvtr%d", &slot); err == nil && slot >= 0 && slot < Transverters {
			return BandID(Bands + slot), true
		}
	}
	return 0, false
}

// Band is one record of the band table.
type Band struct {
	core.FrequencyRange

	ID        BandID
	Title     string
	Bandstack *bandstack.Bandstack

	RXAntenna   int
	TXAntenna   int
	Attenuation int
	OCrx        int
	OCtx        int
	DisablePA   bool

	PACalibration float64

	// LO, LOError and Gain are only meaningful for transverter slots.
	LO      core.Frequency
	LOError core.Frequency
	Gain    int

	assigned bool
}

// Assigned indicates if this band takes part in navigation and resolution.
// Fixed bands are always assigned, transverter slots only after configuration.
func (b *Band) Assigned() bool {
	return b.assigned
}

// Transverter indicates a transverter slot.
func (b *Band) Transverter() bool {
	return b.ID.IsTransverter()
}

// HasRange indicates if the band has a fixed range, i.e. is not resolved by exception rules.
func (b *Band) HasRange() bool {
	return !b.FrequencyRange.IsZero()
}

func (b *Band) String() string {
	if !b.assigned {
		return fmt.Sprintf("%v (unassigned)", b.ID)
	}
	return fmt.Sprintf("%s %v", b.Title, b.FrequencyRange)
}

// PA calibration limits.
const (
	MinPACalibration = 38.8
	MaxPACalibration = 70.0
)

type bandDefaults struct {
	title         string
	catalog       bandstack.Catalog
	current       int
	paCalibration float64
	from, to      core.Frequency
}

var defaultBands = [Bands]bandDefaults{
	Band136kHz:  {"136kHz", catalog136, 0, 38.8, 135700, 137800},
	Band472kHz:  {"472kHz", catalog472, 0, 38.8, 472000, 479000},
	Band160m:    {"160", catalog160, 1, 38.8, 1800000, 2000000},
	Band80m:     {"80", catalog80, 1, 38.8, 3500000, 4400000},
	Band60m:     {"60", nil, 1, 38.8, 5250000, 5450000},
	Band40m:     {"40", catalog40, 1, 38.8, 6500000, 7300000},
	Band30m:     {"30", catalog30, 1, 38.8, 10100000, 11430000},
	Band20m:     {"20", catalog20, 1, 38.8, 14000000, 14350000},
	Band17m:     {"17", catalog17, 1, 38.8, 18068000, 18168000},
	Band15m:     {"15", catalog15, 1, 38.8, 21000000, 21450000},
	Band12m:     {"12", catalog12, 1, 38.8, 24890000, 24990000},
	Band10m:     {"10", catalog10, 1, 38.8, 26500000, 29700000},
	Band6m:      {"6", catalog6, 1, 53.0, 50000000, 54000000},
	Band4m:      {"4", catalog70, 1, 53.0, 70000000, 70500000},
	Band144MHz:  {"144", catalog144, 1, 53.0, 144000000, 148000000},
	Band220MHz:  {"220", catalog220, 1, 53.0, 220000000, 224980000},
	Band430MHz:  {"430", catalog430, 1, 53.0, 420000000, 450000000},
	Band902MHz:  {"902", catalog902, 1, 53.0, 902000000, 928000000},
	Band1240MHz: {"1240", catalog1240, 1, 53.0, 1240000000, 1300000000},
	Band2300MHz: {"2300", catalog2300, 1, 53.0, 2300000000, 2450000000},
	Band3400MHz: {"3400", catalog3400, 1, 53.0, 3400000000, 3410000000},
	BandAIR:     {"AIR", catalogAIR, 1, 53.0, 108000000, 137000000},
	BandWWV:     {"WWV", catalogWWV, 1, 53.0, 0, 0},
	BandGEN:     {"GEN", catalogGEN, 1, 53.0, 0, 0},
}

const transverterPACalibration = 53.0
