package core

import (
	"fmt"
)

// Frequency represents a frequency in Hz.
type Frequency int64

func (f Frequency) String() string {
	return fmt.Sprintf("%dHz", int64(f))
}

// MHz formats the frequency in MHz with Hz resolution.
func (f Frequency) MHz() string {
	return fmt.Sprintf("%.6fMHz", float64(f)/1e6)
}

// Abs returns the absolute value of f.
func (f Frequency) Abs() Frequency {
	if f < 0 {
		return -f
	}
	return f
}

// FrequencyRange represents a range of frequencies.
type FrequencyRange struct {
	From, To Frequency
}

func (r FrequencyRange) String() string {
	return fmt.Sprintf("[%v,%v]", r.From, r.To)
}

// Center frequency of this range.
func (r FrequencyRange) Center() Frequency {
	return r.From + (r.To-r.From)/2
}

// Width of the frequency range.
func (r FrequencyRange) Width() Frequency {
	return r.To - r.From
}

// Contains the given frequency.
func (r FrequencyRange) Contains(f Frequency) bool {
	return f >= r.From && f <= r.To
}

// ContainsRange indicates if the other range lies completely within this range.
func (r FrequencyRange) ContainsRange(other FrequencyRange) bool {
	return other.From >= r.From && other.To <= r.To
}

// IsZero indicates the [0,0] sentinel that marks a band without a fixed range.
func (r FrequencyRange) IsZero() bool {
	return r.From == 0 && r.To == 0
}

// Valid indicates if From <= To.
func (r FrequencyRange) Valid() bool {
	return r.From <= r.To
}

// Mode of operation. The numeric values are persisted and must not change.
type Mode int

// All modes.
const (
	ModeLSB Mode = iota
	ModeUSB
	ModeDSB
	ModeCWL
	ModeCWU
	ModeFMN
	ModeAM
	ModeDIGU
	ModeSPEC
	ModeDIGL
	ModeSAM
	ModeDRM
)

var modeNames = []string{"LSB", "USB", "DSB", "CWL", "CWU", "FMN", "AM", "DIGU", "SPEC", "DIGL", "SAM", "DRM"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// IsCW indicates a CW mode, which occupies only the carrier frequency.
func (m Mode) IsCW() bool {
	return m == ModeCWL || m == ModeCWU
}

// ParseMode returns the mode with the given name (case sensitive, as shown by String).
func ParseMode(s string) (Mode, bool) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), true
		}
	}
	return 0, false
}

// Filter selects one of the per-mode filter presets. The numeric values are persisted and must not change.
type Filter int

// All filters.
const (
	FilterF0 Filter = iota
	FilterF1
	FilterF2
	FilterF3
	FilterF4
	FilterF5
	FilterF6
	FilterF7
	FilterF8
	FilterF9
	FilterVar1
	FilterVar2
)

func (f Filter) String() string {
	switch {
	case f >= FilterF0 && f <= FilterF9:
		return fmt.Sprintf("F%d", int(f))
	case f == FilterVar1:
		return "Var1"
	case f == FilterVar2:
		return "Var2"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// Radio describes the hardware receive range of the installation.
type Radio struct {
	FrequencyRange FrequencyRange
}

// Supports indicates if the radio hardware can receive the given frequency.
func (r Radio) Supports(f Frequency) bool {
	return r.FrequencyRange.Contains(f)
}

// Transmitter describes the transmit capability of the installation.
type Transmitter struct {
	Enabled          bool
	OutOfBandAllowed bool
	// FilterLow and FilterHigh are the TX filter edges relative to the carrier.
	FilterLow  Frequency
	FilterHigh Frequency
}

// Configuration parameters of the application.
type Configuration struct {
	Radio       Radio
	Transmitter Transmitter
	PropsFile   string
	RigHost     string
	LogLevel    string
}
