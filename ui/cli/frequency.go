package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/bandplan"
)

var frequencyUnits = []struct {
	suffix string
	factor float64
}{
	{"ghz", 1e9},
	{"mhz", 1e6},
	{"khz", 1e3},
	{"hz", 1},
	{"g", 1e9},
	{"m", 1e6},
	{"k", 1e3},
}

// parseFrequency accepts a frequency in Hz or with a unit suffix, e.g. 14074000, 14.074M, 7074kHz.
func parseFrequency(s string) (core.Frequency, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	factor := 1.0
	for _, unit := range frequencyUnits {
		if strings.HasSuffix(value, unit.suffix) {
			value = strings.TrimSuffix(value, unit.suffix)
			factor = unit.factor
			break
		}
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid frequency %s", s)
	}
	result := math.Round(f * factor)
	if math.IsNaN(result) || math.IsInf(result, 0) || math.Abs(result) >= math.MaxInt64 {
		return 0, errors.Errorf("frequency %s out of range", s)
	}
	return core.Frequency(result), nil
}

func parseMode(s string) (core.Mode, error) {
	result, ok := core.ParseMode(strings.ToUpper(strings.TrimSpace(s)))
	if !ok {
		return 0, errors.Errorf("unknown mode %s", s)
	}
	return result, nil
}

func parseBand(s string) (bandplan.BandID, error) {
	result, ok := bandplan.ParseBandID(s)
	if !ok {
		return 0, errors.Errorf("unknown band %s", s)
	}
	return result, nil
}
