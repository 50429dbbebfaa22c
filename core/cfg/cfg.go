package cfg

import (
	"github.com/ftl/hamradio/cfg"
	"github.com/pkg/errors"

	"github.com/ftl/bandkeeper/core"
)

const (
	frequencyMin     cfg.Key = "bandkeeper.radio.frequencyMin"
	frequencyMax     cfg.Key = "bandkeeper.radio.frequencyMax"
	txEnabled        cfg.Key = "bandkeeper.transmitter.enabled"
	outOfBandAllowed cfg.Key = "bandkeeper.transmitter.outOfBandAllowed"
	txFilterLow      cfg.Key = "bandkeeper.transmitter.filterLow"
	txFilterHigh     cfg.Key = "bandkeeper.transmitter.filterHigh"
	propsFile        cfg.Key = "bandkeeper.propsFile"
	rigHost          cfg.Key = "bandkeeper.rigHost"
	logLevel         cfg.Key = "bandkeeper.logLevel"
)

// Load the configuration from the default hamradio configuration file. Missing keys fall back
// to the static defaults.
func Load() (core.Configuration, error) {
	configuration, err := cfg.LoadDefault()
	if err != nil {
		return core.Configuration{}, errors.Wrap(err, "cannot load configuration")
	}

	defaults := Static()
	result := core.Configuration{
		Radio: core.Radio{
			FrequencyRange: core.FrequencyRange{
				From: core.Frequency(configuration.Get(frequencyMin, float64(defaults.Radio.FrequencyRange.From)).(float64)),
				To:   core.Frequency(configuration.Get(frequencyMax, float64(defaults.Radio.FrequencyRange.To)).(float64)),
			},
		},
		Transmitter: core.Transmitter{
			Enabled:          configuration.Get(txEnabled, defaults.Transmitter.Enabled).(bool),
			OutOfBandAllowed: configuration.Get(outOfBandAllowed, defaults.Transmitter.OutOfBandAllowed).(bool),
			FilterLow:        core.Frequency(configuration.Get(txFilterLow, float64(defaults.Transmitter.FilterLow)).(float64)),
			FilterHigh:       core.Frequency(configuration.Get(txFilterHigh, float64(defaults.Transmitter.FilterHigh)).(float64)),
		},
		PropsFile: configuration.Get(propsFile, defaults.PropsFile).(string),
		RigHost:   configuration.Get(rigHost, defaults.RigHost).(string),
		LogLevel:  configuration.Get(logLevel, defaults.LogLevel).(string),
	}

	if !result.Radio.FrequencyRange.Valid() {
		return core.Configuration{}, errors.Errorf("invalid radio frequency range %v", result.Radio.FrequencyRange)
	}
	if result.Transmitter.FilterLow > result.Transmitter.FilterHigh {
		return core.Configuration{}, errors.Errorf("invalid TX filter [%v,%v]", result.Transmitter.FilterLow, result.Transmitter.FilterHigh)
	}

	return result, nil
}

// Static returns the built-in configuration of an HPSDR class radio with transmitter.
func Static() core.Configuration {
	return core.Configuration{
		Radio: core.Radio{
			FrequencyRange: core.FrequencyRange{From: 0, To: 61440000},
		},
		Transmitter: core.Transmitter{
			Enabled:    true,
			FilterLow:  150,
			FilterHigh: 2850,
		},
		PropsFile: "bandkeeper.props",
		LogLevel:  "info",
	}
}
