package cli

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/app"
	"github.com/ftl/bandkeeper/core/cfg"
)

var (
	propsFile string
	rigHost   string
	logLevel  string
)

var loadConfiguration = cfg.Load

var rootCmd = &cobra.Command{
	Use:   "bandkeeper",
	Short: "Band plan and bandstack keeper for SDR transceivers",
	Long: `bandkeeper keeps the band table and the bandstacks of an SDR transceiver in a props file.
It resolves frequencies to bands, steps through the bands, switches the 60m region and checks if
transmitting is allowed. With --rig, VFO A is followed by a hamlib rig (rigctld).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&propsFile, "props", "p", "", "path to the props file (default from configuration)")
	rootCmd.PersistentFlags().StringVarP(&rigHost, "rig", "r", "", "address of rigctld, e.g. localhost:4532 (optional)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "panic, fatal, error, warn, info, debug, or trace")
}

// Execute the root command.
func Execute() error {
	return rootCmd.Execute()
}

func effectiveConfiguration(cmd *cobra.Command) (core.Configuration, error) {
	result, err := loadConfiguration()
	if err != nil {
		log.WithError(err).Info("using static configuration")
		result = cfg.Static()
	}

	flags := cmd.Flags()
	if flags.Changed("props") {
		result.PropsFile = propsFile
	}
	if flags.Changed("rig") {
		result.RigHost = rigHost
	}
	if flags.Changed("log-level") {
		result.LogLevel = logLevel
	}

	if result.LogLevel != "" {
		level, err := log.ParseLevel(result.LogLevel)
		if err != nil {
			return core.Configuration{}, errors.Wrapf(err, "invalid log level %s", result.LogLevel)
		}
		log.SetLevel(level)
	}

	return result, nil
}

// withController runs f between startup and shutdown of a controller.
func withController(cmd *cobra.Command, f func(*app.Controller) error) error {
	configuration, err := effectiveConfiguration(cmd)
	if err != nil {
		return err
	}

	controller := app.NewController(configuration)
	if err := controller.Startup(); err != nil {
		return err
	}

	result := f(controller)

	if err := controller.Shutdown(); err != nil {
		if result != nil {
			log.WithError(err).Error("shutdown failed")
			return result
		}
		return err
	}
	return result
}
