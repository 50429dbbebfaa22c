package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/app"
	"github.com/ftl/bandkeeper/core/vfo"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <frequency>",
	Short: "Print the band that contains the given frequency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseFrequency(args[0])
		if err != nil {
			return err
		}
		return withController(cmd, func(c *app.Controller) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.Resolve(f))
			return nil
		})
	},
}

var tuneCmd = &cobra.Command{
	Use:   "tune <frequency> [mode]",
	Short: "Tune VFO A to the given frequency",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, mode, err := frequencyAndMode(args)
		if err != nil {
			return err
		}
		return withController(cmd, func(c *app.Controller) error {
			c.Tune(f)
			if len(args) > 1 {
				c.SetMode(mode)
			}
			printVFO(cmd.OutOrStdout(), c.VFO(vfo.A))
			return nil
		})
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <frequency> [mode]",
	Short: "Print the band that contains a transmission on the given frequency",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, mode, err := frequencyAndMode(args)
		if err != nil {
			return err
		}
		return withController(cmd, func(c *app.Controller) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.FrequencyInfo(f, mode))
			return nil
		})
	},
}

var txcheckCmd = &cobra.Command{
	Use:   "txcheck <frequency> <mode>",
	Short: "Tune VFO A and check if transmitting is allowed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, mode, err := frequencyAndMode(args)
		if err != nil {
			return err
		}
		return withController(cmd, func(c *app.Controller) error {
			c.Tune(f)
			c.SetMode(mode)
			if !c.Key() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %v: out of band\n", f.MHz(), mode)
				return nil
			}
			c.Unkey()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %v: TX allowed\n", f.MHz(), mode)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(tuneCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(txcheckCmd)
}

func frequencyAndMode(args []string) (core.Frequency, core.Mode, error) {
	f, err := parseFrequency(args[0])
	if err != nil {
		return 0, 0, err
	}
	mode := core.ModeUSB
	if len(args) > 1 {
		mode, err = parseMode(args[1])
		if err != nil {
			return 0, 0, errors.WithMessage(err, "cannot parse mode")
		}
	}
	return f, mode, nil
}
