package cli

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/app"
	"github.com/ftl/bandkeeper/core/bandplan"
)

var (
	xvtrLO      string
	xvtrLOError string
	xvtrGain    int
	n2adrTXOnly bool
	n2adrHPF    bool
)

var xvtrCmd = &cobra.Command{
	Use:   "xvtr",
	Short: "Manage the transverter slots",
}

var xvtrAssignCmd = &cobra.Command{
	Use:   "assign <slot> <title> <from> <to>",
	Short: "Configure a transverter slot",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		setup := bandplan.TransverterSetup{Title: args[1], Gain: xvtrGain}
		if setup.Range.From, err = parseFrequency(args[2]); err != nil {
			return err
		}
		if setup.Range.To, err = parseFrequency(args[3]); err != nil {
			return err
		}
		if setup.LO, err = parseOptionalFrequency(xvtrLO); err != nil {
			return err
		}
		if setup.LOError, err = parseOptionalFrequency(xvtrLOError); err != nil {
			return err
		}

		return withController(cmd, func(c *app.Controller) error {
			if err := c.AssignTransverter(slot, setup); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %s %s - %s\n", bandplan.Transverter(slot), setup.Title, setup.Range.From.MHz(), setup.Range.To.MHz())
			return nil
		})
	},
}

var xvtrReleaseCmd = &cobra.Command{
	Use:   "release <slot>",
	Short: "Release a transverter slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		return withController(cmd, func(c *app.Controller) error {
			return c.ReleaseTransverter(slot)
		})
	},
}

var n2adrCmd = &cobra.Command{
	Use:   "n2adr",
	Short: "Set the OC outputs for the N2ADR filter board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(c *app.Controller) error {
			c.ApplyN2ADR(n2adrTXOnly, n2adrHPF)
			return nil
		})
	},
}

func init() {
	xvtrAssignCmd.Flags().StringVar(&xvtrLO, "lo", "", "LO frequency of the transverter")
	xvtrAssignCmd.Flags().StringVar(&xvtrLOError, "lo-error", "", "LO frequency error of the transverter")
	xvtrAssignCmd.Flags().IntVar(&xvtrGain, "gain", 0, "gain of the transverter in dB")
	n2adrCmd.Flags().BoolVar(&n2adrTXOnly, "tx-only", false, "use the filter board only for TX")
	n2adrCmd.Flags().BoolVar(&n2adrHPF, "hpf", false, "enable the high pass filter on RX (with --tx-only)")

	xvtrCmd.AddCommand(xvtrAssignCmd)
	xvtrCmd.AddCommand(xvtrReleaseCmd)
	rootCmd.AddCommand(xvtrCmd)
	rootCmd.AddCommand(n2adrCmd)
}

func parseSlot(s string) (int, error) {
	slot, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid transverter slot %s", s)
	}
	return slot, nil
}

func parseOptionalFrequency(s string) (core.Frequency, error) {
	if s == "" {
		return 0, nil
	}
	return parseFrequency(s)
}
