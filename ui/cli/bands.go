package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ftl/bandkeeper/core/app"
	"github.com/ftl/bandkeeper/core/vfo"
)

var showUnassigned bool

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "List the band table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(c *app.Controller) error {
			return printBands(cmd.OutOrStdout(), c.Bands(), showUnassigned)
		})
	},
}

var bandCmd = &cobra.Command{
	Use:   "band <name>",
	Short: "Move VFO A to the given band; on the same band, cycle through the bandstack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseBand(args[0])
		if err != nil {
			return err
		}
		return withController(cmd, func(c *app.Controller) error {
			if !c.SelectBand(id) {
				return errors.Errorf("band %v refused", id)
			}
			printVFO(cmd.OutOrStdout(), c.VFO(vfo.A))
			return nil
		})
	},
}

var stepCmd = &cobra.Command{
	Use:       "step up|down",
	Short:     "Move VFO A to the next or previous band",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(c *app.Controller) error {
			var changed bool
			if args[0] == "up" {
				_, changed = c.BandUp()
			} else {
				_, changed = c.BandDown()
			}
			if !changed {
				return errors.New("no other band available")
			}
			printVFO(cmd.OutOrStdout(), c.VFO(vfo.A))
			return nil
		})
	},
}

func init() {
	bandsCmd.Flags().BoolVarP(&showUnassigned, "all", "a", false, "show unassigned transverter slots")

	rootCmd.AddCommand(bandsCmd)
	rootCmd.AddCommand(bandCmd)
	rootCmd.AddCommand(stepCmd)
}

func printBands(out io.Writer, bands []app.BandInfo, all bool) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBAND\tRANGE\tSTACK\tCURRENT")
	for _, band := range bands {
		if !band.Assigned && !all {
			continue
		}
		title := band.Title
		if !band.Assigned {
			title = "-"
		}
		rangeText := "-"
		if !band.Range.IsZero() {
			rangeText = fmt.Sprintf("%s - %s", band.Range.From.MHz(), band.Range.To.MHz())
		}
		if band.ID.IsTransverter() && band.Assigned {
			rangeText = fmt.Sprintf("%s (LO %s)", rangeText, band.LO.MHz())
		}
		fmt.Fprintf(w, "%v\t%s\t%s\t%d/%d\t%s\n", band.ID, title, rangeText, band.Current+1, band.Entries, band.CurrentEntry)
	}
	return w.Flush()
}

func printVFO(out io.Writer, state vfo.State) {
	fmt.Fprintf(out, "VFO A: %v %s %v %v\n", state.Band, state.TuningFrequency().MHz(), state.Mode, state.Filter)
}
