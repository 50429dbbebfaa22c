package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ftl/bandkeeper/core/app"
	"github.com/ftl/bandkeeper/core/bandplan"
)

var regionCmd = &cobra.Command{
	Use:   "region [vfo|uk|us|wrc15|ca]",
	Short: "Show or switch the 60m region",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(c *app.Controller) error {
			if len(args) == 1 {
				region, ok := bandplan.ParseRegion(args[0])
				if !ok {
					return errors.Errorf("unknown region %s", args[0])
				}
				if err := c.SetRegion(region); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%v\n", c.Region())
			for _, channel := range c.Channels() {
				fmt.Fprintf(out, "  %s (%v wide)\n", channel.Frequency.MHz(), channel.Width)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(regionCmd)
}
