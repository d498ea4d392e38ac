package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wphelper/internal/wpctl"
)

func newGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "get {device|filter|sink|source}",
		Short:     "Show which objects are active",
		Long:      "Print \"<id>. <name>\" for every object of the given type currently marked as default. Prints nothing when none is active.",
		ValidArgs: []string{"device", "filter", "sink", "source"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, snapshot, err := ctx.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			active := snapshot.Active(args[0] + "s")

			if ctx.JSONMode() {
				if active == nil {
					active = []wpctl.Object{}
				}
				return writeJSON(cmd, active)
			}
			out := cmd.OutOrStdout()
			for _, obj := range active {
				fmt.Fprintln(out, obj.Label())
			}
			return nil
		},
	}
}
