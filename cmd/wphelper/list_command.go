package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wphelper/internal/wpctl"
)

var listTypes = []string{
	wpctl.CategoryDevices,
	wpctl.CategoryFilters,
	wpctl.CategorySinks,
	wpctl.CategorySources,
	"all",
}

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "list [devices|filters|sinks|sources|all]",
		Short:     "List audio objects",
		Long:      "List the objects reported in the Audio section of `wpctl status`. Defaults to all categories.",
		ValidArgs: listTypes,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "all"
			if len(args) == 1 {
				kind = args[0]
			}

			_, snapshot, err := ctx.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			if ctx.JSONMode() {
				if kind == "all" {
					return writeJSON(cmd, snapshot)
				}
				return writeJSON(cmd, snapshot.Objects(kind))
			}

			colorize, err := ctx.colorEnabled(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if kind != "all" {
				fmt.Fprintln(out, renderObjectsTable(kind, snapshot.Objects(kind), colorize))
				return nil
			}
			if snapshot.Len() == 0 {
				fmt.Fprintln(out, "No audio objects reported by wpctl")
				return nil
			}
			rendered := make([]string, 0, snapshot.Len())
			for _, category := range snapshot.Categories() {
				rendered = append(rendered, renderObjectsTable(category, snapshot.Objects(category), colorize))
			}
			fmt.Fprintln(out, strings.Join(rendered, "\n\n"))
			return nil
		},
	}
}
