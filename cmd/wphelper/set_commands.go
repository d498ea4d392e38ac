package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wphelper/internal/wpctl"
)

type routeTarget struct {
	use      string
	short    string
	category string
	noun     string
}

var (
	outputTarget = routeTarget{use: "set-output", short: "Set the default sink", category: wpctl.CategorySinks, noun: "sink"}
	inputTarget  = routeTarget{use: "set-input", short: "Set the default source", category: wpctl.CategorySources, noun: "source"}
)

func newSetOutputCommand(ctx *commandContext) *cobra.Command {
	return newSetDefaultCommand(ctx, outputTarget)
}

func newSetInputCommand(ctx *commandContext) *cobra.Command {
	return newSetDefaultCommand(ctx, inputTarget)
}

func newSetDefaultCommand(ctx *commandContext, target routeTarget) *cobra.Command {
	return &cobra.Command{
		Use:   target.use + " <object>",
		Short: target.short,
		Long: fmt.Sprintf(`%s.

<object> is matched against %s in report order: the first whose name contains
it (case-insensitive) or whose id equals it exactly becomes the default.
Exits with status 1 when nothing matches.`, target.short, target.category),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			var (
				obj     wpctl.Object
				matched bool
			)
			err := ctx.withRouteLock(cmd.Context(), func() error {
				client, snapshot, err := ctx.snapshot(cmd.Context())
				if err != nil {
					return err
				}
				obj, matched, err = client.SetDefaultMatching(cmd.Context(), query, snapshot.Objects(target.category))
				return err
			})
			if err != nil {
				return err
			}
			return reportSetDefault(cmd, ctx, target, query, obj, matched)
		},
	}
}

func reportSetDefault(cmd *cobra.Command, ctx *commandContext, target routeTarget, query string, obj wpctl.Object, matched bool) error {
	normalized := wpctl.NormalizeQuery(query)
	if ctx.JSONMode() {
		result := setDefaultResult{Category: target.category, Query: normalized, Matched: matched}
		if matched {
			result.Object = &obj
		}
		if err := writeJSON(cmd, result); err != nil {
			return err
		}
	} else if matched {
		fmt.Fprintf(cmd.OutOrStdout(), "Default %s is now '%s'\n", target.noun, obj.Label())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Could not find a %s matching '%s'\n", target.noun, normalized)
	}
	if !matched {
		return &exitError{code: 1, err: fmt.Errorf("%w: no %s matching %q", wpctl.ErrNotFound, target.noun, normalized)}
	}
	return nil
}
