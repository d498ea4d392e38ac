package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wphelper/internal/deps"
	"wphelper/internal/preflight"
)

type checkReport struct {
	Config       string             `json:"config"`
	Dependencies []deps.Status      `json:"dependencies"`
	Checks       []preflight.Result `json:"checks"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that wpctl and the runtime paths are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			report := checkReport{
				Config:       ctx.configPath,
				Dependencies: deps.CheckBinaries(deps.Requirements(cfg)),
				Checks:       preflight.RunAll(cfg),
			}

			if ctx.JSONMode() {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				colorize, err := ctx.colorEnabled(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Config: %s\n", report.Config)
				for _, status := range report.Dependencies {
					fmt.Fprintln(out, renderDependencyLine(status, colorize))
				}
				for _, result := range report.Checks {
					fmt.Fprintln(out, renderCheckLine(result, colorize))
				}
			}

			var problems []string
			for _, status := range deps.MissingRequired(report.Dependencies) {
				problems = append(problems, status.Name)
			}
			for _, result := range preflight.Failed(report.Checks) {
				problems = append(problems, strings.ToLower(result.Name))
			}
			if len(problems) > 0 {
				return &exitError{code: 1, err: fmt.Errorf("check failed: %s", strings.Join(problems, ", "))}
			}
			return nil
		},
	}
}

func renderDependencyLine(status deps.Status, colorize bool) string {
	label := fmt.Sprintf("  %-12s", status.Name+":")
	switch {
	case status.Available:
		return label + " " + paint("[OK]", ansiGreen, colorize) + " " + status.Path
	case status.Optional:
		return label + " " + paint("[WARN]", ansiDim, colorize) + " " + status.Detail
	default:
		return label + " " + paint("[MISSING]", ansiRed, colorize) + " " + status.Detail
	}
}

func renderCheckLine(result preflight.Result, colorize bool) string {
	label := fmt.Sprintf("  %-12s", result.Name+":")
	if result.Passed {
		return label + " " + paint("[OK]", ansiGreen, colorize) + " " + result.Detail
	}
	return label + " " + paint("[FAIL]", ansiRed, colorize) + " " + result.Detail
}
