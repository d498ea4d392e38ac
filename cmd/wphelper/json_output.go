package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"wphelper/internal/wpctl"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type setDefaultResult struct {
	Category string        `json:"category"`
	Query    string        `json:"query"`
	Matched  bool          `json:"matched"`
	Object   *wpctl.Object `json:"object,omitempty"`
}
