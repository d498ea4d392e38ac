// Package main hosts the wphelper CLI entrypoint and command graph.
//
// The Cobra command tree lists WirePlumber sinks, sources, devices, and
// filters, prints the current defaults, and switches the default output or
// input by name or id. Parsing and wpctl invocation live in internal/wpctl;
// this package resolves configuration, builds the logger, holds the route
// lock around changes, and renders results as tables or JSON.
package main
