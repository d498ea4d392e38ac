// Package wpctl reads and changes WirePlumber routing state through the wpctl
// command-line tool.
//
// ParseStatus turns the tree-shaped `wpctl status` report into a Snapshot of
// categories (sinks, sources, devices, filters) holding Objects in report
// order. Resolve picks the first object matching a user query by name
// substring or exact id, and Client wraps the status and set-default
// invocations behind an Executor so tests can substitute canned output.
//
// The parser only looks at the "Audio" section. Lines it does not recognize are
// skipped so newer wpctl releases that add report content keep working.
package wpctl
