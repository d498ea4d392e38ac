// Package preflight provides readiness checks for the filesystem paths
// wphelper writes to.
//
// The CLI "wphelper check" command runs these alongside the binary checks
// in internal/deps. Each check is gated by its config toggle; a disabled
// route lock or an unset log file is skipped.
package preflight
