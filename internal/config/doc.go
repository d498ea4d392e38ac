// Package config loads, normalizes, and validates wphelper configuration.
//
// A configuration file is optional. Defaults cover a stock WirePlumber setup,
// and a TOML file at ~/.config/wphelper/config.toml (or ./wphelper.toml, or a
// path passed with --config) can override the wpctl binary, the route lock,
// colour output, and logging.
package config
