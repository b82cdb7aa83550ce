// Package config loads and validates logdeck configuration.
//
// Configuration is TOML, resolved from an explicit --config path, then
// ~/.config/logdeck/config.toml, then a logdeck.toml in the working
// directory. Missing files are not an error: defaults apply, so the
// CLI works out of the box against ad-hoc log paths.
package config
