// Package config loads, normalizes, and validates mxfkit configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and applies MXFKIT_* environment overrides on
// top of the file. The Config type centralizes every knob the CLI needs:
// log output, how listings are rendered, and where the reference catalog lives.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical format names, and clear validation errors.
package config
