// Package config provides configuration structures and utilities for passcheck.
// It defines the runtime options assembled from CLI flags, the optional YAML
// configuration file, and the XDG directories used for persistent data.
package config
