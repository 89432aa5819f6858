// Package config provides configuration structures and utilities for
// duochart. It defines the rendering options, output selection, report
// preferences, and the YAML preset file format.
package config
