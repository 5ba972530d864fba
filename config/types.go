// SPDX-License-Identifier: MIT

// Package config holds the file-backed defaults of the spath command.
// Every field is optional; flags given on the command line win.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spath/dijkstra"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalid indicates a config value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config mirrors the YAML document:
//
//	frontier: heap        # heap | linear
//	sentinel: 999         # numeric "no edge" marker, omit for none
//	one_based: false      # 1-based vertex labels on input and output
//	format: text          # text | json
//	color: auto           # auto | always | never
//	max_distance: 0       # 0 = unlimited
type Config struct {
	Frontier    string `yaml:"frontier"`
	Sentinel    *int64 `yaml:"sentinel,omitempty"`
	OneBased    bool   `yaml:"one_based"`
	Format      string `yaml:"format"`
	Color       string `yaml:"color"`
	MaxDistance int64  `yaml:"max_distance"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Frontier: dijkstra.FrontierHeap.String(),
		Format:   FormatText,
		Color:    ColorAuto,
	}
}

// Validate checks enumerated fields and ranges.
func (c Config) Validate() error {
	if _, err := dijkstra.ParseStrategy(c.Frontier); err != nil {
		return fmt.Errorf("%w: frontier: %w", ErrInvalid, err)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatText, FormatJSON)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalid, c.Color)
	}
	if c.MaxDistance < 0 {
		return fmt.Errorf("%w: max_distance %d is negative", ErrInvalid, c.MaxDistance)
	}

	return nil
}

// Strategy returns the parsed frontier strategy. Call Validate first.
func (c Config) Strategy() dijkstra.Strategy {
	s, _ := dijkstra.ParseStrategy(c.Frontier)

	return s
}
