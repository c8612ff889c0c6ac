// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Overrides holds environment settings layered over a scenario document.
type Overrides struct {
	GridSize     int    `env:"BPLP_GRID_SIZE"`
	ICMode       string `env:"BPLP_IC_MODE"`
	Rule         string `env:"BPLP_QUADRATURE_RULE"`
	Subintervals int    `env:"BPLP_QUADRATURE_SUBINTERVALS"`
	LogLevel     string `env:"BPLP_LOG_LEVEL" envDefault:"info"`
}

// LoadOverrides reads Overrides from the process environment.
func LoadOverrides() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, fmt.Errorf("%w: parse env: %w", ErrInvalid, err)
	}

	return o, nil
}

// Level parses LogLevel (debug, info, warn, error; case-insensitive).
// Empty means info.
func (o Overrides) Level() (slog.Level, error) {
	var lvl slog.Level
	if o.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}

	return lvl, nil
}
