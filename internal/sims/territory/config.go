package territory

import (
	"strconv"

	"dungenon/pkg/faction"
)

// Fill selects how Reset populates the map.
type Fill string

const (
	// FillPoints places one starting cell per faction on neutral ground.
	FillPoints Fill = "points"
	// FillScatter assigns every non-void cell to a random faction.
	FillScatter Fill = "scatter"
)

// Config controls the territory simulation.
type Config struct {
	Width  int
	Height int

	Seed int64

	Factions   int
	VoidChance float64
	Fill       Fill

	// Workers caps parallel row bands (0 = GOMAXPROCS).
	Workers int
	Kernel  faction.Kernel
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      256,
		Height:     256,
		Seed:       1337,
		Factions:   8,
		VoidChance: 0.02,
		Fill:       FillPoints,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["factions"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Factions = parsed
		}
	}
	if v, ok := cfg["void_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.VoidChance = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		switch Fill(v) {
		case FillPoints, FillScatter:
			c.Fill = Fill(v)
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["kernel"]; ok {
		if k, err := faction.ParseKernel(v); err == nil {
			c.Kernel = k
		}
	}
	return c
}
