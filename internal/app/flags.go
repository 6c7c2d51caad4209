package app

import (
	"flag"
	"fmt"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	// Passed through to the sim factory.
	Width      int
	Height     int
	Factions   int
	VoidChance float64
	Workers    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:        "factions",
		Scale:      3,
		TPS:        30,
		Seed:       42,
		HUDWidth:   220,
		Width:      256,
		Height:     192,
		Factions:   8,
		VoidChance: 0.02,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the control panel in pixels (0 hides it)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Factions, "factions", c.Factions, "number of starting factions")
	fs.Float64Var(&c.VoidChance, "void", c.VoidChance, "probability that a cell starts as void")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel row bands (0 = GOMAXPROCS)")
}

// SimConfig renders the sim-specific settings as the key/value map accepted
// by core.Factory.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":           strconv.Itoa(c.Width),
		"h":           strconv.Itoa(c.Height),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"factions":    strconv.Itoa(c.Factions),
		"void_chance": strconv.FormatFloat(c.VoidChance, 'f', -1, 64),
		"workers":     strconv.Itoa(c.Workers),
	}
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}
