package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "64", "-h", "32", "-factions", "3", "-void", "0.5", "-seed", "-9", "-workers", "2"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	got := cfg.SimConfig()
	want := map[string]string{
		"w":           "64",
		"h":           "32",
		"seed":        "-9",
		"factions":    "3",
		"void_chance": "0.5",
		"workers":     "2",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s: got %q want %q", k, got[k], v)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"scale":  func(c *Config) { c.Scale = 0 },
		"tps":    func(c *Config) { c.TPS = -1 },
		"width":  func(c *Config) { c.Width = 0 },
		"height": func(c *Config) { c.Height = -4 },
		"hud":    func(c *Config) { c.HUDWidth = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			if cfg.Validate() == nil {
				t.Fatal("expected an error")
			}
		})
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}
