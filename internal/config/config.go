// Package config loads the simulator configuration from a TOML file and
// merges command-line overrides on top of built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"lifecode/pkg/life"
)

type Config struct {
	World   WorldConfig   `toml:"world"`
	Display DisplayConfig `toml:"display"`
	Run     RunConfig     `toml:"run"`
	Logging LoggingConfig `toml:"logging"`
}

type WorldConfig struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Rule    string   `toml:"rule"` // preset name or base64 rule code
	Seed    int64    `toml:"seed"`
	Density float64  `toml:"density"` // live probability per cell when seeding
	Pattern []string `toml:"pattern"` // optional seed rows, '#' marks live cells
}

type DisplayConfig struct {
	LiveGlyph string `toml:"live_glyph"`
	DeadGlyph string `toml:"dead_glyph"`
	TPS       int    `toml:"tps"`   // generations per second while running
	Scale     int    `toml:"scale"` // pixels per cell in the graphical frontend
}

type RunConfig struct {
	Generations int    `toml:"generations"` // generations to run headless
	LogEvery    int    `toml:"log_every"`   // progress log cadence, 0 disables
	CensusOut   string `toml:"census_out"`  // population plot path, empty disables
	Headless    bool   `toml:"headless"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // log destination, empty means stderr
}

// Load reads a TOML file over the built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:   life.DefaultWidth,
			Height:  life.DefaultHeight,
			Rule:    life.DefaultRule,
			Seed:    life.DefaultSeed,
			Density: life.DefaultDensity,
		},
		Display: DisplayConfig{
			LiveGlyph: string(life.DefaultLiveGlyph),
			DeadGlyph: string(life.DefaultDeadGlyph),
			TPS:       10,
			Scale:     8,
		},
		Run: RunConfig{
			Generations: 200,
			LogEvery:    10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Overrides carries command-line values layered on top of a loaded file.
// A field wins only when it differs from the built-in default, so flags
// left unset never clobber file settings.
type Overrides struct {
	Width       int
	Height      int
	Rule        string
	Seed        int64
	Density     float64
	TPS         int
	Generations int
	LogEvery    int
	CensusOut   string
	Headless    bool
	LogLevel    string
}

// DefaultOverrides returns an Overrides primed with the built-in defaults,
// suitable as the initial values of command-line flags.
func DefaultOverrides() Overrides {
	d := Default()
	return Overrides{
		Width:       d.World.Width,
		Height:      d.World.Height,
		Rule:        d.World.Rule,
		Seed:        d.World.Seed,
		Density:     d.World.Density,
		TPS:         d.Display.TPS,
		Generations: d.Run.Generations,
		LogEvery:    d.Run.LogEvery,
		CensusOut:   d.Run.CensusOut,
		Headless:    d.Run.Headless,
		LogLevel:    d.Logging.Level,
	}
}

// Merge applies command-line overrides onto the configuration.
func (c *Config) Merge(o Overrides) {
	d := DefaultOverrides()
	if o.Width != d.Width {
		c.World.Width = o.Width
	}
	if o.Height != d.Height {
		c.World.Height = o.Height
	}
	if o.Rule != d.Rule {
		c.World.Rule = o.Rule
	}
	if o.Seed != d.Seed {
		c.World.Seed = o.Seed
	}
	if o.Density != d.Density {
		c.World.Density = o.Density
	}
	if o.TPS != d.TPS {
		c.Display.TPS = o.TPS
	}
	if o.Generations != d.Generations {
		c.Run.Generations = o.Generations
	}
	if o.LogEvery != d.LogEvery {
		c.Run.LogEvery = o.LogEvery
	}
	if o.CensusOut != d.CensusOut {
		c.Run.CensusOut = o.CensusOut
	}
	if o.Headless {
		c.Run.Headless = true
	}
	if o.LogLevel != d.LogLevel {
		c.Logging.Level = o.LogLevel
	}
}

// Life converts the world and display sections into the engine's Config.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:     c.World.Width,
		Height:    c.World.Height,
		Rule:      c.World.Rule,
		Density:   c.World.Density,
		LiveGlyph: firstRune(c.Display.LiveGlyph),
		DeadGlyph: firstRune(c.Display.DeadGlyph),
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
