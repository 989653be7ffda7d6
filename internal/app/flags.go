package app

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// SeedEnv overrides the generator seed when set.
const SeedEnv = "LIGHTS_SEED"

// Config represents the command-line parameters for the application.
type Config struct {
	Options string
	Seed    int64
	TPS     int
	Width   int
	Height  int
	HUD     bool
	Bloom   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 60, Width: 1280, Height: 720, HUD: true, Bloom: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Options, "config", c.Options, "YAML scene options (defaults when empty)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generator seed, 0 picks one from the clock")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.BoolVar(&c.Bloom, "bloom", c.Bloom, "apply the bloom pass")
}

// ResolveSeed returns the seed to mount with. LIGHTS_SEED wins over the
// flag, and a zero seed falls back to the clock.
func (c *Config) ResolveSeed(getenv func(string) string, now func() time.Time) int64 {
	if getenv == nil {
		getenv = os.Getenv
	}
	if now == nil {
		now = time.Now
	}
	if s := getenv(SeedEnv); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v
		}
	}
	if c.Seed != 0 {
		return c.Seed
	}
	return now().UnixNano()
}
