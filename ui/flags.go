package ui

import "flag"

// Config represents the command-line parameters for the GUI host.
type Config struct {
	ConfigPath string
	Scale      int
	Seed       int64
	Workers    int
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{ConfigPath: "config.json", Scale: 20, Workers: 1, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a JSON or YAML config file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize, 0 keeps the config value")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row stripes computed in parallel, 0 for one per CPU")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}
