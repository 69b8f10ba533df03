package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the session configuration. Grid size is fixed once a session starts.
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	TickInterval   time.Duration `json:"tick_interval"`
	Workers        int           `json:"workers"`
	MaxGenerations int           `json:"max_generations"`
	Scale          int           `json:"scale"`
	LogFile        string        `json:"log_file"`
	Headless       bool          `json:"headless"`
}

// DefaultConfig returns the reference 53x40 grid ticking every 200ms
func DefaultConfig() Config {
	return Config{
		Width:          53,
		Height:         40,
		TickInterval:   200 * time.Millisecond,
		Workers:        1,
		MaxGenerations: 0, // Unlimited
		Scale:          12,
		LogFile:        "life.log",
		Headless:       false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "interval between ticks while running")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands planned concurrently per step")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop the headless run after this many generations (0 = unlimited)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the GUI")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file for the interactive terminal UI")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without input, printing frames to stdout")
}

// FromFlags parses args, loads the JSON file named by -config and then
// re-applies every flag set on the command line so flags win over the file.
// A missing file is only an error when -config was given explicitly.
func FromFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var (
		path   string
		config = DefaultConfig()
	)
	fs.StringVar(&path, "config", "config.json", "path to a JSON config file")
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[FromFlags] failed to parse flags")
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	loaded, err := LoadConfig(path)
	if err != nil {
		if _, given := explicit["config"]; given || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		loaded = DefaultConfig()
	}

	overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	loaded.Bind(overlay)
	for name, value := range explicit {
		if name == "config" {
			continue
		}
		if err = overlay.Set(name, value); err != nil {
			return config, errors.Wrapf(err, "[FromFlags] failed to apply flag: %+v", name)
		}
	}

	if err = loaded.Validate(); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// Validate reports the first setting that cannot start a session
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.TickInterval <= 0:
		return errors.Errorf("[Validate] tick interval must be positive, got %v", c.TickInterval)
	case c.Workers < 1:
		return errors.Errorf("[Validate] workers must be at least 1, got %d", c.Workers)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max generations cannot be negative, got %d", c.MaxGenerations)
	case c.Scale < 1:
		return errors.Errorf("[Validate] scale must be at least 1, got %d", c.Scale)
	}
	return nil
}
