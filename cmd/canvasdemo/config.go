package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config drives one demo run. It is read from an optional TOML file;
// flags given on the command line take precedence.
type Config struct {
	Sink       string `toml:"sink"`
	Target     string `toml:"target"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Frames     int    `toml:"frames"`
	IntervalMS int    `toml:"interval_ms"`
	Title      string `toml:"title"`
	Background string `toml:"background"`
	Verbose    bool   `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Sink:       "stdout",
		Width:      800,
		Height:     600,
		Frames:     1,
		IntervalMS: 500,
		Title:      "FastCanvas",
		Background: "midnightblue",
	}
}

// Interval is the pause between frames.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

func (c Config) validate() error {
	switch {
	case c.Sink == "":
		return errors.New("sink must not be empty")
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	case c.Frames < 0:
		return fmt.Errorf("frames must be >= 0, got %d", c.Frames)
	case c.IntervalMS < 0:
		return fmt.Errorf("interval_ms must be >= 0, got %d", c.IntervalMS)
	}
	return nil
}

// decodeConfig overlays the TOML document in r onto cfg. Unknown keys are
// rejected so typos surface.
func decodeConfig(r io.Reader, cfg *Config) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg)
}

func loadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := decodeConfig(f, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// parseArgs builds the run configuration: defaults, then the -config file,
// then every flag that was set explicitly.
func parseArgs(args []string, stderr io.Writer) (Config, error) {
	def := defaultConfig()

	fs := flag.NewFlagSet("canvasdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML config file")
		sink       = fs.String("sink", def.Sink, "sink name (stdout, stderr, file, websocket)")
		target     = fs.String("target", def.Target, "sink target (file path or listen address)")
		width      = fs.Int("width", def.Width, "canvas width")
		height     = fs.Int("height", def.Height, "canvas height")
		frames     = fs.Int("frames", def.Frames, "frames to draw; 0 runs until interrupted")
		interval   = fs.Int("interval", def.IntervalMS, "milliseconds between frames")
		title      = fs.String("title", def.Title, "title text")
		background = fs.String("background", def.Background, "background color name")
		verbose    = fs.Bool("v", def.Verbose, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := def
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sink":
			cfg.Sink = *sink
		case "target":
			cfg.Target = *target
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "frames":
			cfg.Frames = *frames
		case "interval":
			cfg.IntervalMS = *interval
		case "title":
			cfg.Title = *title
		case "background":
			cfg.Background = *background
		case "v":
			cfg.Verbose = *verbose
		}
	})

	if cfg.Sink == "websocket" && cfg.Target == "" {
		cfg.Target = "localhost:8080"
	}
	return cfg, cfg.validate()
}
