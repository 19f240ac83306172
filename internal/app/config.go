package app

import (
	"fmt"
	"os"
	"time"

	"colorca/internal/core"
	"colorca/internal/paint"
	"colorca/internal/sim"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config represents the startup parameters for the application. None of it
// can change once the window is open.
type Config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	TPS        int     `yaml:"tps"`
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	IntervalMS int     `yaml:"interval_ms"`
	CellSize   float64 `yaml:"cell_size"`
	Outline    float64 `yaml:"outline"`
	Margin     float64 `yaml:"margin"`
	Seed       int64   `yaml:"seed"`
	Icon       string  `yaml:"icon"`

	// Palette overrides default colors by category name, e.g. "color1".
	Palette map[string][3]float64 `yaml:"palette"`
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{
		Width:      1024,
		Height:     768,
		TPS:        144,
		Rows:       sim.DefaultRows,
		Cols:       sim.DefaultCols,
		IntervalMS: int(core.DefaultInterval / time.Millisecond),
		CellSize:   paint.DefaultCellSize,
		Outline:    paint.DefaultOutline,
		Margin:     paint.DefaultMargin,
		Icon:       "logo.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame rate cap")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between automatic iterations")
	fs.Float64Var(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.Float64Var(&c.Outline, "outline", c.Outline, "cell outline thickness")
	fs.Float64Var(&c.Margin, "margin", c.Margin, "margin around the grid")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.Icon, "icon", c.Icon, "window icon image (optional)")
}

// LoadFile overlays the YAML document at path onto c. Fields missing from
// the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Load overlays the YAML document at path onto c and then re-applies every
// flag set explicitly on fs, so the command line wins over the file.
func (c *Config) Load(path string, fs *pflag.FlagSet) error {
	type setting struct{ name, value string }
	var explicit []setting
	fs.Visit(func(f *pflag.Flag) {
		explicit = append(explicit, setting{f.Name, f.Value.String()})
	})
	if err := c.LoadFile(path); err != nil {
		return err
	}
	for _, s := range explicit {
		if err := fs.Set(s.name, s.value); err != nil {
			return fmt.Errorf("flag --%s: %w", s.name, err)
		}
	}
	return nil
}

// Validate reports settings the application cannot start with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Width, c.Height, core.ErrInvalidConfig)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d: %w", c.TPS, core.ErrInvalidConfig)
	}
	if _, err := c.palette(); err != nil {
		return err
	}
	cfg := c.simConfig(core.DefaultPalette())
	return cfg.Validate()
}

// SimConfig converts the startup settings into a loop configuration. A zero
// seed is replaced by one derived from the clock.
func (c *Config) SimConfig() (sim.Config, error) {
	if err := c.Validate(); err != nil {
		return sim.Config{}, err
	}
	pal, err := c.palette()
	if err != nil {
		return sim.Config{}, err
	}
	cfg := c.simConfig(pal)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func (c *Config) simConfig(pal core.Palette) sim.Config {
	return sim.Config{
		Rows:     c.Rows,
		Cols:     c.Cols,
		Interval: time.Duration(c.IntervalMS) * time.Millisecond,
		Layout: paint.Layout{
			Margin:   c.Margin,
			CellSize: c.CellSize,
			Outline:  c.Outline,
		},
		Seed:    c.Seed,
		Palette: pal,
	}
}

func (c *Config) palette() (core.Palette, error) {
	pal := core.DefaultPalette()
	for name, rgb := range c.Palette {
		cat, err := core.ParseCategory(name)
		if err != nil {
			return pal, fmt.Errorf("palette: %w: %w", err, core.ErrInvalidConfig)
		}
		pal.Set(cat, core.RGB{R: rgb[0], G: rgb[1], B: rgb[2]})
	}
	return pal, nil
}
