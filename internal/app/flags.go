package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"sand-ca/internal/core"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim      string        `json:"sim"`
	Scale    int           `json:"scale"`
	TPS      int           `json:"tps"`
	Seed     int64         `json:"seed"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Density  float64       `json:"density"`
	Interval time.Duration `json:"-"`
	Mute     bool          `json:"mute"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "sand",
		Scale:    12,
		TPS:      60,
		Seed:     42,
		Width:    50,
		Height:   30,
		Density:  0.3,
		Interval: core.DefaultInterval,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the GUI loop")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells seeded with sand on reset")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between simulation ticks")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable click sounds")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file applied before flags")
}

// fileConfig mirrors Config for JSON decoding; interval is a duration string.
type fileConfig struct {
	*Config
	Interval string `json:"interval"`
}

// LoadFile overlays values from a JSON file onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	fc := fileConfig{Config: c}
	if err = json.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	if fc.Interval != "" {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return errors.Wrapf(err, "[LoadFile] invalid interval %q in %+v", fc.Interval, path)
		}
		c.Interval = d
	}
	return nil
}

// Parse loads the optional config file named by -config and then applies the
// command-line flags on top, so explicit flags win over file values.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File == "" {
		return nil
	}
	explicit := *c
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		explicit.restore(c, f.Name)
	})
	return nil
}

// restore copies the field bound to flag name from e into dst.
func (e Config) restore(dst *Config, name string) {
	switch name {
	case "sim":
		dst.Sim = e.Sim
	case "scale":
		dst.Scale = e.Scale
	case "tps":
		dst.TPS = e.TPS
	case "seed":
		dst.Seed = e.Seed
	case "w":
		dst.Width = e.Width
	case "h":
		dst.Height = e.Height
	case "density":
		dst.Density = e.Density
	case "interval":
		dst.Interval = e.Interval
	case "mute":
		dst.Mute = e.Mute
	}
}

// SimOptions renders the grid settings as registry factory options.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}
