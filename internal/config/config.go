package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned when a configuration fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Population is the number of bodies of each kind placed at startup.
type Population struct {
	Asteroids     int `yaml:"asteroids" toml:"asteroids"`
	SpaceTrucks   int `yaml:"space_trucks" toml:"space_trucks"`
	Enterprises   int `yaml:"enterprises" toml:"enterprises"`
	NiceAsteroids int `yaml:"nice_asteroids" toml:"nice_asteroids"`
}

// SSH configures the multi-viewer SSH server.
type SSH struct {
	Host     string `yaml:"host" toml:"host"`
	Port     string `yaml:"port" toml:"port"`
	HostKey  string `yaml:"host_key" toml:"host_key"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Config holds the tunable parameters of a simulation run.
type Config struct {
	NbTested      int        `yaml:"nb_tested" toml:"nb_tested"`           // sampling trials per pairwise test
	Seed          uint64     `yaml:"seed" toml:"seed"`                     // 0 seeds from the clock
	TickInterval  Duration   `yaml:"tick_interval" toml:"tick_interval"`   // e.g. "30ms"
	RenderSamples int        `yaml:"render_samples" toml:"render_samples"` // points drawn per body per frame
	MaskSize      int        `yaml:"mask_size" toml:"mask_size"`           // nice asteroid silhouette size in pixels
	LogLevel      string     `yaml:"log_level" toml:"log_level"`
	Population    Population `yaml:"population" toml:"population"`
	SSH           SSH        `yaml:"ssh" toml:"ssh"`
}

// Default returns the demo scene: two trucks, one enterprise and three
// rasterized asteroids.
func Default() *Config {
	return &Config{
		NbTested:      DefaultNbTested,
		TickInterval:  Duration{DefaultTickInterval},
		RenderSamples: DefaultRenderSamples,
		MaskSize:      DefaultMaskSize,
		LogLevel:      "warn",
		Population: Population{
			Asteroids:     0,
			SpaceTrucks:   2,
			Enterprises:   1,
			NiceAsteroids: 3,
		},
		SSH: SSH{
			Host:     "::",
			Port:     "2222",
			HostKey:  ".ssh/collider_host_key",
			LogLevel: "info",
		},
	}
}

// Load reads the file at path over the defaults. The format is chosen by
// extension: .yaml/.yml or .toml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	conf := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, conf)
	case ".toml":
		_, err = toml.Decode(string(data), conf)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks the configuration for values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.NbTested <= 0:
		return errors.Wrapf(ErrInvalidConfig, "nb_tested must be positive, got %d", c.NbTested)
	case c.TickInterval.Duration <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick_interval must be positive, got %s", c.TickInterval)
	case c.RenderSamples < 0:
		return errors.Wrapf(ErrInvalidConfig, "render_samples must not be negative, got %d", c.RenderSamples)
	case c.MaskSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "mask_size must be positive, got %d", c.MaskSize)
	}
	p := c.Population
	if p.Asteroids < 0 || p.SpaceTrucks < 0 || p.Enterprises < 0 || p.NiceAsteroids < 0 {
		return errors.Wrapf(ErrInvalidConfig, "population counts must not be negative: %+v", p)
	}
	return nil
}

// FromEnv loads the file named by COLLIDER_CONFIG, or the defaults when it
// is unset, then applies COLLIDER_LOG_LEVEL to both the local and the SSH
// log level.
func FromEnv() (*Config, error) {
	conf := Default()
	if path := GetEnv("COLLIDER_CONFIG", ""); path != "" {
		var err error
		if conf, err = Load(path); err != nil {
			return nil, err
		}
	}
	if level := GetEnv("COLLIDER_LOG_LEVEL", ""); level != "" {
		conf.LogLevel = level
		conf.SSH.LogLevel = level
	}
	return conf, nil
}
