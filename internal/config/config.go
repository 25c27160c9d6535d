// Package config holds the benchmark configuration, which can be loaded from
// a TOML file:
//
//	[log]
//	level = "debug"
//
//	[sort]
//	rounds = 5
//	check = true
//	bottomUp = false
//
//	[generate]
//	n = 10000000
//	max = 100000
//	dist = "uniform"
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/exascience/parradix/internal/gen"
)

type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

type SortConfig struct {
	Rounds     int  `toml:"rounds"`
	Check      bool `toml:"check"`
	BottomUp   bool `toml:"bottomUp"`
	Sequential bool `toml:"sequential"`
	// Workers sets GOMAXPROCS when positive.
	Workers int `toml:"workers"`
}

type GenerateConfig struct {
	N     int    `toml:"n"`
	Max   uint32 `toml:"max"`
	Dist  string `toml:"dist"`
	Pairs bool   `toml:"pairs"`
	// Seed 0 selects a seed from the current time.
	Seed int64 `toml:"seed"`
}

type Config struct {
	Log      LogConfig      `toml:"log"`
	Sort     SortConfig     `toml:"sort"`
	Generate GenerateConfig `toml:"generate"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Sort: SortConfig{
			Rounds: 3,
		},
		Generate: GenerateConfig{
			N:    10000000,
			Max:  100000,
			Dist: string(gen.Uniform),
		},
	}
}

// Load reads the TOML file at path on top of the defaults. Keys that do not
// belong to the configuration are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %v", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown keys in config file %v: %v", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %v", path)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	if c.Sort.Rounds < 1 {
		return errors.Errorf("sort.rounds must be positive: %v", c.Sort.Rounds)
	}
	if c.Sort.Workers < 0 {
		return errors.Errorf("sort.workers must not be negative: %v", c.Sort.Workers)
	}
	if c.Generate.N < 0 {
		return errors.Errorf("generate.n must not be negative: %v", c.Generate.N)
	}
	if c.Generate.Max == 0 {
		return errors.New("generate.max must be positive")
	}
	if _, err := gen.ParseDistribution(c.Generate.Dist); err != nil {
		return errors.Wrap(err, "generate.dist")
	}
	return nil
}
