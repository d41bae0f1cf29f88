package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func defaultSystemCfg() *SystemCfg {
	return &SystemCfg{
		Log: logCfg{
			Level:  "info",
			Format: "text",
		},
		Demo: demoCfg{
			RunFor: 700 * time.Millisecond,
			Entries: []entryCfg{
				{Key: "a", Value: "1", TTL: 300 * time.Millisecond},
				{Key: "b", Value: "2", TTL: 500 * time.Millisecond},
			},
		},
	}
}

// Load reads a TOML config file on top of the defaults.
// A missing file is not an error, the defaults are returned as is.
func Load(path string) (*SystemCfg, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return defaultSystemCfg(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses config from a TOML document on top of the defaults.
// Demo entries given in the document replace the default ones entirely.
func Decode(data string) (*SystemCfg, error) {
	cfg := defaultSystemCfg()
	defaults := cfg.Demo.Entries
	cfg.Demo.Entries = nil

	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if !md.IsDefined("demo", "entries") {
		cfg.Demo.Entries = defaults
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SystemCfg) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if c.Demo.RunFor < 0 {
		return errors.New("demo.runFor must be >= 0")
	}
	for i, e := range c.Demo.Entries {
		if e.Key == "" {
			return errors.Errorf("demo.entries[%d]: key is required", i)
		}
		if e.TTL < 0 {
			return errors.Errorf("demo.entries[%d]: ttl must be >= 0", i)
		}
	}
	return nil
}
