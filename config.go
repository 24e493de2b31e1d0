package keycolor

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk form of a Key. Empty fields fall back to DefaultKey.
//
//	target = "#03a9f4"
//	tolerance = 0
//	mode = "keep"
type Config struct {
	Target    string `toml:"target"`
	Tolerance *int   `toml:"tolerance"`
	Mode      string `toml:"mode"`
}

// LoadConfig reads a TOML config file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// Key converts the config into a Key, validating every field that is set.
func (c Config) Key() (Key, error) {
	key := DefaultKey()

	if c.Target != "" {
		target, err := ParseColor(c.Target)
		if err != nil {
			return Key{}, err
		}
		key.Target = target
	}

	if c.Tolerance != nil {
		tol, err := ParseTolerance(*c.Tolerance)
		if err != nil {
			return Key{}, err
		}
		key.Tolerance = tol
	}

	if c.Mode != "" {
		mode, err := ParseMode(c.Mode)
		if err != nil {
			return Key{}, err
		}
		key.Mode = mode
	}

	return key, nil
}

// ParseTolerance validates a per-channel tolerance.
func ParseTolerance(v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("tolerance %d out of range [0, 255]", v)
	}
	return uint8(v), nil
}
