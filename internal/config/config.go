// Package config loads bigdec settings from a toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/avdva/bigdecimal"
	"github.com/avdva/bigdecimal/internal/logutil"
)

// FileName is the name of the config file.
const FileName = "bigdec.toml"

type Round struct {
	Mode      string `toml:"mode"`
	Precision int    `toml:"precision"`
}

type Log struct {
	Level string `toml:"level"`
}

// Config is the content of bigdec.toml:
//
//	[round]
//	mode = "halfUp"
//	precision = 2
//
//	[log]
//	level = "debug"
type Config struct {
	Round Round `toml:"round"`
	Log   Log   `toml:"log"`
}

// Default returns the config used when no file is found.
func Default() Config {
	return Config{
		Round: Round{
			Mode:      bigdecimal.DefaultRoundingMode.String(),
			Precision: bigdecimal.DefaultPrecision,
		},
		Log: Log{Level: "info"},
	}
}

// RoundingMode parses the configured rounding mode.
func (c Config) RoundingMode() (bigdecimal.RoundingMode, error) {
	return bigdecimal.ParseRoundingMode(c.Round.Mode)
}

// Validate checks the values, which can't be checked by the decoder.
func (c Config) Validate() error {
	if _, err := c.RoundingMode(); err != nil {
		return fmt.Errorf("round.mode: %w", err)
	}
	return nil
}

// SearchPaths returns the directories where the config file is looked for, in order.
func SearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "bigdec"))
	}
	return paths
}

// Load decodes the first valid config file found in dirs over the defaults.
// Files, that fail to decode or validate, are logged and skipped.
// Returns the config and the path of the file used, which is empty if there was none.
func Load(dirs []string) (Config, string) {
	for _, dirPath := range dirs {
		fpath := filepath.Join(dirPath, FileName)
		if !fileIsValid(fpath) {
			continue
		}
		cfg := Default()
		if _, err := toml.DecodeFile(fpath, &cfg); err != nil {
			logutil.Error("decoding config file failed", zap.String("fpath", fpath), zap.Error(err))
			continue
		}
		if err := cfg.Validate(); err != nil {
			logutil.Error("invalid config file", zap.String("fpath", fpath), zap.Error(err))
			continue
		}
		return cfg, fpath
	}
	return Default(), ""
}

func fileIsValid(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !stat.IsDir()
}
