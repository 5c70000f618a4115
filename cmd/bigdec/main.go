// Command bigdec is a command line calculator for arbitrary-precision decimals.
//
//	bigdec add 0.1 0.2
//	bigdec round 2.675 --mode halfUp --precision 2
//	bigdec convert 1.23456789 --to fixed
//	bigdec mul -- 10.325 -2.5
//
// Negative operands must follow "--", otherwise they are taken for flags.
// Rounding and logging defaults are read from bigdec.toml, see internal/config.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/avdva/bigdecimal/internal/config"
	"github.com/avdva/bigdecimal/internal/logutil"
)

// app holds settings shared by all commands.
// Flags are bound to v, and the config file is applied to v as defaults,
// so a flag overrides the file, and the file overrides built-in defaults.
type app struct {
	v *viper.Viper
}

func newApp() *app {
	a := &app{v: viper.New()}
	a.applyConfig(config.Default())
	return a
}

func (a *app) applyConfig(cfg config.Config) {
	a.v.SetDefault("round.mode", cfg.Round.Mode)
	a.v.SetDefault("round.precision", cfg.Round.Precision)
	a.v.SetDefault("log.level", cfg.Log.Level)
}

// loadConfig is run by cobra after flags are parsed.
func (a *app) loadConfig() {
	// config errors are logged with the default level.
	_ = logutil.Init(config.Default().Log.Level)
	cfg, fpath := config.Load(config.SearchPaths())
	a.applyConfig(cfg)
	level := a.v.GetString("log.level")
	if err := logutil.Init(level); err != nil {
		logutil.Error("bad log level", zap.String("level", level), zap.Error(err))
	}
	if len(fpath) > 0 {
		logutil.Debug("config loaded", zap.String("fpath", fpath))
	}
}

func main() {
	a := newApp()
	cobra.OnInitialize(a.loadConfig)
	err := a.rootCmd().Execute()
	logutil.Sync()
	if err != nil {
		os.Exit(1)
	}
}
