// Package config loads tool configuration from the user's config file and
// environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ideaboard/editor"
)

// Config holds the settings the editor and storage layers care about.
type Config struct {
	DataDir       string  `mapstructure:"data_dir"`
	HistoryLimit  int     `mapstructure:"history_limit"`
	PlacementStep float64 `mapstructure:"placement_step"`
}

// Init wires viper to ~/.config/ideaboard/config.yaml (or an explicit
// file) with IDEABOARD_* environment overrides. A missing config file is
// fine; defaults cover everything.
func Init(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "ideaboard"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("IDEABOARD")

	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "ideaboard"))
	viper.SetDefault("history_limit", editor.DefaultHistoryLimit)
	viper.SetDefault("placement_step", editor.DefaultPlacementStep)

	_ = viper.ReadInConfig()
}

// Load materializes the current viper state.
func Load() Config {
	return Config{
		DataDir:       viper.GetString("data_dir"),
		HistoryLimit:  viper.GetInt("history_limit"),
		PlacementStep: viper.GetFloat64("placement_step"),
	}
}

// DatabasePath is where the board catalog lives.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "boards.db")
}
