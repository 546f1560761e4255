// Package config loads habitd's configuration: an optional config.yaml in
// the user config directory, with every value defaulted and overridable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Tracker TrackerConfig `mapstructure:"tracker"`
	Heatmap HeatmapConfig `mapstructure:"heatmap"`
}

type StorageConfig struct {
	// Path to the SQLite database file holding both stores.
	Path string `mapstructure:"path"`
}

type TrackerConfig struct {
	// DefaultActivity is created when the catalog loads empty, so a session
	// always starts with at least one activity type.
	DefaultActivity string `mapstructure:"default_activity"`
}

type HeatmapConfig struct {
	Weeks       int    `mapstructure:"weeks"`
	FilledColor string `mapstructure:"filled_color"`
	EmptyColor  string `mapstructure:"empty_color"`
}

const appDirName = "habitd"

func Default() Config {
	return Config{
		Storage: StorageConfig{Path: defaultDatabasePath()},
		Tracker: TrackerConfig{DefaultActivity: "🏞️  Meditate"},
		Heatmap: HeatmapConfig{
			Weeks:       26,
			FilledColor: "#39d353",
			EmptyColor:  "#3a3f44",
		},
	}
}

// Load reads the config file at path, or searches the app config directory
// when path is empty. A missing file yields the defaults; a present but
// malformed file is an error.
func Load(path string) (Config, error) {
	defaults := Default()

	v := viper.New()
	v.SetDefault("storage.path", defaults.Storage.Path)
	v.SetDefault("tracker.default_activity", defaults.Tracker.DefaultActivity)
	v.SetDefault("heatmap.weeks", defaults.Heatmap.Weeks)
	v.SetDefault("heatmap.filled_color", defaults.Heatmap.FilledColor)
	v.SetDefault("heatmap.empty_color", defaults.Heatmap.EmptyColor)
	v.SetEnvPrefix("HABITD")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := AppDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || (path == "" && os.IsNotExist(err))
		if !missing {
			return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.Heatmap.Weeks <= 0 {
		cfg.Heatmap.Weeks = defaults.Heatmap.Weeks
	}
	return cfg, nil
}

// AppDir is habitd's directory under the user config dir.
func AppDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func defaultDatabasePath() string {
	dir, err := AppDir()
	if err != nil {
		return appDirName + ".db"
	}
	return filepath.Join(dir, appDirName+".db")
}
