// Package config resolves runtime settings from an optional config file,
// ABAQIRA_* environment variables, a .env file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ABAQIRA"

// Config holds application settings.
type Config struct {
	Env       string `mapstructure:"env"`        // local, production
	DataDir   string `mapstructure:"data_dir"`   // dataset directory; empty uses the bundled datasets
	AssetsDir string `mapstructure:"assets_dir"` // root for cover and question images
	Log       Log    `mapstructure:"log"`
}

// Log configures the file logger.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// IsProduction reports whether production logging should be used.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit config path; empty searches the defaults.
	ConfigFile string
	// Flags, when set, override file and environment values for the flags
	// named data-dir, assets-dir and log-file.
	Flags *pflag.FlagSet
}

// Load reads configuration. Missing config and .env files are not errors.
func Load(opts Options) (*Config, error) {
	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("env", "local")
	v.SetDefault("data_dir", "")
	v.SetDefault("assets_dir", "public")
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("abaqira")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "abaqira"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if opts.Flags != nil {
		for key, flag := range map[string]string{
			"data_dir":   "data-dir",
			"assets_dir": "assets-dir",
			"log.file":   "log-file",
		} {
			if f := opts.Flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// defaultLogFile returns $XDG_STATE_HOME/abaqira/abaqira.log, falling back
// to ~/.local/state.
func defaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "abaqira.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "abaqira", "abaqira.log")
}
