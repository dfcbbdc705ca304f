package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Decks    DecksConfig    `toml:"decks"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	UI       UIConfig       `toml:"ui"`
}

// DecksConfig says where named decks live.
type DecksConfig struct {
	Dir string `toml:"dir"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LogConfig holds file logging settings. Level is none, normal or debug.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ListMode       string `mapstructure:"list_mode" toml:"list_mode"`
	Transition     string `toml:"transition"`
	CodeStyle      string `mapstructure:"code_style" toml:"code_style"`
	ShowProgress   bool   `mapstructure:"show_progress" toml:"show_progress"`
	BackRevealsAll bool   `mapstructure:"back_reveals_all" toml:"back_reveals_all"`
}

// Path returns the config file location: STEPDECK_CONFIG or the default.
func Path() string {
	if p := os.Getenv("STEPDECK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "stepdeck", "config.toml")
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("decks.dir", filepath.Join(home, "slides"))
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "stepdeck", "stepdeck.db"))
	v.SetDefault("log.level", "normal")
	v.SetDefault("log.file", filepath.Join(home, ".cache", "stepdeck", "stepdeck.log"))
	v.SetDefault("ui.list_mode", "cumulative")
	v.SetDefault("ui.transition", "fade")
	v.SetDefault("ui.code_style", "monokai")
	v.SetDefault("ui.show_progress", true)
	v.SetDefault("ui.back_reveals_all", false)
}

// Load reads configuration from file and env. Env var overrides use prefix
// STEPDECK_. An explicit file overrides STEPDECK_CONFIG; a missing default
// file is not an error.
func Load(file string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	switch {
	case file != "":
		v.SetConfigFile(file)
	case os.Getenv("STEPDECK_CONFIG") != "":
		v.SetConfigFile(os.Getenv("STEPDECK_CONFIG"))
	default:
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "stepdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STEPDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path (Path() when empty), creating the directory.
func Save(cfg Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("decks.dir", cfg.Decks.Dir)
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("ui.list_mode", cfg.UI.ListMode)
	v.Set("ui.transition", cfg.UI.Transition)
	v.Set("ui.code_style", cfg.UI.CodeStyle)
	v.Set("ui.show_progress", cfg.UI.ShowProgress)
	v.Set("ui.back_reveals_all", cfg.UI.BackRevealsAll)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Dump renders cfg as TOML.
func Dump(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
