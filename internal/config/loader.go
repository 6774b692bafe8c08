package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"horde-arena/internal/commons/logger_config"
	"horde-arena/internal/world"
)

// EnvPrefix namespaces environment overrides, e.g. ARENA_MATCH_DURATION=120.
const EnvPrefix = "ARENA"

// Settings is everything a frontend needs before it builds a world.
type Settings struct {
	World    world.Config
	LogLevel string
}

// Load resolves settings in increasing priority: built-in defaults, the YAML
// file at path (skipped when empty), then ARENA_* environment variables.
// A .env file in the working directory is loaded into the environment first
// if present.
func Load(path string) (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	registerDefaults(v, world.DefaultConfig())
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
		logger_config.Infof("[config] loaded %s", v.ConfigFileUsed())
	}

	var s Settings
	if err := v.Unmarshal(&s.World); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	s.LogLevel = v.GetString("log_level")

	if err := s.World.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// registerDefaults sets a default for every mapstructure-tagged field so
// AutomaticEnv can resolve overrides for keys absent from the file.
func registerDefaults(v *viper.Viper, cfg world.Config) {
	rv := reflect.ValueOf(cfg)
	rt := rv.Type()
	for i := range rt.NumField() {
		key := rt.Field(i).Tag.Get("mapstructure")
		if key == "" || key == "-" {
			continue
		}
		v.SetDefault(key, rv.Field(i).Interface())
	}
}
