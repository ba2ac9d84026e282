package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrNotFound is returned when the config file does not exist.
	ErrNotFound = errors.New("config file not found")
	// ErrParse is returned when the config file does not match the expected schema.
	ErrParse = errors.New("invalid config")
)

// Load reads the TOML file at path. ATA_* environment variables override
// the values found in the file.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Config{}, fmt.Errorf("stat %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	var err error

	if cfg.APIKey, err = requireString(v, "api_key"); err != nil {
		return Config{}, err
	}
	if cfg.Model, err = requireString(v, "model"); err != nil {
		return Config{}, err
	}
	if cfg.MaxTokens, err = requireInt(v, "max_tokens"); err != nil {
		return Config{}, err
	}
	if cfg.MaxTokens <= 0 {
		return Config{}, fmt.Errorf("%w: max_tokens must be positive, got %d", ErrParse, cfg.MaxTokens)
	}
	if cfg.Temperature, err = requireNumber(v, "temperature"); err != nil {
		return Config{}, err
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return Config{}, fmt.Errorf("%w: temperature must be between 0 and 2, got %g", ErrParse, cfg.Temperature)
	}

	cfg.Endpoint = DefaultEndpoint
	if v.IsSet("endpoint") {
		endpoint, err := requireString(v, "endpoint")
		if err != nil {
			return Config{}, err
		}
		cfg.Endpoint = endpoint
	}
	return cfg, nil
}

func requireString(v *viper.Viper, key string) (string, error) {
	if !v.IsSet(key) {
		return "", fmt.Errorf("%w: missing field %q", ErrParse, key)
	}
	s, ok := v.Get(key).(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q must be a string", ErrParse, key)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: field %q is empty", ErrParse, key)
	}
	return s, nil
}

// Environment values always arrive as strings, so numeric fields accept the
// string form too.
func requireInt(v *viper.Viper, key string) (int64, error) {
	if !v.IsSet(key) {
		return 0, fmt.Errorf("%w: missing field %q", ErrParse, key)
	}
	switch n := v.Get(key).(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: field %q must be an integer", ErrParse, key)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: field %q must be an integer", ErrParse, key)
	}
}

func requireNumber(v *viper.Viper, key string) (float64, error) {
	if !v.IsSet(key) {
		return 0, fmt.Errorf("%w: missing field %q", ErrParse, key)
	}
	var f float64
	switch n := v.Get(key).(type) {
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: field %q must be a number", ErrParse, key)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: field %q must be a number", ErrParse, key)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: field %q must be a finite number", ErrParse, key)
	}
	return f, nil
}
