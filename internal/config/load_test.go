package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ata.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api_key = "sk-test-1234"
model = "text-davinci-003"
max_tokens = 500
temperature = 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		APIKey:      "sk-test-1234",
		Model:       "text-davinci-003",
		MaxTokens:   500,
		Temperature: 0,
		Endpoint:    DefaultEndpoint,
	}, cfg)
}

func TestLoadFractionalTemperatureAndEndpoint(t *testing.T) {
	path := writeConfig(t, `
api_key = "sk-test"
model = "gpt-3.5-turbo-instruct"
max_tokens = 64
temperature = 0.7
endpoint = "http://localhost:8080/v1/completions"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
	assert.Equal(t, "http://localhost:8080/v1/completions", cfg.Endpoint)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not toml", `api_key = "unterminated`},
		{"missing api_key", "model = \"m\"\nmax_tokens = 1\ntemperature = 0\n"},
		{"missing model", "api_key = \"k\"\nmax_tokens = 1\ntemperature = 0\n"},
		{"missing max_tokens", "api_key = \"k\"\nmodel = \"m\"\ntemperature = 0\n"},
		{"missing temperature", "api_key = \"k\"\nmodel = \"m\"\nmax_tokens = 1\n"},
		{"max_tokens not an integer", "api_key = \"k\"\nmodel = \"m\"\nmax_tokens = \"lots\"\ntemperature = 0\n"},
		{"max_tokens negative", "api_key = \"k\"\nmodel = \"m\"\nmax_tokens = -5\ntemperature = 0\n"},
		{"model not a string", "api_key = \"k\"\nmodel = 3\nmax_tokens = 1\ntemperature = 0\n"},
		{"empty api_key", "api_key = \"\"\nmodel = \"m\"\nmax_tokens = 1\ntemperature = 0\n"},
		{"temperature out of range", "api_key = \"k\"\nmodel = \"m\"\nmax_tokens = 1\ntemperature = 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ATA_API_KEY", "sk-from-env")
	t.Setenv("ATA_MAX_TOKENS", "42")
	path := writeConfig(t, "model = \"m\"\nmax_tokens = 1\ntemperature = 1\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.APIKey)
	assert.Equal(t, int64(42), cfg.MaxTokens)
}

func TestRedactedKey(t *testing.T) {
	assert.Equal(t, "****abcd", Config{APIKey: "sk-xyzabcd"}.RedactedKey())
	assert.Equal(t, "***", Config{APIKey: "abc"}.RedactedKey())
}
