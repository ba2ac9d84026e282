package config

import "strings"

// Config is the immutable record loaded once at startup.
type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int64
	Temperature float64
	Endpoint    string
}

// RedactedKey masks the API key down to its last four characters.
func (c Config) RedactedKey() string {
	if len(c.APIKey) < 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return "****" + c.APIKey[len(c.APIKey)-4:]
}
