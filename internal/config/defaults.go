package config

const (
	// DefaultFile is looked up in the working directory when --config is not given.
	DefaultFile = "ata.toml"

	// DefaultEndpoint is the completions API every turn is posted to.
	DefaultEndpoint = "https://api.openai.com/v1/completions"

	envPrefix = "ATA"
)
