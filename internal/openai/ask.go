package openai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/earlysvahn/ata/internal/config"
)

var (
	// ErrNetwork wraps transport failures talking to the completions endpoint.
	ErrNetwork = errors.New("completion request failed")
	// ErrResponseParse wraps replies that are not the expected JSON document.
	ErrResponseParse = errors.New("unreadable completion response")
)

// Client posts prompts to a completions endpoint.
type Client struct {
	HTTP *http.Client
	Log  *log.Logger
}

// NewClient returns a Client with no request timeout; a turn waits until the
// endpoint answers or the context is cancelled.
func NewClient(logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{HTTP: &http.Client{}, Log: logger}
}

// BuildPayload serializes the completion request body.
func BuildPayload(cfg config.Config, prompt string) ([]byte, error) {
	var (
		body []byte
		err  error
	)
	fields := []struct {
		path  string
		value any
	}{
		{"model", cfg.Model},
		{"prompt", prompt},
		{"max_tokens", cfg.MaxTokens},
		{"temperature", cfg.Temperature},
	}
	for _, f := range fields {
		if body, err = sjson.SetBytes(body, f.path, f.value); err != nil {
			return nil, fmt.Errorf("marshal request %s: %w", f.path, err)
		}
	}
	return body, nil
}

// Ask sends one prompt and returns the generated text. An error reported by
// the API is returned as the text itself so it can be shown inline.
func (c *Client) Ask(ctx context.Context, cfg config.Config, prompt string) (string, error) {
	b, err := BuildPayload(cfg, prompt)
	if err != nil {
		return "", err
	}

	// Fall back to the public endpoint when none is configured
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	c.Log.Debug("sending completion request",
		"endpoint", endpoint,
		"model", cfg.Model,
		"key", cfg.RedactedKey(),
		"max_tokens", cfg.MaxTokens,
		"prompt_bytes", len(prompt))

	// No retry: a failed turn goes straight back to the prompt
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	c.Log.Debug("completion response", "status", resp.StatusCode, "bytes", len(raw))

	return parseReply(raw, resp.StatusCode)
}

func parseReply(raw []byte, status int) (string, error) {
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("%w: status %d: body is not JSON", ErrResponseParse, status)
	}
	reply := gjson.ParseBytes(raw)

	// API errors are shown to the user as the reply text
	if apiErr := reply.Get("error"); apiErr.Exists() && apiErr.Type != gjson.Null {
		if msg := apiErr.Get("message"); msg.Exists() {
			return msg.String(), nil
		}
		return apiErr.Raw, nil
	}

	// Only the first choice is used
	text := reply.Get("choices.0.text")
	if !text.Exists() {
		return "", fmt.Errorf("%w: status %d: no choices in reply", ErrResponseParse, status)
	}
	return text.String(), nil
}
