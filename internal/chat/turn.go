package chat

import (
	"context"

	"github.com/earlysvahn/ata/internal/config"
	"github.com/earlysvahn/ata/internal/render"
)

// Asker sends a prepared prompt to the completions endpoint.
type Asker interface {
	Ask(ctx context.Context, cfg config.Config, prompt string) (string, error)
}

// Turn is one prompt and the sanitized response it produced.
type Turn struct {
	Prompt   string
	Response string
}

// Run performs a single turn for the line the user typed.
func Run(ctx context.Context, asker Asker, cfg config.Config, line string) (Turn, error) {
	reply, err := asker.Ask(ctx, cfg, BuildPrompt(line))
	if err != nil {
		return Turn{}, err
	}
	return Turn{Prompt: line, Response: render.Sanitize(reply)}, nil
}
