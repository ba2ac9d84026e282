package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/earlysvahn/ata/internal/chat"
	"github.com/earlysvahn/ata/internal/cli"
	"github.com/earlysvahn/ata/internal/config"
	"github.com/earlysvahn/ata/internal/help"
	"github.com/earlysvahn/ata/internal/render"
)

const welcome = "Ask the Terminal Anything. Type `commands` for a list of commands."

// lineReader is the part of *readline.Instance the REPL uses.
type lineReader interface {
	Readline() (string, error)
	SaveHistory(content string) error
}

type chatSession struct {
	cfg      config.Config
	asker    chat.Asker
	rl       lineReader
	out      io.Writer
	errOut   io.Writer
	log      *log.Logger
	markdown bool
	spinner  bool
}

// runChatMode runs the interactive REPL until Ctrl+C, Ctrl+D or an input error.
func runChatMode(ctx context.Context, s chatSession) error {
	fmt.Fprintln(s.out, welcome)

	for {
		// Read input
		line, err := s.rl.Readline()
		if err != nil {
			// Ctrl+C or Ctrl+D ends the session quietly
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintf(s.errOut, "Error: %v\n", err)
			return nil
		}

		// Skip empty input
		if strings.TrimSpace(line) == "" {
			continue
		}
		// History lives in memory only; SaveHistory never touches disk here.
		if err := s.rl.SaveHistory(line); err != nil {
			s.log.Warn("failed to record history", "err", err)
		}

		if strings.TrimSpace(line) == "commands" {
			help.Shortcuts(s.out)
			continue
		}

		turn, err := s.ask(ctx, line)
		if err != nil {
			// A failed turn drops back to the prompt; the session survives.
			s.log.Error("request failed", "err", err)
			continue
		}

		// Print response
		response := turn.Response
		if s.markdown {
			response = render.Markdown(response)
		}
		fmt.Fprintf(s.out, "\n%s\n\n", response)
	}
}

func (s chatSession) ask(ctx context.Context, line string) (chat.Turn, error) {
	run := func(ctx context.Context) (chat.Turn, error) {
		return chat.Run(ctx, s.asker, s.cfg, line)
	}
	if !s.spinner {
		return run(ctx)
	}
	return cli.ExecuteWithSpinner(ctx, "Thinking…", run)
}
