package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/fang"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/earlysvahn/ata/internal/cli"
	"github.com/earlysvahn/ata/internal/config"
	"github.com/earlysvahn/ata/internal/help"
	"github.com/earlysvahn/ata/internal/openai"
)

type rootOptions struct {
	configPath     string
	printShortcuts bool
	markdown       bool
	debug          bool
}

// NewRootCommand builds the ata command.
func NewRootCommand(version string) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:     "ata",
		Short:   "Ask the Terminal Anything: OpenAI completions in the terminal",
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unrecognized subcommand %q", args[0])
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.printShortcuts {
				help.Shortcuts(cmd.OutOrStdout())
				return nil
			}
			return runRoot(cmd, opts)
		},
	}

	// With no subcommands registered cobra adds no `help` command either, so
	// `ata help` falls through to Args like any other word.
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("unrecognized argument: %w", err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultFile, "path to the configuration TOML file")
	flags.BoolVar(&opts.printShortcuts, "print-shortcuts", false, "print the keyboard shortcuts")
	flags.BoolVar(&opts.markdown, "markdown", false, "render responses as markdown")
	flags.BoolVar(&opts.debug, "debug", false, "log requests and responses")

	return cmd
}

// Execute runs root through fang. Errors are printed as they are, so the
// messages stay greppable and multi-line hints keep their shape.
func Execute(ctx context.Context, root *cobra.Command) error {
	return fang.Execute(ctx, root,
		fang.WithVersion(root.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithErrorHandler(printError),
	)
}

func printError(w io.Writer, styles fang.Styles, err error) {
	_, _ = fmt.Fprintln(w, styles.ErrorHeader.String())
	_, _ = fmt.Fprintln(w, err.Error())
}

func runRoot(cmd *cobra.Command, opts rootOptions) error {
	logger := cli.NewLogger(cmd.ErrOrStderr(), opts.debug)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("%w\n%s", err, usageHint(cmd))
		}
		return err
	}
	logger.Debug("config loaded", "path", opts.configPath, "model", cfg.Model, "key", cfg.RedactedKey())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 cfg.Model + "> ",
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	return runChatMode(cmd.Context(), chatSession{
		cfg:      cfg,
		asker:    openai.NewClient(logger),
		rl:       rl,
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		log:      logger,
		markdown: opts.markdown,
		spinner:  cli.IsATTY(),
	})
}

func usageHint(cmd *cobra.Command) string {
	return fmt.Sprintf("Usage: `%s --config=<Path to ata.toml>` or have ata.toml in the current dir.", cmd.Root().Name())
}
