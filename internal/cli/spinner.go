package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type spinnerModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
}

// doneMsg tells the spinner the work it was waiting on has returned.
type doneMsg struct{}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return spinnerModel{spinner: s, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// interrupts cancel the work a spinner is waiting on.
var interrupts = []os.Signal{os.Interrupt}

// ExecuteWithSpinner runs fn while a spinner animates on stderr. Ctrl+C
// cancels the context passed to fn. Without a terminal fn runs directly.
//
// The spinner never reads stdin: readline keeps a reader on it between
// prompts, so a key press could be swallowed by either side. The terminal
// stays in cooked mode and Ctrl+C arrives as SIGINT instead.
func ExecuteWithSpinner[T any](ctx context.Context, message string, fn func(context.Context) (T, error)) (T, error) {
	if !isTTY() {
		return fn(ctx)
	}

	ctx, stop := signal.NotifyContext(ctx, interrupts...)
	defer stop()

	return runWithSpinner(ctx, message, fn, tea.WithOutput(os.Stderr))
}

func runWithSpinner[T any](ctx context.Context, message string, fn func(context.Context) (T, error), opts ...tea.ProgramOption) (T, error) {
	var (
		result  T
		execErr error
	)
	done := make(chan struct{})

	opts = append([]tea.ProgramOption{tea.WithInput(nil), tea.WithoutSignalHandler()}, opts...)
	p := tea.NewProgram(newSpinnerModel(message), opts...)
	go func() {
		defer close(done)
		result, execErr = fn(ctx)
		p.Send(doneMsg{})
	}()

	// The spinner is cosmetic; if the program fails the request still runs
	// to completion.
	_, _ = p.Run()
	<-done
	return result, execErr
}

var isTTY = IsATTY

// IsATTY reports whether both stdin and stderr are terminals.
func IsATTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}
