package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the logger shared by the REPL and the API client.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "ata",
		Level:  level,
	})
}
