// Package help prints the line editor's keyboard shortcuts.
package help

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type shortcut struct {
	keys   string
	action string
}

type section struct {
	title     string
	shortcuts []shortcut
}

var sections = []section{
	{"Moving", []shortcut{
		{"Ctrl-A, Home", "Move to the start of the line"},
		{"Ctrl-E, End", "Move to the end of the line"},
		{"Ctrl-B, Left", "Move back one character"},
		{"Ctrl-F, Right", "Move forward one character"},
		{"Meta-B", "Move back one word"},
		{"Meta-F", "Move forward one word"},
	}},
	{"Editing", []shortcut{
		{"Ctrl-H, Backspace", "Delete the character before the cursor"},
		{"Ctrl-D, Delete", "Delete the character under the cursor"},
		{"Ctrl-W", "Delete the word before the cursor"},
		{"Meta-D", "Delete the word after the cursor"},
		{"Ctrl-K", "Delete from the cursor to the end of the line"},
		{"Ctrl-U", "Delete from the start of the line to the cursor"},
		{"Ctrl-T", "Swap the two characters before the cursor"},
		{"Ctrl-L", "Clear the screen"},
	}},
	{"History", []shortcut{
		{"Ctrl-P, Up", "Previous prompt"},
		{"Ctrl-N, Down", "Next prompt"},
		{"Ctrl-R", "Search backwards through prompts"},
		{"Ctrl-S", "Search forwards through prompts"},
	}},
	{"Session", []shortcut{
		{"Enter", "Send the prompt"},
		{"commands", "Show this list"},
		{"Ctrl-C", "Exit"},
		{"Ctrl-D", "Exit when the line is empty"},
	}},
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().Width(20)
)

// Shortcuts writes the keyboard shortcut reference to w.
func Shortcuts(w io.Writer) {
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, titleStyle.Render(s.title))
		for _, sc := range s.shortcuts {
			fmt.Fprintf(w, "  %s %s\n", keyStyle.Render(sc.keys), sc.action)
		}
	}
}
