package chat

import (
	"strings"

	"github.com/earlysvahn/ata/internal/render"
)

// promptSuffix nudges the completion model into answering as a new
// paragraph rather than continuing the user's sentence.
const promptSuffix = "\n\n"

// BuildPrompt turns an editor line into the prompt sent upstream: the line
// terminator is dropped, quotation marks are escaped and the two-newline
// suffix is appended.
func BuildPrompt(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return render.EscapeQuotes(line) + promptSuffix
}
