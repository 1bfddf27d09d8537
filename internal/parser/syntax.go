package parser

import (
	"bytes"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightJSON renders a structured log body with terminal syntax
// highlighting. Any lexer or formatter failure returns the content
// untouched; a log line must never be lost to cosmetics.
func HighlightJSON(content string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, "json", "terminal256", "dracula"); err != nil {
		return content
	}
	return buf.String()
}
