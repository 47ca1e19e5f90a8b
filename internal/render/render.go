// Package render formats the symbol tables as HTML help messages for a chat
// client.
package render

import (
	"strings"

	"github.com/f3rmion/texbot/internal/symbols"
	"github.com/mattn/go-runewidth"
)

// DefaultSplitLines is the number of lines sent per message when a help text
// is too long for one.
const DefaultSplitLines = 50

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeHTML escapes the characters that are significant in chat HTML markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Table renders t one entry per line: the key in a code span, then a padded
// colon so that values line up, then the value.
func Table(t symbols.Table) string {
	width := 0
	for _, e := range t {
		if w := runewidth.StringWidth(e.Key); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, e := range t {
		pad := width - runewidth.StringWidth(e.Key)
		b.WriteString("<code>")
		b.WriteString(EscapeHTML(e.Key))
		b.WriteString("</code> <code>")
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(":  ")
		b.WriteString(EscapeHTML(e.Value))
		b.WriteString("</code>\n")
	}
	return b.String()
}

// SplitLines breaks text into chunks for sending as separate messages. Every
// line is appended to its chunk with a leading newline. The first chunk holds
// perMessage lines and every later chunk one more, which matches how chunks
// were counted when the help text was first laid out.
func SplitLines(text string, perMessage int) []string {
	if perMessage <= 0 {
		perMessage = DefaultSplitLines
	}

	chunks := []string{""}
	count := 1
	for _, line := range strings.Split(text, "\n") {
		if count > perMessage {
			count = 1
			chunks = append(chunks, "")
		} else {
			count++
		}
		chunks[len(chunks)-1] += "\n" + line
	}
	return chunks
}
