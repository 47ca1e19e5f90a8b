// Package post recognizes schedule and hashtag posts and rewrites them into
// the canonical announcement layout.
package post

import (
	"strings"
	"unicode"
)

// Kind identifies which branch produced a post.
type Kind int

const (
	KindSchedule Kind = iota + 1 // weekday schedule
	KindNews                     // #НОВОСТИ
	KindSubject                  // any other #subject[_qualifier]
)

// Marker glyphs opening each canonical header.
const (
	ScheduleMarker = "📝"
	NewsMarker     = "📰"
	SubjectMarker  = "📓"
)

// Line prefixes and fixed labels.
const (
	PenPrefix   = "🖊"
	PlusPrefix  = "➕"
	ScheduleTag = "#расписание"
	NewsTitle   = "Новости"
)

// formattedMarkers fences off posts that are already canonical.
var formattedMarkers = [...]string{ScheduleMarker, NewsMarker, SubjectMarker}

// Marker returns the header glyph for the kind.
func (k Kind) Marker() string {
	switch k {
	case KindSchedule:
		return ScheduleMarker
	case KindNews:
		return NewsMarker
	case KindSubject:
		return SubjectMarker
	default:
		return ""
	}
}

// LinePrefix returns the glyph put in front of every body line.
func (k Kind) LinePrefix() string {
	if k == KindNews {
		return PlusPrefix
	}
	return PenPrefix
}

func (k Kind) String() string {
	switch k {
	case KindSchedule:
		return "schedule"
	case KindNews:
		return "news"
	case KindSubject:
		return "subject"
	default:
		return "unknown"
	}
}

// Post is a classified message ready to be rendered.
type Post struct {
	Kind  Kind
	Title string   // header label without the trailing colon
	Lines []string // body lines, undecorated
	Tag   string   // trailing hashtag
}

// Header returns the first line of the rendered post.
func (p Post) Header() string {
	return p.Kind.Marker() + " <b>" + p.Title + ":</b>"
}

// String renders the post: header, one decorated line per body line, and the
// tag last without a trailing newline.
func (p Post) String() string {
	prefix := p.Kind.LinePrefix()

	var b strings.Builder
	b.WriteString(p.Header())
	b.WriteByte('\n')
	for _, line := range p.Lines {
		b.WriteString(prefix)
		b.WriteByte(' ')
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(p.Tag)
	return b.String()
}

// isFormatted reports whether text already starts with a canonical marker.
func isFormatted(text string) bool {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	for _, m := range formattedMarkers {
		if strings.HasPrefix(s, m) {
			return true
		}
	}
	return false
}
