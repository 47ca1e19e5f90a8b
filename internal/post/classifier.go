package post

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultWeekdays are the day names recognized on the first line of a
// schedule post.
var DefaultWeekdays = []string{
	"ПОНЕДЕЛЬНИК",
	"ВТОРНИК",
	"СРЕДА",
	"ЧЕТВЕРГ",
	"ПЯТНИЦА",
	"СУББОТА",
	"ВОСКРЕСЕНЬЕ",
}

// Subject names that do not follow the capitalize rule.
var subjectNames = map[string]string{
	"англ": "Английский язык",
	"ОБЖ":  "ОБЖ",
}

// Classifier turns raw channel posts into canonical announcements. It holds
// only read-only state and is safe for concurrent use.
type Classifier struct {
	weekdays map[string]struct{}
}

// NewClassifier creates a classifier recognizing the given weekday names,
// compared case-insensitively. An empty list selects DefaultWeekdays.
func NewClassifier(weekdays []string) *Classifier {
	if len(weekdays) == 0 {
		weekdays = DefaultWeekdays
	}

	c := &Classifier{weekdays: make(map[string]struct{}, len(weekdays))}
	for _, d := range weekdays {
		c.weekdays[upper(strings.TrimSpace(d))] = struct{}{}
	}
	return c
}

var defaultClassifier = NewClassifier(nil)

// Classify rewrites text with the default weekday names. The boolean is false
// when the message should be left as it is.
func Classify(text string) (string, bool) {
	return defaultClassifier.Classify(text)
}

// Classify rewrites text into its canonical form. The boolean is false when
// no rule applies or the text is already canonical.
func (c *Classifier) Classify(text string) (string, bool) {
	p, ok := c.Parse(text)
	if !ok {
		return "", false
	}
	return p.String(), true
}

// Parse classifies text without rendering it.
func (c *Classifier) Parse(text string) (Post, bool) {
	if isFormatted(text) {
		return Post{}, false
	}

	lines := strings.Split(text, "\n")

	day := strings.TrimSpace(lines[0])
	if c.IsWeekday(day) {
		return schedulePost(day, lines), true
	}

	tag, ok := ParseHashtag(lines[len(lines)-1])
	if !ok {
		return Post{}, false
	}
	body := lines[:len(lines)-1]

	if !tag.HasQualifier() && upper(tag.Subject) == upper(NewsTitle) {
		return Post{Kind: KindNews, Title: NewsTitle, Lines: body, Tag: tag.Tag}, true
	}

	return Post{Kind: KindSubject, Title: SubjectTitle(tag), Lines: body, Tag: tag.Tag}, true
}

// IsWeekday reports whether the trimmed line names a weekday.
func (c *Classifier) IsWeekday(line string) bool {
	_, ok := c.weekdays[upper(strings.TrimSpace(line))]
	return ok
}

func schedulePost(day string, lines []string) Post {
	body := lines[1:]
	if len(lines) > 1 {
		if _, ok := ParseHashtag(lines[len(lines)-1]); ok {
			body = lines[1 : len(lines)-1]
		}
	}

	return Post{
		Kind:  KindSchedule,
		Title: capitalize(cases.Lower(language.Russian).String(day)),
		Lines: body,
		Tag:   ScheduleTag,
	}
}

// SubjectTitle resolves the header label for a subject hashtag, including the
// parenthesized qualifier when present.
func SubjectTitle(tag Hashtag) string {
	name, ok := subjectNames[tag.Subject]
	if !ok {
		name = capitalize(tag.Subject)
	}
	if tag.HasQualifier() {
		name += " (" + tag.Qualifier + ")"
	}
	return name
}

// capitalize upper-cases the first rune and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func upper(s string) string {
	return cases.Upper(language.Russian).String(s)
}
