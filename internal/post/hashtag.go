package post

import "github.com/dlclark/regexp2"

// hashtagPattern matches a whole line holding a single #subject[_qualifier]
// tag. The subject is Latin, digits or Cyrillic А-я; the qualifier is any run
// of word characters.
var hashtagPattern = regexp2.MustCompile(`^\s*(#([a-zA-Z0-9А-я]+)(?:_(\w+))?)\s*$`, regexp2.None)

// Hashtag is the annotation parsed from the last line of a post.
type Hashtag struct {
	Tag       string // the matched tag, e.g. "#англ_B1"
	Subject   string // "англ"
	Qualifier string // "B1", empty when absent
}

// HasQualifier reports whether the tag carried a _qualifier suffix.
func (h Hashtag) HasQualifier() bool {
	return h.Qualifier != ""
}

// ParseHashtag matches line against the hashtag pattern.
func ParseHashtag(line string) (Hashtag, bool) {
	m, err := hashtagPattern.FindStringMatch(line)
	if err != nil || m == nil {
		return Hashtag{}, false
	}

	return Hashtag{
		Tag:       m.GroupByNumber(1).String(),
		Subject:   m.GroupByNumber(2).String(),
		Qualifier: m.GroupByNumber(3).String(),
	}, true
}
