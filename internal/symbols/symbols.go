// Package symbols holds the ordered lookup tables behind notation expansion
// and the help text.
//
// Every table is an ordered slice rather than a map: replacement walks the
// entries in declaration order and later entries see the output of earlier
// ones, so the order is part of the behavior.
package symbols

import (
	"strings"
	"unicode/utf8"
)

// Entry maps a shorthand key to its display string.
type Entry struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Table is an ordered list of entries with unique keys.
type Table []Entry

// FunctionRule rewrites a named function. Pattern is matched
// case-insensitively against whole words.
type FunctionRule struct {
	Pattern     string `yaml:"pattern" json:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement"`
}

// Lookup returns the value stored under key.
func (t Table) Lookup(key string) (string, bool) {
	for _, e := range t {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in table order.
func (t Table) Keys() []string {
	keys := make([]string, len(t))
	for i, e := range t {
		keys[i] = e.Key
	}
	return keys
}

// Replace substitutes every occurrence of every key, one key at a time in
// table order. Text produced by an earlier entry can be matched again by a
// later one.
func (t Table) Replace(s string) string {
	for _, e := range t {
		if e.Key == "" {
			continue
		}
		s = strings.ReplaceAll(s, e.Key, e.Value)
	}
	return s
}

// RuneMap returns the single-rune entries of the table keyed by rune, for
// character-level translation.
func (t Table) RuneMap() map[rune]string {
	m := make(map[rune]string, len(t))
	for _, e := range t {
		if utf8.RuneCountInString(e.Key) != 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(e.Key)
		if _, ok := m[r]; !ok {
			m[r] = e.Value
		}
	}
	return m
}

// Translate maps s rune by rune through RuneMap. Runes without an entry are
// kept.
func Translate(s string, m map[rune]string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if v, ok := m[r]; ok {
			b.WriteString(v)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func concat(tables ...Table) Table {
	var n int
	for _, t := range tables {
		n += len(t)
	}
	out := make(Table, 0, n)
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}
