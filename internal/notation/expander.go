// Package notation expands TeX-like math shorthand into Unicode text.
package notation

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/f3rmion/texbot/internal/symbols"
)

// Digit-level patterns only ever see ASCII, so RE2 is enough for them.
var (
	powerParenPattern = regexp.MustCompile(`\^\((-?\+?\d+)\)`)
	powerPattern      = regexp.MustCompile(`\^(-?\+?\d+)`)
	indexPattern      = regexp.MustCompile(`([a-zA-Z])(\d+)`)
	radixPattern      = regexp.MustCompile(`(\d)_(-?\+?\d+)`)
)

// Word-level patterns need Unicode word characters and boundaries.
var rootConstPattern = regexp2.MustCompile(`(\w+)\(\s*(\d+)\s*\)`, regexp2.None)

// Stage is one named rewrite step of the pipeline.
type Stage struct {
	Name  string
	Apply func(string) string
}

// StageResult records the text after a stage ran.
type StageResult struct {
	Stage   string
	Output  string
	Changed bool
}

type wordRule struct {
	pattern     *regexp2.Regexp
	replacement string
}

// Expander rewrites shorthand notation through a fixed sequence of stages.
// An Expander holds only read-only state and is safe for concurrent use.
type Expander struct {
	superscript map[rune]string
	functions   []wordRule
	constants   []wordRule
	stages      []Stage
}

// New creates an expander over the built-in symbol tables.
func New() *Expander {
	e := &Expander{
		superscript: symbols.Superscript.RuneMap(),
		functions:   compileFunctions(symbols.Functions),
		constants:   compileConstants(symbols.Constants),
	}

	e.stages = []Stage{
		{Name: "power_parens", Apply: e.powerParens},
		{Name: "power", Apply: e.power},
		{Name: "letter_index", Apply: e.letterIndex},
		{Name: "radix_index", Apply: e.radixIndex},
		{Name: "root_const", Apply: e.rootConst},
		{Name: "main_macros", Apply: symbols.MainMacros.Replace},
		{Name: "full_macros", Apply: symbols.FullMacros.Replace},
		{Name: "operators", Apply: symbols.Operators.Replace},
		{Name: "functions", Apply: func(s string) string { return replaceWords(s, e.functions) }},
		{Name: "constants", Apply: func(s string) string { return replaceWords(s, e.constants) }},
	}

	return e
}

var defaultExpander = New()

// Expand rewrites text with the default expander.
func Expand(text string) string {
	return defaultExpander.Expand(text)
}

// Expand runs every stage in order. Text that no stage recognizes is
// returned unchanged.
func (e *Expander) Expand(text string) string {
	for _, st := range e.stages {
		text = st.Apply(text)
	}
	return text
}

// Trace runs the pipeline like Expand and reports the text after each stage.
func (e *Expander) Trace(text string) []StageResult {
	results := make([]StageResult, 0, len(e.stages))
	for _, st := range e.stages {
		out := st.Apply(text)
		results = append(results, StageResult{Stage: st.Name, Output: out, Changed: out != text})
		text = out
	}
	return results
}

// Stages returns the pipeline in execution order.
func (e *Expander) Stages() []Stage {
	out := make([]Stage, len(e.stages))
	copy(out, e.stages)
	return out
}

// powerParens handles x^(-3): the signed integer is translated rune by rune
// and the caret and parentheses are dropped.
func (e *Expander) powerParens(s string) string {
	return replaceSubmatch(powerParenPattern, s, func(groups []string) string {
		return symbols.Translate(groups[1], e.superscript)
	})
}

// power handles x^-3 through ordered key replacement over the superscript
// table rather than translation.
func (e *Expander) power(s string) string {
	return replaceSubmatch(powerPattern, s, func(groups []string) string {
		return symbols.Superscript.Replace(groups[1])
	})
}

func (e *Expander) letterIndex(s string) string {
	return replaceSubmatch(indexPattern, s, func(groups []string) string {
		return groups[1] + symbols.Subscript.Replace(groups[2])
	})
}

// radixIndex handles 10_2: the number keeps its last digit and the base is
// written as a subscript right after it.
func (e *Expander) radixIndex(s string) string {
	return replaceSubmatch(radixPattern, s, func(groups []string) string {
		return groups[1] + symbols.Subscript.Replace(groups[2])
	})
}

// rootConst handles sqrt(2). Names missing from the table keep their span
// untouched.
func (e *Expander) rootConst(s string) string {
	out, err := rootConstPattern.ReplaceFunc(s, func(m regexp2.Match) string {
		name := m.GroupByNumber(1).String()
		sym, ok := symbols.RootConsts.Lookup(strings.ToLower(name))
		if !ok {
			return m.String()
		}
		return sym + m.GroupByNumber(2).String()
	}, -1, -1)
	if err != nil {
		return s
	}
	return out
}

func compileFunctions(rules []symbols.FunctionRule) []wordRule {
	out := make([]wordRule, len(rules))
	for i, r := range rules {
		out[i] = wordRule{
			pattern:     regexp2.MustCompile(r.Pattern, regexp2.IgnoreCase),
			replacement: r.Replacement,
		}
	}
	return out
}

func compileConstants(table symbols.Table) []wordRule {
	out := make([]wordRule, len(table))
	for i, e := range table {
		out[i] = wordRule{
			pattern:     regexp2.MustCompile(regexp2.Escape(e.Key), regexp2.IgnoreCase),
			replacement: e.Value,
		}
	}
	return out
}

// replaceWords applies each rule across the whole text in order. Only the
// matched span is rewritten, so surrounding text keeps its casing.
func replaceWords(s string, rules []wordRule) string {
	for _, r := range rules {
		replacement := r.replacement
		out, err := r.pattern.ReplaceFunc(s, func(regexp2.Match) string {
			return replacement
		}, -1, -1)
		if err != nil {
			continue
		}
		s = out
	}
	return s
}

// replaceSubmatch is ReplaceAllStringFunc with access to the capture groups.
func replaceSubmatch(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
