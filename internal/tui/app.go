package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/texbot/internal/clipboard"
	"github.com/f3rmion/texbot/internal/logging"
	"github.com/f3rmion/texbot/internal/notation"
	"github.com/f3rmion/texbot/internal/post"
	gocache "github.com/patrickmn/go-cache"
)

const (
	resultTTL     = 10 * time.Minute
	resultCleanup = time.Minute
)

// Mode selects which engine the playground feeds the input through.
type Mode int

const (
	ModeExpand Mode = iota
	ModeClassify
)

func (m Mode) String() string {
	if m == ModeClassify {
		return "Classify"
	}
	return "Expand"
}

// Clipboard messages
type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// copyFunc is swapped out in tests.
var copyFunc = clipboard.Write

// result is the derived view of one input in one mode.
type result struct {
	output  string
	kind    post.Kind
	matched bool
	trace   []notation.StageResult
}

// AppModel is the Bubble Tea model for the playground.
type AppModel struct {
	expander   *notation.Expander
	classifier *post.Classifier
	// Every key press re-renders; results are keyed by mode and input.
	results *gocache.Cache

	input textarea.Model
	mode  Mode

	// Derived from input on every edit
	output    string
	kind      post.Kind
	matched   bool
	trace     []notation.StageResult
	showTrace bool

	copied  bool
	copyErr error

	width    int
	height   int
	ready    bool
	showHelp bool
}

// NewApp creates the playground model.
func NewApp(expander *notation.Expander, classifier *post.Classifier) AppModel {
	ta := textarea.New()
	ta.Placeholder = "Type notation like x^2 + \\alpha -> sqrt(4), or paste a channel post..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(8)
	ta.Focus()

	return AppModel{
		expander:   expander,
		classifier: classifier,
		results:    gocache.New(resultTTL, resultCleanup),
		input:      ta,
	}
}

// Init initializes the model.
func (m AppModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = true
			return m, nil
		case "tab":
			m.mode = (m.mode + 1) % 2
			m.refresh()
			return m, nil
		case "ctrl+t":
			m.showTrace = !m.showTrace
			return m, nil
		case "ctrl+y":
			if m.output == "" {
				return m, nil
			}
			if err := copyFunc(m.output); err != nil {
				logging.Logger.Debugw("copy failed", logging.FieldError, err)
				m.copyErr = err
				return m, nil
			}
			m.copied = true
			m.copyErr = nil
			return m, clearCopiedAfter(2 * time.Second)
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if w := msg.Width - 6; w > 20 {
			m.input.SetWidth(w)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh recomputes the output for the current input and mode.
func (m *AppModel) refresh() {
	text := m.input.Value()
	key := m.mode.String() + "\x00" + text

	r, ok := m.cached(key)
	if !ok {
		r = m.compute(text)
		m.results.Set(key, r, gocache.DefaultExpiration)
	}

	m.output, m.kind, m.matched, m.trace = r.output, r.kind, r.matched, r.trace
}

func (m *AppModel) cached(key string) (result, bool) {
	if v, found := m.results.Get(key); found {
		return v.(result), true
	}
	return result{}, false
}

func (m *AppModel) compute(text string) result {
	switch m.mode {
	case ModeClassify:
		p, ok := m.classifier.Parse(text)
		if !ok {
			return result{output: text}
		}
		return result{output: p.String(), kind: p.Kind, matched: true}
	default:
		trace := m.expander.Trace(text)
		out := text
		if n := len(trace); n > 0 {
			out = trace[n-1].Output
		}
		return result{output: out, trace: trace}
	}
}

// View renders the UI.
func (m AppModel) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	header := TitleStyle.Render("  texbot  ") + "  " +
		SubtitleStyle.Render("Notation & Post Playground")
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	b.WriteString(InputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	if m.output != "" {
		b.WriteString(OutputBoxStyle.Render(ValueStyle.Render(m.output)))
		b.WriteString("\n")
	}

	if m.mode == ModeExpand && m.showTrace {
		b.WriteString(m.renderTrace())
	}

	b.WriteString("\n")
	help := []string{"tab: mode", "ctrl+y: copy", "f1: help", "esc: quit"}
	if m.mode == ModeExpand {
		help = append([]string{"ctrl+t: trace"}, help...)
	}
	b.WriteString(HelpStyle.Render("  " + strings.Join(help, " • ")))

	return b.String()
}

func (m AppModel) renderTabs() string {
	var tabs []string
	for _, mode := range []Mode{ModeExpand, ModeClassify} {
		style := TabStyle
		if mode == m.mode {
			style = TabActiveStyle
		}
		tabs = append(tabs, style.Render(mode.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AppModel) renderStatus() string {
	var parts []string

	if m.mode == ModeClassify && strings.TrimSpace(m.input.Value()) != "" {
		if m.matched {
			parts = append(parts, KindStyle.Render("  "+m.kind.String()))
		} else {
			parts = append(parts, HelpStyle.Render("  no match, text left as is"))
		}
	}

	if m.copied {
		parts = append(parts, CopiedStyle.Render("  ✓ Copied!"))
	} else if m.copyErr != nil {
		parts = append(parts, ErrorStyle.Render("  "+m.copyErr.Error()))
	}

	return strings.Join(parts, "")
}

func (m AppModel) renderTrace() string {
	var b strings.Builder
	for _, r := range m.trace {
		style := StageNameStyle
		if r.Changed {
			style = StageChangedStyle
		}
		b.WriteString("  ")
		b.WriteString(style.Render(r.Stage))
		if r.Changed {
			b.WriteString(ValueStyle.Render(r.Output))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	helpText := titleStyle.Render("texbot playground") + "\n\n"

	helpText += sectionStyle.Render("Keys") + "\n"
	helpText += keyStyle.Render("tab") + descStyle.Render("Switch expand/classify") + "\n"
	helpText += keyStyle.Render("ctrl+t") + descStyle.Render("Toggle stage trace") + "\n"
	helpText += keyStyle.Render("ctrl+y") + descStyle.Render("Copy output") + "\n"
	helpText += keyStyle.Render("f1") + descStyle.Render("Show this help") + "\n"
	helpText += keyStyle.Render("esc") + descStyle.Render("Quit") + "\n"

	helpText += sectionStyle.Render("Expand") + "\n"
	helpText += keyStyle.Render("x^2 x^(-1)") + descStyle.Render("Superscripts") + "\n"
	helpText += keyStyle.Render("a1 10_2") + descStyle.Render("Subscripts") + "\n"
	helpText += keyStyle.Render("\\alpha") + descStyle.Render("Macros") + "\n"
	helpText += keyStyle.Render("-> <= !=") + descStyle.Render("Operators") + "\n"

	helpText += sectionStyle.Render("Classify") + "\n"
	helpText += keyStyle.Render("ПОНЕДЕЛЬНИК") + descStyle.Render("Schedule post") + "\n"
	helpText += keyStyle.Render("#новости") + descStyle.Render("News post") + "\n"
	helpText += keyStyle.Render("#предмет") + descStyle.Render("Subject post") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2).
		Width(50)

	helpBox := boxStyle.Render(helpText)
	if !m.ready {
		return helpBox
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
