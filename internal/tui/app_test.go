package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/texbot/internal/notation"
	"github.com/f3rmion/texbot/internal/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() AppModel {
	return NewApp(notation.New(), post.NewClassifier(nil))
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func setInput(m AppModel, text string) AppModel {
	m.input.SetValue(text)
	m.refresh()
	return m
}

func stubCopy(t *testing.T, fn func(string) error) {
	prev := copyFunc
	copyFunc = fn
	t.Cleanup(func() { copyFunc = prev })
}

func TestTypingExpandsLive(t *testing.T) {
	m := newTestApp()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x^2")})

	assert.Equal(t, ModeExpand, m.mode)
	assert.Equal(t, "x²", m.output)
	require.Len(t, m.trace, len(notation.New().Stages()))
}

func TestTabSwitchesMode(t *testing.T) {
	m := setInput(newTestApp(), "ПОНЕДЕЛЬНИК\n1. Алгебра")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeClassify, m.mode)
	assert.True(t, m.matched)
	assert.Equal(t, post.KindSchedule, m.kind)
	assert.Equal(t, "📝 <b>Понедельник:</b>\n🖊 1. Алгебра\n#расписание", m.output)
	assert.Contains(t, m.View(), "schedule")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeExpand, m.mode)
}

func TestClassifyNoMatchKeepsText(t *testing.T) {
	m := newTestApp()
	m.mode = ModeClassify
	m = setInput(m, "just a note")

	assert.False(t, m.matched)
	assert.Equal(t, "just a note", m.output)
	assert.Contains(t, m.View(), "no match")
}

func TestCopy(t *testing.T) {
	var got string
	stubCopy(t, func(s string) error {
		got = s
		return nil
	})

	m := setInput(newTestApp(), `\alpha`)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	assert.True(t, m.copied)
	assert.Equal(t, "α", got)
	assert.Contains(t, m.View(), "Copied")

	m, _ = update(t, m, clearCopiedMsg{})
	assert.False(t, m.copied)
}

func TestCopyError(t *testing.T) {
	stubCopy(t, func(string) error { return errors.New("no clipboard") })

	m := setInput(newTestApp(), "x^2")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd)
	assert.False(t, m.copied)
	assert.Contains(t, m.View(), "no clipboard")
}

func TestCopyEmptyOutputIsNoop(t *testing.T) {
	stubCopy(t, func(string) error {
		t.Fatal("copy should not be called")
		return nil
	})

	m, cmd := update(t, newTestApp(), tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd)
	assert.False(t, m.copied)
}

func TestTraceToggle(t *testing.T) {
	m := setInput(newTestApp(), `\alpha`)
	assert.NotContains(t, m.View(), "main_macros")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, m.showTrace)
	assert.Contains(t, m.View(), "main_macros")
}

func TestHelpOverlay(t *testing.T) {
	m, _ := update(t, newTestApp(), tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Press any key to close")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, m.showHelp)
}

func TestQuit(t *testing.T) {
	_, cmd := update(t, newTestApp(), tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	m, _ := update(t, newTestApp(), tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.True(t, m.ready)
	assert.Equal(t, 100, m.width)
}

func TestResultsAreCachedPerMode(t *testing.T) {
	m := setInput(newTestApp(), "x^2")
	n := m.results.ItemCount()

	m.refresh()
	assert.Equal(t, n, m.results.ItemCount())
	assert.Equal(t, "x²", m.output)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, n+1, m.results.ItemCount())
	assert.Equal(t, "x^2", m.output)
	assert.Empty(t, m.trace)
}
