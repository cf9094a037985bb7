package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/bubble-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame))
	assert.True(t, frame.Has(core.ActionFire))

	assert.False(t, km.MapKeyToFrame(runeKey('z'), &frame))
	assert.True(t, km.MapKeyToFrame(runeKey('q'), &frame))
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionMotion}, &frame)
	x, y, ok := frame.Pointer()
	assert.True(t, ok)
	assert.Equal(t, 12, x)
	assert.Equal(t, 7, y)
	assert.False(t, frame.Has(core.ActionFire), "motion must not fire")

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	assert.True(t, frame.Has(core.ActionFire))

	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	assert.False(t, frame.Has(core.ActionFire), "only the left button fires")
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(runeKey('j')))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('x')))
}
