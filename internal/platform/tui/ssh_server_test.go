package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm
}

func TestSessionProfile(t *testing.T) {
	assert.Equal(t, "ssh:alice", SessionProfile("alice"))
	assert.Equal(t, storage.DefaultProfile, SessionProfile(""))
}

func TestSessionMenuGameMenu(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	bubbles.SetLogger(log.New(io.Discard))
	store := openStore(t)
	bubbles.SetProgressStore(store)
	t.Cleanup(func() { bubbles.SetProgressStore(nil) })

	cfg := testConfig()
	cfg.Profile = SessionProfile("alice")
	m := NewSessionModel(store, cfg)

	// Pick chapter 1 from the menu.
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.current)
	assert.Contains(t, m.View(), "Chapter 1 - Level 1")

	p, found, err := store.LoadProgress("ssh:alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ssh:alice", p.Profile)

	_, found, err = store.LoadProgress("")
	require.NoError(t, err)
	assert.False(t, found, "remote play must not touch the local save slot")

	// Pause, then leave to the menu.
	m = sessionStep(t, m, runeKey('p'))
	m = sessionStep(t, m, TickMsg(time.Now()))
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.current)
	assert.Equal(t, "Chapter 1 - Level 1", m.menu.items[0].Description)
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, testConfig())

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScoreboard, m.current)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.current)

	next, cmd := m.Update(runeKey('q'))
	assert.True(t, next.(SessionModel).quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
