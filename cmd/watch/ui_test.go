package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(t *testing.T, stateJSON string) (WatchUI, chan struct{}) {
	t.Helper()
	dir := t.TempDir()
	statePath := filepath.Join(dir, "agent_state.json")
	if stateJSON != "" {
		require.NoError(t, os.WriteFile(statePath, []byte(stateJSON), 0o644))
	}

	changes := make(chan struct{}, 1)
	ui := NewWatchUI(&WatchConfig{
		StatePath:      statePath,
		HistoryPath:    filepath.Join(dir, "history.json"),
		ObjectivesPath: filepath.Join(dir, "objectives.txt"),
	}, changes)
	return ui, changes
}

func resize(t *testing.T, ui WatchUI) WatchUI {
	t.Helper()
	model, _ := ui.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return model.(WatchUI)
}

func TestWatchUI_InitializingUntilSized(t *testing.T) {
	ui, _ := newTestUI(t, "")
	assert.Equal(t, "Initializing...", ui.View())
}

func TestWatchUI_RendersAssessmentAndStatus(t *testing.T) {
	ui, _ := newTestUI(t, `{"context":"gameplay_dialogue","map":{"name":"Junktown"},"dialogue":{"npc_name":"Killian","reply_text":"Welcome.","options":["Hi"]}}`)
	ui = resize(t, ui)

	assessment := ui.renderAssessment()
	assert.Contains(t, assessment, "Killian")
	assert.Contains(t, assessment, `Reply: "Welcome."`)

	status := ui.renderStatus()
	assert.Contains(t, status, "Junktown")
	assert.Contains(t, status, "NPC:Killian")
	assert.Contains(t, status, "0 exchanges")
}

func TestWatchUI_StaleStateIsReported(t *testing.T) {
	ui, _ := newTestUI(t, `{"context":"gameplay_exploration"}`)
	ui.now = func() time.Time { return time.Now().Add(time.Hour) }

	assert.Contains(t, ui.renderStatus(), "Game not running")
}

func TestWatchUI_StateChangeRearmsWatcher(t *testing.T) {
	ui, changes := newTestUI(t, `{}`)
	ui = resize(t, ui)
	fixed := time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)
	ui.now = func() time.Time { return fixed }

	model, cmd := ui.Update(stateChangedMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, fixed, model.(WatchUI).lastChange)

	changes <- struct{}{}
	assert.Equal(t, stateChangedMsg{}, cmd())
}

func TestWatchUI_Quit(t *testing.T) {
	ui, _ := newTestUI(t, `{}`)

	_, cmd := ui.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
