package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocubie"
	"github.com/SeamusWaldron/gocubie/internal/keymap"
	"github.com/SeamusWaldron/gocubie/internal/render"
)

func newTestPlayModel() *playModel {
	keys := keymap.Default()
	return newPlayModel(gocubie.NewTracker(), keys, render.New(keys, false), nil)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModel_KeyTurns(t *testing.T) {
	m := newTestPlayModel()

	m.Update(runes("r"))
	m.Update(runes("U"))
	assert.Equal(t, []gocubie.Move{gocubie.R, gocubie.UPrime}, m.tracker.Moves())

	m.Update(runes("x"))
	assert.Len(t, m.tracker.Moves(), 2, "unbound keys are ignored")

	view := m.View()
	assert.Contains(t, view, "Moves: 2")
	assert.Contains(t, view, "R U'")
}

func TestPlayModel_Undo(t *testing.T) {
	m := newTestPlayModel()

	m.Update(runes("f"))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Empty(t, m.tracker.Moves())
	assert.True(t, m.tracker.IsSolved())
	assert.NoError(t, m.err)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "nothing to undo")
}

func TestPlayModel_Prompt(t *testing.T) {
	m := newTestPlayModel()

	m.Update(runes(":"))
	require.True(t, m.prompting)

	m.Update(runes("R U R' U'"))
	assert.Empty(t, m.tracker.Moves(), "typing does not turn")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.prompting)
	assert.Equal(t, gocubie.SexyMove, m.tracker.Moves())
}

func TestPlayModel_PromptErrorAndCancel(t *testing.T) {
	m := newTestPlayModel()

	m.Update(runes(":"))
	m.Update(runes("R Q"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.err, gocubie.ErrInvalidNotation)
	assert.Empty(t, m.tracker.Moves())

	m.Update(runes(":"))
	m.Update(runes("R"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.prompting)
	assert.Empty(t, m.tracker.Moves())
}

func TestPlayModel_ScrambleAndReset(t *testing.T) {
	m := newTestPlayModel()

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Len(t, m.tracker.Moves(), playScrambleLength)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, m.tracker.Moves())
	assert.True(t, m.tracker.IsSolved())
}

func TestPlayModel_QuitCountsSolves(t *testing.T) {
	m := newTestPlayModel()

	m.Update(runes("r"))
	m.Update(runes("R"))
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "Goodbye! 2 move(s), 1 solve(s)\n", m.View())
}

func TestPlayModel_DeviceMessages(t *testing.T) {
	m := newTestPlayModel()

	m.Update(batteryMsg(64))
	m.Update(orientationMsg{up: gocubie.White(), front: gocubie.Green()})
	assert.Equal(t, 64, m.battery)
	assert.True(t, m.holding)
	assert.Equal(t, gocubie.Green(), m.holdingFwd)
}
