package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaxwell/querybridge/internal/bot"
	"github.com/tmaxwell/querybridge/internal/game"
	"github.com/tmaxwell/querybridge/internal/randutil"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	session := game.NewSession(randutil.New(11), bot.PassBot{})
	return New(session, log.New(io.Discard))
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestViewAuction(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	view := m.View()
	assert.Contains(t, view, "Query Bridge")
	assert.Contains(t, view, "Auction (bid 6)")
	assert.Contains(t, view, "User to bid")
	// Opponent hands stay hidden.
	assert.Contains(t, view, "13 cards")
}

func TestPassKeyEndsAuction(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	_, _ = m.Update(keyRune('p'))

	assert.Equal(t, game.PhasePlaying, m.session.Phase())
	view := m.View()
	assert.Contains(t, view, "Contract: 6NT by User")
	assert.Contains(t, view, "User to play")
}

func TestBidKeysIgnoredDuringPlay(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	_, _ = m.Update(keyRune('p'))
	require.Equal(t, game.PhasePlaying, m.session.Phase())

	// The auction is over; bidding keys now move through the play
	// handler and pass does nothing.
	before := m.View()
	_, _ = m.Update(keyRune('p'))
	assert.Equal(t, before, m.View())
}

func TestPlayKeysMoveCursorAndPlay(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	_, _ = m.Update(keyRune('p'))
	require.Equal(t, game.PhasePlaying, m.session.Phase())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.cursor)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.cursor)

	// Enter plays the selected card for the leading human seat; the
	// automated seat that follows plays immediately after.
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.errMsg)
	assert.Equal(t, 2, m.session.Play().Trick.Size())
}

func TestQuitKey(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}
