// Package tui renders an interactive table for a single game session.
// The model drives the session synchronously: every accepted key
// resolves an action and the next View reads a fresh snapshot.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tmaxwell/querybridge/bridge"
	"github.com/tmaxwell/querybridge/internal/game"
)

// Model is the Bubble Tea model for the table view
type Model struct {
	session *game.Session
	logger  *log.Logger

	keys keyMap
	help help.Model

	cursor   int // selected card in the acting hand
	errMsg   string
	quitting bool

	width  int
	height int
}

// New creates a table model for the given session
func New(session *game.Session, logger *log.Logger) *Model {
	return &Model{
		session: session,
		logger:  logger.WithPrefix("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Run drives the model to completion in the alternate screen
func Run(session *game.Session, logger *log.Logger) error {
	program := tea.NewProgram(New(session, logger), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.session.Phase() {
		case game.PhaseAuction:
			m.handleAuctionKey(msg)
		case game.PhasePlaying:
			m.handlePlayKey(msg)
		}
	}

	return m, nil
}

func (m *Model) handleAuctionKey(msg tea.KeyMsg) {
	var bid game.Bid
	switch {
	case key.Matches(msg, m.keys.Query):
		bid = game.Query()
	case key.Matches(msg, m.keys.Diamonds):
		bid = game.SuitBid(bridge.Diamonds)
	case key.Matches(msg, m.keys.Clubs):
		bid = game.SuitBid(bridge.Clubs)
	case key.Matches(msg, m.keys.Hearts):
		bid = game.SuitBid(bridge.Hearts)
	case key.Matches(msg, m.keys.Spades):
		bid = game.SuitBid(bridge.Spades)
	case key.Matches(msg, m.keys.Pass):
		bid = game.Pass()
	default:
		return
	}

	if err := m.session.ResolveBid(bid); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.cursor = 0
	m.logger.Debug("bid resolved", "bid", bid)
}

func (m *Model) handlePlayKey(msg tea.KeyMsg) {
	play := m.session.Play()
	seat, acting := play.NextToPlay()

	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if acting && m.cursor < len(m.session.Game().Hand(seat))-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Play):
		if play.Trick.IsCompleted() {
			if err := m.session.ResolveContinue(); err != nil {
				m.errMsg = err.Error()
				return
			}
			m.errMsg = ""
			m.cursor = 0
			return
		}
		if !acting || seat.IsBot() {
			return
		}
		if err := m.session.ResolvePlay(seat, m.cursor); err != nil {
			m.errMsg = err.Error()
			return
		}
		m.errMsg = ""
		m.cursor = 0
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" Query Bridge ") + "\n\n")
	b.WriteString(m.viewHands(snap))
	b.WriteString("\n")

	switch snap.Phase {
	case game.PhaseAuction:
		b.WriteString(m.viewAuction(snap))
	case game.PhasePlaying:
		b.WriteString(m.viewPlay(snap))
	}

	if m.errMsg != "" {
		b.WriteString("\n" + ErrorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// viewHands renders one row per seat. Opponent hands stay hidden.
func (m *Model) viewHands(snap game.Snapshot) string {
	actingSeat, acting := bridge.SeatUser, false
	if snap.Phase == game.PhasePlaying && snap.NextToPlay != nil {
		actingSeat, acting = *snap.NextToPlay, true
	}

	var b strings.Builder
	for _, seat := range bridge.Seats {
		label := SeatLabelStyle.Render(fmt.Sprintf("%-6s", seat.String()))
		b.WriteString(label + " ")

		if seat.IsBot() {
			b.WriteString(DimCardStyle.Render(fmt.Sprintf("%d cards", len(snap.Hands[seat]))))
			b.WriteString("\n")
			continue
		}

		selected := -1
		if acting && seat == actingSeat {
			selected = m.cursor
		}
		b.WriteString(renderHand(snap.Hands[seat], selected))
		b.WriteString("\n")
	}
	return b.String()
}

func renderHand(hand []bridge.Card, selected int) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		text := card.String()
		switch {
		case i == selected:
			parts[i] = SelectedCardStyle.Render(text)
		case card.Suit.IsRed():
			parts[i] = RedCardStyle.Render(text)
		default:
			parts[i] = BlackCardStyle.Render(text)
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) viewAuction(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(ContractStyle.Render(fmt.Sprintf("Auction (bid %d)", snap.BidNumber)) + "\n\n")

	columns := make([]string, game.NumBidders)
	for _, bidder := range []game.Bidder{game.First, game.Second} {
		var col strings.Builder
		col.WriteString(SeatLabelStyle.Render(fmt.Sprintf("%s (%s)", bidder, snap.BidderSeat[bidder])) + "\n")
		for _, turn := range snap.Turns[bidder] {
			col.WriteString(turn.Bid.String() + "\n")
			for _, response := range turn.Responses {
				col.WriteString(ResponseStyle.Render("  "+response.String()) + "\n")
			}
		}
		columns[bidder] = lipgloss.NewStyle().Width(34).Render(col.String())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	if snap.NextBidder != nil {
		seat := snap.BidderSeat[*snap.NextBidder]
		b.WriteString("\n" + PromptStyle.Render(fmt.Sprintf("%s to bid", seat)) + "\n")
	}
	return b.String()
}

func (m *Model) viewPlay(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(ContractStyle.Render("Contract: "+snap.Contract.String()) + "\n\n")

	b.WriteString(SeatLabelStyle.Render("Trick") + "  ")
	if len(snap.Trick) == 0 {
		b.WriteString(DimCardStyle.Render("(empty)"))
	}
	for _, played := range snap.Trick {
		text := fmt.Sprintf("%s:%s", played.Seat, played.Card)
		if played.Card.Suit.IsRed() {
			b.WriteString(RedCardStyle.Render(text) + "  ")
		} else {
			b.WriteString(BlackCardStyle.Render(text) + "  ")
		}
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Declarer side %d, defenders %d (of %d needed)\n",
		snap.DeclarerWins, snap.DefenderWins, snap.Contract.Tricks))

	switch {
	case snap.Over:
		result := "made"
		if !snap.ContractMade() {
			result = "defeated"
		}
		b.WriteString("\n" + ContractStyle.Render(fmt.Sprintf("Game over: contract %s", result)) + "\n")
	case len(snap.Trick) == bridge.NumSeats:
		b.WriteString("\n" + PromptStyle.Render("Trick complete: enter for next trick") + "\n")
	case snap.NextToPlay != nil:
		b.WriteString("\n" + PromptStyle.Render(fmt.Sprintf("%s to play", *snap.NextToPlay)) + "\n")
	}
	return b.String()
}
