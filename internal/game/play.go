package game

import (
	"fmt"

	"github.com/tmaxwell/querybridge/bridge"
)

// PlayData is the state of the trick-taking phase.
type PlayData struct {
	Game      *GameData
	Trick     Trick
	Completed []CompletedTrick
	Contract  Contract
}

// IndexedCard pairs a card with its index into the owning seat's
// displayed hand.
type IndexedCard struct {
	Index int
	Card  bridge.Card
}

// PlayCard moves the card at index from a seat's hand into the
// current trick. No legality check is performed here; callers enforce
// legality via LegalPlays before invoking it.
func (d *PlayData) PlayCard(seat bridge.Seat, index int) {
	card := d.Game.removeCard(seat, index)
	d.Trick.SetCardPlayed(seat, card)
}

// IsOver reports whether every hand is empty.
func (d *PlayData) IsOver() bool {
	for _, seat := range bridge.Seats {
		if len(d.Game.Hand(seat)) > 0 {
			return false
		}
	}
	return true
}

// NextToPlay returns the seat to act next: the first seat in turn
// order yet to play to the current trick, or the trick's winner once
// it is full. Returns false when the game is over.
func (d *PlayData) NextToPlay() (bridge.Seat, bool) {
	if d.IsOver() {
		return 0, false
	}
	for _, seat := range d.Trick.TurnOrder() {
		if _, played := d.Trick.CardPlayed(seat); !played {
			return seat, true
		}
	}
	winner, ok := d.TrickWinner()
	return winner.Seat, ok
}

// LegalPlays returns the (index, card) pairs the seat may currently
// play, in hand order. Off turn (or after the game ends) nothing is
// legal; when leading, or when void in the lead suit, everything is.
func (d *PlayData) LegalPlays(seat bridge.Seat) []IndexedCard {
	next, ok := d.NextToPlay()
	if !ok || next != seat {
		return nil
	}

	hand := d.Game.Hand(seat)
	mustFollow := false
	var lead bridge.Suit
	if !d.Trick.IsCompleted() {
		if suit, led := d.Trick.LeadSuit(); led {
			for _, card := range hand {
				if card.Suit == suit {
					lead = suit
					mustFollow = true
					break
				}
			}
		}
	}

	plays := make([]IndexedCard, 0, len(hand))
	for i, card := range hand {
		if mustFollow && card.Suit != lead {
			continue
		}
		plays = append(plays, IndexedCard{Index: i, Card: card})
	}
	return plays
}

// CanPlay reports whether playing the card at index is legal for the
// seat right now.
func (d *PlayData) CanPlay(seat bridge.Seat, index int) bool {
	for _, play := range d.LegalPlays(seat) {
		if play.Index == index {
			return true
		}
	}
	return false
}

// CompareCardPower compares two cards in the context of the current
// trick and contract, returning +1, -1 or 0. This is a total preorder,
// not a strict card order: two cards which cannot beat each other in
// context (both off-suit and non-trump, or no lead established)
// compare as 0 regardless of rank.
func (d *PlayData) CompareCardPower(a, b bridge.Card) int {
	if trump := d.Contract.Trump; trump != nil {
		switch {
		case a.Suit == *trump && b.Suit == *trump:
			return compareRank(a.Rank, b.Rank)
		case a.Suit == *trump:
			return 1
		case b.Suit == *trump:
			return -1
		}
	}
	if lead, led := d.Trick.LeadSuit(); led {
		switch {
		case a.Suit == lead && b.Suit == lead:
			return compareRank(a.Rank, b.Rank)
		case a.Suit == lead:
			return 1
		case b.Suit == lead:
			return -1
		}
	}
	return 0
}

func compareRank(a, b bridge.Rank) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// TrickWinner returns the play currently winning the trick, or false
// if no card has been played. The earliest play in turn order wins
// ties: a later card must be strictly higher in power to take the
// trick.
func (d *PlayData) TrickWinner() (PlayedCard, bool) {
	cards := d.Trick.Cards()
	if len(cards) == 0 {
		return PlayedCard{}, false
	}
	best := cards[0]
	for _, play := range cards[1:] {
		if d.CompareCardPower(play.Card, best.Card) > 0 {
			best = play
		}
	}
	return best, true
}

// WinningPlays returns the subset of LegalPlays which would strictly
// beat the current trick winner, or all legal plays if no card has
// been played yet.
func (d *PlayData) WinningPlays(seat bridge.Seat) []IndexedCard {
	legal := d.LegalPlays(seat)
	winner, ok := d.TrickWinner()
	if !ok {
		return legal
	}
	plays := make([]IndexedCard, 0, len(legal))
	for _, play := range legal {
		if d.CompareCardPower(play.Card, winner.Card) > 0 {
			plays = append(plays, play)
		}
	}
	return plays
}

// TricksWon returns how many completed tricks the seat's partnership
// has won.
func (d *PlayData) TricksWon(seat bridge.Seat) int {
	n := 0
	for _, trick := range d.Completed {
		if trick.Winner == seat || trick.Winner == seat.Partner() {
			n++
		}
	}
	return n
}

// archiveTrick appends the full current trick and its winner to the
// history.
func (d *PlayData) archiveTrick() {
	if !d.Trick.IsCompleted() {
		panic("game: archiving an incomplete trick")
	}
	winner, ok := d.TrickWinner()
	if !ok {
		panic("game: completed trick has no winner")
	}
	d.Completed = append(d.Completed, CompletedTrick{Trick: d.Trick, Winner: winner.Seat})
}

// resolvePlay applies a play for the given seat and then obtains the
// chained play from the following automated seat if the trick is
// still open. If the current trick is already full it is archived and
// the seat leads a fresh one.
func (d *PlayData) resolvePlay(agent Agent, seat bridge.Seat, index int) error {
	if !d.CanPlay(seat, index) {
		return fmt.Errorf("card %d is not a legal play for %s", index, seat)
	}

	if d.Trick.IsCompleted() {
		d.archiveTrick()
		d.Trick = NewTrick(seat)
	}

	d.PlayCard(seat, index)

	if !d.Trick.IsCompleted() {
		next := seat.Next()
		if !next.IsBot() {
			panic("game: expected an automated seat to follow " + seat.String())
		}
		d.playForAgent(agent, next)
	}
	return nil
}

// resolveContinue archives the full current trick, opens a new one led
// by the winner, and obtains the winner's lead if it is an automated
// seat.
func (d *PlayData) resolveContinue(agent Agent) error {
	if !d.Trick.IsCompleted() {
		return fmt.Errorf("current trick is not complete")
	}
	winner, _ := d.TrickWinner()
	d.archiveTrick()
	d.Trick = NewTrick(winner.Seat)

	if d.IsOver() {
		return nil
	}
	if winner.Seat.IsBot() {
		d.playForAgent(agent, winner.Seat)
	}
	return nil
}

// playForAgent asks the decision agent for the seat's play and applies
// it. An illegal selection is a contract violation.
func (d *PlayData) playForAgent(agent Agent, seat bridge.Seat) {
	index := agent.SelectPlay(d, seat)
	if !d.CanPlay(seat, index) {
		panic(fmt.Sprintf("game: agent selected illegal play %d for %s", index, seat))
	}
	d.PlayCard(seat, index)
}
