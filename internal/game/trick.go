package game

import "github.com/tmaxwell/querybridge/bridge"

// PlayedCard is a card together with the seat that played it.
type PlayedCard struct {
	Seat bridge.Seat
	Card bridge.Card
}

// Trick is one round of four plays, one per seat, led by Lead.
type Trick struct {
	Lead   bridge.Seat
	cards  [bridge.NumSeats]bridge.Card
	played [bridge.NumSeats]bool
}

// NewTrick starts an empty trick led by the given seat.
func NewTrick(lead bridge.Seat) Trick {
	return Trick{Lead: lead}
}

// CardPlayed returns the card a seat has played to this trick, if any.
func (t *Trick) CardPlayed(seat bridge.Seat) (bridge.Card, bool) {
	return t.cards[seat], t.played[seat]
}

// SetCardPlayed records a seat's card. Recording two cards for one
// seat in the same trick is an invariant breach.
func (t *Trick) SetCardPlayed(seat bridge.Seat, card bridge.Card) {
	if t.played[seat] {
		panic("game: seat has already played to this trick")
	}
	t.cards[seat] = card
	t.played[seat] = true
}

// TurnOrder returns the four seats in play order starting from the
// lead.
func (t *Trick) TurnOrder() [bridge.NumSeats]bridge.Seat {
	var order [bridge.NumSeats]bridge.Seat
	seat := t.Lead
	for i := range order {
		order[i] = seat
		seat = seat.Next()
	}
	return order
}

// LeadSuit returns the suit led to this trick, if a card has been led.
func (t *Trick) LeadSuit() (bridge.Suit, bool) {
	card, ok := t.CardPlayed(t.Lead)
	return card.Suit, ok
}

// Cards returns the plays made so far, in turn order.
func (t *Trick) Cards() []PlayedCard {
	var cards []PlayedCard
	for _, seat := range t.TurnOrder() {
		if card, ok := t.CardPlayed(seat); ok {
			cards = append(cards, PlayedCard{Seat: seat, Card: card})
		}
	}
	return cards
}

// Size returns the number of cards played to this trick.
func (t *Trick) Size() int {
	n := 0
	for _, played := range t.played {
		if played {
			n++
		}
	}
	return n
}

// IsCompleted reports whether all four seats have played.
func (t *Trick) IsCompleted() bool {
	return t.Size() == bridge.NumSeats
}

// CompletedTrick is a finished trick plus the seat that won it,
// immutable once appended to the history.
type CompletedTrick struct {
	Trick  Trick
	Winner bridge.Seat
}
