package game

import (
	rand "math/rand/v2"

	"github.com/tmaxwell/querybridge/bridge"
)

// GameData is the state shared by the auction and play phases: the
// four hands and the auction record. The four hands are always
// disjoint and together hold exactly the cards not yet played.
type GameData struct {
	Hands   [bridge.NumSeats][]bridge.Card
	Auction Auction
}

// NewGameData deals a fresh game from the provided random source,
// assigning the First and Second bidder roles to the given seats.
func NewGameData(rng *rand.Rand, first, second bridge.Seat) *GameData {
	deck := bridge.NewDeck(rng)
	g := &GameData{Auction: NewAuction(first, second)}
	for _, seat := range bridge.Seats {
		g.Hands[seat] = deck.DealHand()
	}
	return g
}

// Hand returns the cards held by a seat, in display order.
func (g *GameData) Hand(seat bridge.Seat) []bridge.Card {
	return g.Hands[seat]
}

// removeCard removes and returns the card at index from a seat's
// hand. An out-of-range index is an invariant breach.
func (g *GameData) removeCard(seat bridge.Seat, index int) bridge.Card {
	hand := g.Hands[seat]
	if index < 0 || index >= len(hand) {
		panic("game: card index out of range")
	}
	card := hand[index]
	g.Hands[seat] = append(hand[:index:index], hand[index+1:]...)
	return card
}
