package bridge

import (
	rand "math/rand/v2"
	"slices"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = NumSuits * NumRanks

// HandSize is the number of cards dealt to each seat.
const HandSize = DeckSize / NumSeats

// Deck is a full 52-card deck shuffled with an explicitly injected
// random source so deals are deterministic and testable.
type Deck struct {
	cards [DeckSize]Card
	next  int
}

// NewDeck creates a new deck shuffled with the provided RNG.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{}
	i := 0
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards[i] = Card{Suit: suit, Rank: rank}
			i++
		}
	}
	d.Shuffle(rng)
	return d
}

// Shuffle reshuffles the full deck using Fisher-Yates.
func (d *Deck) Shuffle(rng *rand.Rand) {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealHand deals a 13-card hand sorted ascending by (suit, rank),
// which is the display order used for card indices everywhere else.
func (d *Deck) DealHand() []Card {
	hand := slices.Clone(d.Deal(HandSize))
	SortHand(hand)
	return hand
}

// SortHand sorts a hand in place into display order.
func SortHand(hand []Card) {
	slices.SortFunc(hand, Card.Compare)
}
