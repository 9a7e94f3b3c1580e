// Package bridge implements the card primitives and hand evaluation
// heuristics for a four-player partnership trick-taking game.
package bridge

import "fmt"

// Suit represents a card suit. The declared order (Diamonds < Clubs <
// Hearts < Spades) is the total order used for sorting hands and for
// deterministic tie-breaks throughout the engine.
type Suit int

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades

	NumSuits = 4
)

// Suits lists all suits in their fixed order.
var Suits = [NumSuits]Suit{Diamonds, Clubs, Hearts, Spades}

// String returns the unicode symbol for the suit.
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for Diamonds and Hearts.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Rank represents a card rank, Aces high.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace

	NumRanks = 13
)

// Ranks lists all ranks in ascending order.
var Ranks = [NumRanks]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the short representation of a rank ("2".."10", "J",
// "Q", "K", "A").
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents one of the 52 playing cards. Cards are ordered by
// Suit first and then by Rank.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card from a suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Compare returns -1, 0 or +1 ordering cards by (suit, rank).
func (c Card) Compare(other Card) int {
	switch {
	case c.Suit != other.Suit:
		if c.Suit < other.Suit {
			return -1
		}
		return 1
	case c.Rank != other.Rank:
		if c.Rank < other.Rank {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts before other.
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// String returns e.g. "♠K" or "♥10".
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// ParseCard parses a two-character card string like "Ks", "Td" or
// "2c" (rank then suit letter, case-insensitive).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	var rank Rank
	switch s[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank: %c", s[0])
	}

	var suit Suit
	switch s[1] {
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit: %c", s[1])
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// Seat identifies one of the four hands at the table. User and Dummy
// form the primary partnership; Left and Right are the automated
// opponents.
type Seat int

const (
	SeatUser Seat = iota
	SeatLeft
	SeatDummy
	SeatRight

	NumSeats = 4
)

// Seats lists all seats in rotation order starting from User.
var Seats = [NumSeats]Seat{SeatUser, SeatLeft, SeatDummy, SeatRight}

// String returns the seat name.
func (s Seat) String() string {
	switch s {
	case SeatUser:
		return "User"
	case SeatLeft:
		return "Left"
	case SeatDummy:
		return "Dummy"
	case SeatRight:
		return "Right"
	default:
		return "?"
	}
}

// Next returns the seat which acts after this one.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Partner returns the seat sitting opposite this one.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// IsBot reports whether this seat is played by a decision agent
// rather than the human player. The classification is fixed for the
// lifetime of a game.
func (s Seat) IsBot() bool {
	return s == SeatLeft || s == SeatRight
}
