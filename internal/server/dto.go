package server

import (
	"fmt"
	"strings"

	"github.com/tmaxwell/querybridge/bridge"
	"github.com/tmaxwell/querybridge/internal/game"
)

// Wire views of the game state. Cards, seats and suits are sent as
// lowercase names so renderers do not depend on display glyphs.

type CardView struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type TurnView struct {
	Bid       string   `json:"bid"`
	Responses []string `json:"responses"`
}

type ContractView struct {
	Trump    *string `json:"trump,omitempty"`
	Tricks   int     `json:"tricks"`
	Declarer string  `json:"declarer"`
	Display  string  `json:"display"`
}

type PlayedCardView struct {
	Seat string   `json:"seat"`
	Card CardView `json:"card"`
}

type TrickView struct {
	Lead   string           `json:"lead"`
	Cards  []PlayedCardView `json:"cards"`
	Winner *string          `json:"winner,omitempty"`
}

// StateData is the full snapshot shipped to clients after every
// accepted action.
type StateData struct {
	Phase           string                `json:"phase"`
	BidNumber       int                   `json:"bidNumber"`
	Hands           map[string][]CardView `json:"hands"`
	FirstBidder     string                `json:"firstBidder"`
	SecondBidder    string                `json:"secondBidder"`
	FirstTurns      []TurnView            `json:"firstTurns"`
	SecondTurns     []TurnView            `json:"secondTurns"`
	NextBidder      *string               `json:"nextBidder,omitempty"`
	Contract        *ContractView         `json:"contract,omitempty"`
	Trick           *TrickView            `json:"trick,omitempty"`
	CompletedTricks []TrickView           `json:"completedTricks,omitempty"`
	NextToPlay      *string               `json:"nextToPlay,omitempty"`
	DeclarerWins    int                   `json:"declarerWins"`
	DefenderWins    int                   `json:"defenderWins"`
	Over            bool                  `json:"over"`
}

var suitNames = [bridge.NumSuits]string{"diamonds", "clubs", "hearts", "spades"}

var seatNames = [bridge.NumSeats]string{"user", "left", "dummy", "right"}

// ParseSuit maps a wire suit name back to a Suit.
func ParseSuit(name string) (bridge.Suit, error) {
	for _, suit := range bridge.Suits {
		if suitNames[suit] == strings.ToLower(name) {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("unknown suit: %q", name)
}

// ParseSeat maps a wire seat name back to a Seat.
func ParseSeat(name string) (bridge.Seat, error) {
	for _, seat := range bridge.Seats {
		if seatNames[seat] == strings.ToLower(name) {
			return seat, nil
		}
	}
	return 0, fmt.Errorf("unknown seat: %q", name)
}

// ParseBid maps a wire bid name ("query", "pass", or a suit name) to
// a Bid.
func ParseBid(name string) (game.Bid, error) {
	switch strings.ToLower(name) {
	case "query":
		return game.Query(), nil
	case "pass":
		return game.Pass(), nil
	}
	suit, err := ParseSuit(name)
	if err != nil {
		return game.Bid{}, fmt.Errorf("unknown bid: %q", name)
	}
	return game.SuitBid(suit), nil
}

func viewCard(card bridge.Card) CardView {
	return CardView{Suit: suitNames[card.Suit], Rank: card.Rank.String()}
}

func viewBid(bid game.Bid) string {
	switch bid.Kind {
	case game.BidQuery:
		return "query"
	case game.BidPass:
		return "pass"
	default:
		return suitNames[bid.Suit]
	}
}

func viewTurns(turns []game.AuctionTurn) []TurnView {
	views := make([]TurnView, len(turns))
	for i, turn := range turns {
		responses := make([]string, len(turn.Responses))
		for j, response := range turn.Responses {
			responses[j] = response.String()
		}
		views[i] = TurnView{Bid: viewBid(turn.Bid), Responses: responses}
	}
	return views
}

func viewTrick(lead bridge.Seat, cards []game.PlayedCard, winner *bridge.Seat) TrickView {
	view := TrickView{Lead: seatNames[lead]}
	for _, played := range cards {
		view.Cards = append(view.Cards, PlayedCardView{
			Seat: seatNames[played.Seat],
			Card: viewCard(played.Card),
		})
	}
	if winner != nil {
		name := seatNames[*winner]
		view.Winner = &name
	}
	return view
}

// ViewState converts a session snapshot into its wire representation.
func ViewState(snap game.Snapshot) StateData {
	state := StateData{
		Phase:        snap.Phase.String(),
		BidNumber:    snap.BidNumber,
		Hands:        make(map[string][]CardView, bridge.NumSeats),
		FirstBidder:  seatNames[snap.BidderSeat[game.First]],
		SecondBidder: seatNames[snap.BidderSeat[game.Second]],
		FirstTurns:   viewTurns(snap.Turns[game.First]),
		SecondTurns:  viewTurns(snap.Turns[game.Second]),
		DeclarerWins: snap.DeclarerWins,
		DefenderWins: snap.DefenderWins,
		Over:         snap.Over,
	}

	for _, seat := range bridge.Seats {
		cards := make([]CardView, len(snap.Hands[seat]))
		for i, card := range snap.Hands[seat] {
			cards[i] = viewCard(card)
		}
		state.Hands[seatNames[seat]] = cards
	}

	if snap.NextBidder != nil {
		name := seatNames[snap.BidderSeat[*snap.NextBidder]]
		state.NextBidder = &name
	}

	if snap.Phase == game.PhasePlaying {
		contract := ContractView{
			Tricks:   snap.Contract.Tricks,
			Declarer: seatNames[snap.Contract.Declarer],
			Display:  snap.Contract.String(),
		}
		if snap.Contract.Trump != nil {
			name := suitNames[*snap.Contract.Trump]
			contract.Trump = &name
		}
		state.Contract = &contract

		trick := viewTrick(snap.TrickLead, snap.Trick, nil)
		state.Trick = &trick

		for _, completed := range snap.Completed {
			state.CompletedTricks = append(state.CompletedTricks,
				viewTrick(completed.Trick.Lead, completed.Trick.Cards(), &completed.Winner))
		}

		if snap.NextToPlay != nil {
			name := seatNames[*snap.NextToPlay]
			state.NextToPlay = &name
		}
	}

	return state
}
