package game

import (
	"testing"

	"github.com/tmaxwell/querybridge/bridge"
)

// Fixed deal used across the game tests, with User as First bidder
// and Right as Second:
//
//	User:  ♣2 ♣6 ♣9 ♣10 ♣A ♥6 ♥9 ♥10 ♥A ♠2 ♠7 ♠8 ♠K
//	Left:  ♦2 ♦3 ♦9 ♦10 ♦Q ♣4 ♣8 ♥5  ♥8 ♥K ♠3 ♠6 ♠A
//	Dummy: ♦6 ♦7 ♦8 ♦K  ♣5 ♣K ♥4 ♥7  ♥J ♥Q ♠4 ♠5 ♠10
//	Right: ♦4 ♦5 ♦J ♦A  ♣3 ♣7 ♣J ♣Q  ♥2 ♥3 ♠9 ♠J ♠Q
func testGameData(t *testing.T) *GameData {
	t.Helper()
	g := &GameData{Auction: NewAuction(bridge.SeatUser, bridge.SeatRight)}
	g.Hands[bridge.SeatUser] = testCards(t,
		"2c", "6c", "9c", "Tc", "Ac", "6h", "9h", "Th", "Ah", "2s", "7s", "8s", "Ks")
	g.Hands[bridge.SeatLeft] = testCards(t,
		"2d", "3d", "9d", "Td", "Qd", "4c", "8c", "5h", "8h", "Kh", "3s", "6s", "As")
	g.Hands[bridge.SeatDummy] = testCards(t,
		"6d", "7d", "8d", "Kd", "5c", "Kc", "4h", "7h", "Jh", "Qh", "4s", "5s", "Ts")
	g.Hands[bridge.SeatRight] = testCards(t,
		"4d", "5d", "Jd", "Ad", "3c", "7c", "Jc", "Qc", "2h", "3h", "9s", "Js", "Qs")
	return g
}

// testPlayData starts the play phase of the fixed deal at a no-trump
// contract of seven tricks declared (and led) by User.
func testPlayData(t *testing.T) *PlayData {
	t.Helper()
	return &PlayData{
		Game:     testGameData(t),
		Trick:    NewTrick(bridge.SeatUser),
		Contract: Contract{Trump: nil, Tricks: 7, Declarer: bridge.SeatUser},
	}
}

func testCards(t *testing.T, specs ...string) []bridge.Card {
	t.Helper()
	cards := make([]bridge.Card, len(specs))
	for i, spec := range specs {
		card, err := bridge.ParseCard(spec)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", spec, err)
		}
		cards[i] = card
	}
	return cards
}

func card(t *testing.T, spec string) bridge.Card {
	t.Helper()
	return testCards(t, spec)[0]
}

func queryTurn(responses ...BidResponse) AuctionTurn {
	return AuctionTurn{Bid: Query(), Responses: responses}
}

func suitTurn(suit bridge.Suit, responses ...BidResponse) AuctionTurn {
	return AuctionTurn{Bid: SuitBid(suit), Responses: responses}
}

func passTurn() AuctionTurn {
	return AuctionTurn{Bid: Pass(), Responses: []BidResponse{PassResponse{}}}
}
