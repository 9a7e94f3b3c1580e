package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaxwell/querybridge/bridge"
	"github.com/tmaxwell/querybridge/internal/game"
)

// Fixed deal with User bidding First and Right bidding Second:
//
//	User:  ♣2 ♣6 ♣9 ♣10 ♣A ♥6 ♥9 ♥10 ♥A ♠2 ♠7 ♠8 ♠K
//	Left:  ♦2 ♦3 ♦9 ♦10 ♦Q ♣4 ♣8 ♥5  ♥8 ♥K ♠3 ♠6 ♠A
//	Dummy: ♦6 ♦7 ♦8 ♦K  ♣5 ♣K ♥4 ♥7  ♥J ♥Q ♠4 ♠5 ♠10
//	Right: ♦4 ♦5 ♦J ♦A  ♣3 ♣7 ♣J ♣Q  ♥2 ♥3 ♠9 ♠J ♠Q
func fixedDeal(t *testing.T) *game.GameData {
	t.Helper()
	g := &game.GameData{Auction: game.NewAuction(bridge.SeatUser, bridge.SeatRight)}
	g.Hands[bridge.SeatUser] = cards(t,
		"2c", "6c", "9c", "Tc", "Ac", "6h", "9h", "Th", "Ah", "2s", "7s", "8s", "Ks")
	g.Hands[bridge.SeatLeft] = cards(t,
		"2d", "3d", "9d", "Td", "Qd", "4c", "8c", "5h", "8h", "Kh", "3s", "6s", "As")
	g.Hands[bridge.SeatDummy] = cards(t,
		"6d", "7d", "8d", "Kd", "5c", "Kc", "4h", "7h", "Jh", "Qh", "4s", "5s", "Ts")
	g.Hands[bridge.SeatRight] = cards(t,
		"4d", "5d", "Jd", "Ad", "3c", "7c", "Jc", "Qc", "2h", "3h", "9s", "Js", "Qs")
	return g
}

func fixedPlay(t *testing.T) *game.PlayData {
	t.Helper()
	return &game.PlayData{
		Game:     fixedDeal(t),
		Trick:    game.NewTrick(bridge.SeatUser),
		Contract: game.Contract{Trump: nil, Tricks: 7, Declarer: bridge.SeatUser},
	}
}

func cards(t *testing.T, specs ...string) []bridge.Card {
	t.Helper()
	hand := make([]bridge.Card, len(specs))
	for i, spec := range specs {
		card, err := bridge.ParseCard(spec)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", spec, err)
		}
		hand[i] = card
	}
	return hand
}

func TestHeuristicSelectBid(t *testing.T) {
	t.Parallel()
	agent := Heuristic{}
	g := fixedDeal(t)

	// User holds five clubs, so the opening bid names them.
	b1 := agent.SelectBid(g, game.First)
	assert.Equal(t, game.SuitBid(bridge.Clubs), b1)
	g.AppendBidResponse(game.First, b1)

	// Right has no five-card suit and no evaluation yet.
	b2 := agent.SelectBid(g, game.Second)
	assert.Equal(t, game.Query(), b2)
	g.AppendBidResponse(game.Second, b2)

	g.Auction.BidNumber++

	// With the level raised, neither predicted total clears the bar.
	assert.Equal(t, game.Pass(), agent.SelectBid(g, game.First))
	assert.Equal(t, game.Pass(), agent.SelectBid(g, game.Second))
}

func TestHeuristicRaisesTrumpFit(t *testing.T) {
	t.Parallel()
	agent := Heuristic{}
	g := fixedDeal(t)

	// Right learns its partner's longest suit is diamonds; with four
	// diamonds of its own that is an eight-card fit worth raising.
	g.Auction.Turns[game.Second] = []game.AuctionTurn{{
		Bid: game.Query(),
		Responses: []game.BidResponse{
			game.HandEvaluation{Rating: bridge.Good},
			game.LongestSuit{Suit: bridge.Diamonds},
		},
	}}

	assert.Equal(t, game.SuitBid(bridge.Diamonds), agent.SelectBid(g, game.Second))
}

// freakDeal gives the automated partnership (Left bidding First,
// Right bidding Second) an eight-card heart fit, two voids, and a
// ten-card spade suit, so the predicted combined strength stays above
// every pass threshold.
func freakDeal(t *testing.T) *game.GameData {
	t.Helper()
	g := &game.GameData{Auction: game.NewAuction(bridge.SeatLeft, bridge.SeatRight)}
	g.Hands[bridge.SeatUser] = cards(t,
		"2d", "3d", "4d", "5d", "6d", "2c", "3c", "4c", "5c", "2h", "3h", "2s", "3s")
	g.Hands[bridge.SeatLeft] = cards(t,
		"Jd", "Qd", "Kd", "Ad", "Jc", "Qc", "Kc", "Ac", "7h", "8h", "9h", "Th", "Jh")
	g.Hands[bridge.SeatDummy] = cards(t,
		"7d", "8d", "9d", "Td", "6c", "7c", "8c", "9c", "Tc", "4h", "5h", "6h", "4s")
	g.Hands[bridge.SeatRight] = cards(t,
		"Qh", "Kh", "Ah", "5s", "6s", "7s", "8s", "9s", "Ts", "Js", "Qs", "Ks", "As")
	return g
}

func TestHeuristicPassesAtMaximumBid(t *testing.T) {
	t.Parallel()
	agent := Heuristic{}
	g := freakDeal(t)
	g.Auction.BidNumber = bridge.HandSize + 1

	assert.Equal(t, game.Pass(), agent.SelectBid(g, game.First))
	assert.Equal(t, game.Pass(), agent.SelectBid(g, game.Second))
}

func TestHeuristicAuctionTerminates(t *testing.T) {
	t.Parallel()
	agent := Heuristic{}
	g := freakDeal(t)

	for turns := 0; !g.Auction.IsCompleted(); turns++ {
		require.Less(t, turns, 40, "auction did not terminate")
		bidder, ok := g.Auction.NextToBid()
		require.True(t, ok)
		g.AppendBidResponse(bidder, agent.SelectBid(g, bidder))
	}

	assert.True(t, g.Auction.HasPassed(game.First))
	assert.True(t, g.Auction.HasPassed(game.Second))
	assert.LessOrEqual(t, g.Auction.BidNumber, bridge.HandSize+2)
}

func TestSessionWithTwoAutomatedBidders(t *testing.T) {
	t.Parallel()

	// Both bidder seats are automated, so the whole auction runs
	// inside the constructor and the session opens in the play phase.
	s := game.NewSession(nil, Heuristic{}, game.WithGameData(freakDeal(t)))
	assert.Equal(t, game.PhasePlaying, s.Phase())
	assert.Equal(t, bridge.SeatLeft, s.Play().Contract.Declarer)
	assert.Equal(t, 1, s.Play().Trick.Size())
}

func TestHeuristicSelectPlay(t *testing.T) {
	t.Parallel()
	agent := Heuristic{}
	d := fixedPlay(t)

	// Leading, User plays its most powerful card.
	p1 := agent.SelectPlay(d, bridge.SeatUser)
	assert.Equal(t, cards(t, "Ah")[0], d.Game.Hand(bridge.SeatUser)[p1])
	d.PlayCard(bridge.SeatUser, p1)

	// Left cannot beat the ace, so it follows with its lowest heart.
	p2 := agent.SelectPlay(d, bridge.SeatLeft)
	assert.Equal(t, cards(t, "5h")[0], d.Game.Hand(bridge.SeatLeft)[p2])
	d.PlayCard(bridge.SeatLeft, p2)

	// Dummy's partner is winning, so it throws off its lowest heart.
	p3 := agent.SelectPlay(d, bridge.SeatDummy)
	assert.Equal(t, cards(t, "4h")[0], d.Game.Hand(bridge.SeatDummy)[p3])
	d.PlayCard(bridge.SeatDummy, p3)

	p4 := agent.SelectPlay(d, bridge.SeatRight)
	assert.Equal(t, cards(t, "2h")[0], d.Game.Hand(bridge.SeatRight)[p4])
}

func TestHeuristicTrumpsWhenVoid(t *testing.T) {
	t.Parallel()
	agent := Heuristic{}
	d := fixedPlay(t)
	hearts := bridge.Hearts
	d.Contract = game.Contract{Trump: &hearts, Tricks: 7, Declarer: bridge.SeatUser}
	d.Trick = game.NewTrick(bridge.SeatRight)

	// Right leads the diamond ace; User is void and holds trumps, so
	// it ruffs with its strongest heart.
	d.PlayCard(bridge.SeatRight, 3) // ♦A
	index := agent.SelectPlay(d, bridge.SeatUser)
	assert.Equal(t, cards(t, "Ah")[0], d.Game.Hand(bridge.SeatUser)[index])
}

func TestPassBot(t *testing.T) {
	t.Parallel()
	agent := PassBot{}
	g := fixedDeal(t)

	assert.Equal(t, game.Pass(), agent.SelectBid(g, game.First))
	assert.Equal(t, game.Pass(), agent.SelectBid(g, game.Second))

	d := fixedPlay(t)
	index := agent.SelectPlay(d, bridge.SeatUser)
	require.Equal(t, 0, index)
	d.PlayCard(bridge.SeatUser, index)

	// Following seats must follow the club lead; the first legal card
	// is Left's lowest club.
	index = agent.SelectPlay(d, bridge.SeatLeft)
	assert.Equal(t, cards(t, "4c")[0], d.Game.Hand(bridge.SeatLeft)[index])
}
