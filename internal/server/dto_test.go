package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaxwell/querybridge/bridge"
	"github.com/tmaxwell/querybridge/internal/bot"
	"github.com/tmaxwell/querybridge/internal/game"
	"github.com/tmaxwell/querybridge/internal/randutil"
)

func TestParseSuit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want bridge.Suit
	}{
		{"diamonds", bridge.Diamonds},
		{"clubs", bridge.Clubs},
		{"hearts", bridge.Hearts},
		{"Spades", bridge.Spades},
	}
	for _, tt := range tests {
		suit, err := ParseSuit(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, suit)
	}

	_, err := ParseSuit("cups")
	assert.Error(t, err)
}

func TestParseSeat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want bridge.Seat
	}{
		{"user", bridge.SeatUser},
		{"left", bridge.SeatLeft},
		{"dummy", bridge.SeatDummy},
		{"RIGHT", bridge.SeatRight},
	}
	for _, tt := range tests {
		seat, err := ParseSeat(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, seat)
	}

	_, err := ParseSeat("north")
	assert.Error(t, err)
}

func TestParseBid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want game.Bid
	}{
		{"query", game.Query()},
		{"pass", game.Pass()},
		{"hearts", game.SuitBid(bridge.Hearts)},
		{"Diamonds", game.SuitBid(bridge.Diamonds)},
	}
	for _, tt := range tests {
		bid, err := ParseBid(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, bid)
	}

	_, err := ParseBid("double")
	assert.Error(t, err)
}

func TestViewStateAuction(t *testing.T) {
	t.Parallel()
	session := game.NewSession(randutil.New(7), bot.PassBot{})

	state := ViewState(session.Snapshot())
	assert.Equal(t, "auction", state.Phase)
	assert.Equal(t, game.OpeningBidNumber, state.BidNumber)
	assert.Equal(t, "user", state.FirstBidder)
	assert.Equal(t, "left", state.SecondBidder)
	require.NotNil(t, state.NextBidder)
	assert.Equal(t, "user", *state.NextBidder)
	assert.Nil(t, state.Contract)
	assert.Nil(t, state.Trick)

	require.Len(t, state.Hands, bridge.NumSeats)
	for _, name := range []string{"user", "left", "dummy", "right"} {
		assert.Len(t, state.Hands[name], bridge.HandSize)
	}
}

func TestViewStatePlaying(t *testing.T) {
	t.Parallel()
	session := game.NewSession(randutil.New(7), bot.PassBot{})
	require.NoError(t, session.ResolveBid(game.Pass()))

	state := ViewState(session.Snapshot())
	assert.Equal(t, "playing", state.Phase)
	assert.Nil(t, state.NextBidder)
	require.Len(t, state.FirstTurns, 1)
	assert.Equal(t, "pass", state.FirstTurns[0].Bid)
	require.Len(t, state.SecondTurns, 1)
	assert.Equal(t, "pass", state.SecondTurns[0].Bid)

	require.NotNil(t, state.Contract)
	assert.Nil(t, state.Contract.Trump)
	assert.Equal(t, 6, state.Contract.Tricks)
	assert.Equal(t, "user", state.Contract.Declarer)
	assert.Equal(t, "6NT by User", state.Contract.Display)

	require.NotNil(t, state.Trick)
	assert.Equal(t, "user", state.Trick.Lead)
	assert.Empty(t, state.Trick.Cards)
	require.NotNil(t, state.NextToPlay)
	assert.Equal(t, "user", *state.NextToPlay)
	assert.False(t, state.Over)
}
