package game

import "github.com/tmaxwell/querybridge/bridge"

// Agent supplies bids and plays for the automated seats. The engine
// only invokes an agent when the seat in question has at least one
// legal action available; being asked to act with none is a contract
// violation and implementations should panic rather than guess.
type Agent interface {
	// SelectBid returns the bid the agent wants to place for the
	// given bidder role.
	SelectBid(game *GameData, bidder Bidder) Bid

	// SelectPlay returns the index (into the seat's displayed hand)
	// of the card to play, either leading a new trick or following
	// the current one.
	SelectPlay(data *PlayData, seat bridge.Seat) int
}
