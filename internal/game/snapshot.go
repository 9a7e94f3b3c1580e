package game

import (
	"slices"

	"github.com/tmaxwell/querybridge/bridge"
)

// Snapshot is an immutable view of a session at a point in time, for
// presentation layers. Slices are copies and may be retained.
type Snapshot struct {
	Phase     Phase
	BidNumber int
	Hands     [bridge.NumSeats][]bridge.Card

	// Auction state. Turns is indexed by Bidder.
	Turns      [NumBidders][]AuctionTurn
	BidderSeat [NumBidders]bridge.Seat
	NextBidder *Bidder

	// Play state, zero-valued until the auction completes.
	Contract     Contract
	Trick        []PlayedCard
	TrickLead    bridge.Seat
	Completed    []CompletedTrick
	NextToPlay   *bridge.Seat
	DeclarerWins int
	DefenderWins int
	Over         bool
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.phase,
		BidNumber: s.game.Auction.BidNumber,
	}
	for _, seat := range bridge.Seats {
		snap.Hands[seat] = slices.Clone(s.game.Hand(seat))
	}
	for _, bidder := range []Bidder{First, Second} {
		snap.Turns[bidder] = slices.Clone(s.game.Auction.Turns[bidder])
		snap.BidderSeat[bidder] = s.game.Auction.Seat(bidder)
	}
	if bidder, ok := s.game.Auction.NextToBid(); ok {
		snap.NextBidder = &bidder
	}

	if s.play != nil {
		snap.Contract = s.play.Contract
		snap.Trick = s.play.Trick.Cards()
		snap.TrickLead = s.play.Trick.Lead
		snap.Completed = slices.Clone(s.play.Completed)
		if seat, ok := s.play.NextToPlay(); ok {
			snap.NextToPlay = &seat
		}
		snap.DeclarerWins = s.play.TricksWon(s.play.Contract.Declarer)
		snap.DefenderWins = s.play.TricksWon(s.play.Contract.Declarer.Next())
		snap.Over = s.play.IsOver()
	}
	return snap
}

// ContractMade reports whether the declaring side has taken enough
// tricks to fulfil the contract. Only meaningful once Over is true.
func (snap Snapshot) ContractMade() bool {
	return snap.DeclarerWins >= snap.Contract.Tricks
}
