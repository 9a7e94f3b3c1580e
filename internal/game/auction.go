package game

import (
	"fmt"

	"github.com/tmaxwell/querybridge/bridge"
)

// BidKind discriminates the three kinds of bid.
type BidKind int

const (
	BidQuery BidKind = iota
	BidSuit
	BidPass
)

// Bid is a single bid placed in the auction: a Query asking the
// partner about its hand in general, a Suit asking about length in a
// specific suit, or a Pass.
type Bid struct {
	Kind BidKind
	Suit bridge.Suit // valid only when Kind == BidSuit
}

// Query returns a Query bid.
func Query() Bid { return Bid{Kind: BidQuery} }

// SuitBid returns a Suit bid nominating the given suit.
func SuitBid(suit bridge.Suit) Bid { return Bid{Kind: BidSuit, Suit: suit} }

// Pass returns a Pass bid.
func Pass() Bid { return Bid{Kind: BidPass} }

func (b Bid) String() string {
	switch b.Kind {
	case BidQuery:
		return "Query"
	case BidSuit:
		return b.Suit.String()
	case BidPass:
		return "Pass"
	default:
		return "?"
	}
}

// LengthOp qualifies a SuitLength response bound.
type LengthOp int

const (
	// Lte means the partner holds at most Length cards of the suit.
	Lte LengthOp = iota
	// Gte means the partner holds at least Length cards of the suit.
	Gte
	// Equal means the partner holds exactly Length cards of the suit.
	Equal
)

func (op LengthOp) String() string {
	switch op {
	case Lte:
		return "<="
	case Gte:
		return ">="
	case Equal:
		return "="
	default:
		return "?"
	}
}

// BidResponse is coded information about the partner's hand, derived
// deterministically from the partner's hand and the prior exchange.
type BidResponse interface {
	fmt.Stringer
	isBidResponse()
}

// PassResponse carries no information.
type PassResponse struct{}

// HandEvaluation reveals the partner's strength band, optionally in
// the context of a candidate trump suit.
type HandEvaluation struct {
	Rating bridge.Rating
	Trump  *bridge.Suit
}

// SuitLength bounds the partner's length in a suit.
type SuitLength struct {
	Suit   bridge.Suit
	Length int
	Op     LengthOp
}

// HandBalance reveals the partner's hand shape.
type HandBalance struct {
	Balance bridge.Balance
}

// LongestSuit identifies the partner's longest, strongest suit.
type LongestSuit struct {
	Suit bridge.Suit
}

// WeakestSuit identifies the partner's weakest suit.
type WeakestSuit struct {
	Suit bridge.Suit
}

// RankCount reveals how many cards of a rank the partner holds.
type RankCount struct {
	Rank  bridge.Rank
	Count int
}

func (PassResponse) isBidResponse()   {}
func (HandEvaluation) isBidResponse() {}
func (SuitLength) isBidResponse()     {}
func (HandBalance) isBidResponse()    {}
func (LongestSuit) isBidResponse()    {}
func (WeakestSuit) isBidResponse()    {}
func (RankCount) isBidResponse()      {}

func (PassResponse) String() string { return "Pass" }

func (r HandEvaluation) String() string {
	if r.Trump != nil {
		return fmt.Sprintf("%s with %s trumps", r.Rating, r.Trump)
	}
	return r.Rating.String()
}

func (r SuitLength) String() string {
	return fmt.Sprintf("%s %s %d", r.Suit, r.Op, r.Length)
}

func (r HandBalance) String() string { return r.Balance.String() }
func (r LongestSuit) String() string { return "Longest: " + r.Suit.String() }
func (r WeakestSuit) String() string { return "Weakest: " + r.Suit.String() }

func (r RankCount) String() string {
	return fmt.Sprintf("%d x %s", r.Count, r.Rank)
}

// AuctionTurn is one bid together with the coded responses it earned.
type AuctionTurn struct {
	Bid       Bid
	Responses []BidResponse
}

// Bidder identifies one of the two partnership voices in the auction.
type Bidder int

const (
	First Bidder = iota
	Second

	NumBidders = 2
)

// Opposite returns the other bidder.
func (b Bidder) Opposite() Bidder {
	return (b + 1) % NumBidders
}

func (b Bidder) String() string {
	if b == First {
		return "First"
	}
	return "Second"
}

// OpeningBidNumber is the minimum number of tricks a contract can be
// for.
const OpeningBidNumber = 6

// Auction tracks the two bidders' turn sequences and the escalating
// bid number.
type Auction struct {
	// BidNumber is the number of tricks currently being bid for.
	BidNumber int

	// Seats maps each Bidder to the seat it speaks for.
	Seats [NumBidders]bridge.Seat

	// Turns holds each Bidder's ordered turn sequence.
	Turns [NumBidders][]AuctionTurn
}

// NewAuction creates an auction at the opening bid number with the
// given seat assignment.
func NewAuction(first, second bridge.Seat) Auction {
	return Auction{
		BidNumber: OpeningBidNumber,
		Seats:     [NumBidders]bridge.Seat{first, second},
	}
}

// Seat returns the seat a bidder speaks for.
func (a *Auction) Seat(bidder Bidder) bridge.Seat {
	return a.Seats[bidder]
}

// HasPassed reports whether the bidder has placed a Pass turn. A
// bidder who has passed never bids again.
func (a *Auction) HasPassed(bidder Bidder) bool {
	for _, turn := range a.Turns[bidder] {
		if turn.Bid.Kind == BidPass {
			return true
		}
	}
	return false
}

// IsCompleted reports whether both bidders have passed.
func (a *Auction) IsCompleted() bool {
	return a.HasPassed(First) && a.HasPassed(Second)
}

// NextToBid returns the bidder who should act next, or false if the
// auction is complete. With neither side passed, the bidder with
// fewer turns acts, First on equal counts.
func (a *Auction) NextToBid() (Bidder, bool) {
	firstPassed, secondPassed := a.HasPassed(First), a.HasPassed(Second)
	switch {
	case firstPassed && secondPassed:
		return 0, false
	case firstPassed:
		return Second, true
	case secondPassed:
		return First, true
	case len(a.Turns[First]) > len(a.Turns[Second]):
		return Second, true
	default:
		return First, true
	}
}

// QueryCount returns how many Query bids the bidder has placed.
func (a *Auction) QueryCount(bidder Bidder) int {
	n := 0
	for _, turn := range a.Turns[bidder] {
		if turn.Bid.Kind == BidQuery {
			n++
		}
	}
	return n
}

// previousSuitResponse returns the bound given in the most recent
// SuitLength response this bidder has received for a suit, if any.
func (a *Auction) previousSuitResponse(bidder Bidder, suit bridge.Suit) (int, LengthOp, bool) {
	turns := a.Turns[bidder]
	for i := len(turns) - 1; i >= 0; i-- {
		for _, response := range turns[i].Responses {
			if sl, ok := response.(SuitLength); ok && sl.Suit == suit {
				return sl.Length, sl.Op, true
			}
		}
	}
	return 0, 0, false
}

// Declarer returns the bidder who declares the contract: whichever
// made more turns, ties favoring First.
func (a *Auction) Declarer() Bidder {
	if len(a.Turns[Second]) > len(a.Turns[First]) {
		return Second
	}
	return First
}

// Contract is the outcome of a completed auction: an optional trump
// suit, a trick target and the declaring seat. It is immutable once
// derived.
type Contract struct {
	Trump    *bridge.Suit
	Tricks   int
	Declarer bridge.Seat
}

func (c Contract) String() string {
	trump := "NT"
	if c.Trump != nil {
		trump = c.Trump.String()
	}
	return fmt.Sprintf("%d%s by %s", c.Tricks, trump, c.Declarer)
}

// findContract derives the contract from a completed auction. The
// trump suit is taken from the declarer's most recent non-Pass bid if
// that bid nominated a suit; the round of bidding that triggered
// completion does not count toward the trick target.
func (a *Auction) findContract(declarer Bidder) Contract {
	var trump *bridge.Suit
	turns := a.Turns[declarer]
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Bid.Kind == BidPass {
			continue
		}
		if turns[i].Bid.Kind == BidSuit {
			suit := turns[i].Bid.Suit
			trump = &suit
		}
		break
	}
	return Contract{
		Trump:    trump,
		Tricks:   a.BidNumber - 1,
		Declarer: a.Seat(declarer),
	}
}

// queryResponses computes the responses to a Query bid. Each
// successive Query from the same bidder unlocks the next entry in a
// fixed escalating sequence of information about the partner's hand.
func (g *GameData) queryResponses(bidder Bidder) []BidResponse {
	hand := g.Hand(g.Auction.Seat(bidder).Partner())
	hs := bridge.Score(hand)
	switch g.Auction.QueryCount(bidder) {
	case 0:
		return []BidResponse{
			HandEvaluation{Rating: bridge.RatingOf(bridge.Evaluate(hs, nil))},
			LongestSuit{Suit: bridge.LongestSuit(hs)},
		}
	case 1:
		return []BidResponse{
			HandBalance{Balance: bridge.BalanceOf(hs)},
			WeakestSuit{Suit: bridge.WeakestSuit(hs)},
		}
	case 2:
		return []BidResponse{RankCount{Rank: bridge.Ace, Count: bridge.CountRank(hand, bridge.Ace)}}
	case 3:
		return []BidResponse{RankCount{Rank: bridge.King, Count: bridge.CountRank(hand, bridge.King)}}
	case 4:
		return []BidResponse{RankCount{Rank: bridge.Queen, Count: bridge.CountRank(hand, bridge.Queen)}}
	case 5:
		return []BidResponse{RankCount{Rank: bridge.Jack, Count: bridge.CountRank(hand, bridge.Jack)}}
	default:
		return []BidResponse{PassResponse{}}
	}
}

// boundedSuitLength compares the held count against a constraint,
// keeping the established direction when they are equal.
func boundedSuitLength(suit bridge.Suit, have, constraint int, bias LengthOp) SuitLength {
	op := bias
	switch {
	case have < constraint:
		op = Lte
	case have > constraint:
		op = Gte
	}
	return SuitLength{Suit: suit, Length: constraint, Op: op}
}

// suitResponses computes the responses to a Suit bid. The first ask
// for a suit yields a coarse bound against a fixed target; repeat asks
// narrow the prior bound by one card, or answer Equal once the bound
// meets the true count, and attach a fresh evaluation with that suit
// as trump.
func (g *GameData) suitResponses(bidder Bidder, suit bridge.Suit) []BidResponse {
	hs := bridge.Score(g.Hand(g.Auction.Seat(bidder).Partner()))
	count := hs.Counts.Get(suit)

	prev, op, asked := g.Auction.previousSuitResponse(bidder, suit)
	if !asked {
		// Target is 3 on the bidder's opening turn, 4 afterwards.
		target := 4
		if len(g.Auction.Turns[bidder]) == 0 {
			target = 3
		}
		if count < target {
			return []BidResponse{SuitLength{Suit: suit, Length: target - 1, Op: Lte}}
		}
		return []BidResponse{SuitLength{Suit: suit, Length: target, Op: Gte}}
	}

	var length SuitLength
	switch {
	case prev == count:
		length = boundedSuitLength(suit, count, prev, Equal)
	case op == Lte:
		length = boundedSuitLength(suit, count, prev-1, op)
	case op == Gte:
		length = boundedSuitLength(suit, count, prev+1, op)
	default:
		length = boundedSuitLength(suit, count, prev, op)
	}

	return []BidResponse{
		length,
		HandEvaluation{Rating: bridge.RatingOf(bridge.Evaluate(hs, &suit)), Trump: &suit},
	}
}

// AppendBidResponse computes the responses for a bid, appends the
// resulting turn to the bidder's sequence, and advances the bid number
// once both sides have acted in the current round (or bidding for one
// side is closed).
func (g *GameData) AppendBidResponse(bidder Bidder, bid Bid) {
	var responses []BidResponse
	switch bid.Kind {
	case BidQuery:
		responses = g.queryResponses(bidder)
	case BidSuit:
		responses = g.suitResponses(bidder, bid.Suit)
	default:
		responses = []BidResponse{PassResponse{}}
	}

	g.Auction.Turns[bidder] = append(g.Auction.Turns[bidder], AuctionTurn{Bid: bid, Responses: responses})

	if len(g.Auction.Turns[First]) == len(g.Auction.Turns[Second]) ||
		g.Auction.HasPassed(bidder.Opposite()) {
		g.Auction.BidNumber++
	}
}
