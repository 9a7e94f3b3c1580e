package bot

import (
	"github.com/tmaxwell/querybridge/bridge"
	"github.com/tmaxwell/querybridge/internal/game"
)

// Heuristic bids and plays with simple deterministic rules. In the
// auction it estimates the partnership's combined points from the
// coded responses it has received and passes when the estimate is
// below the going rate for the current bid number. In play it wins
// the trick when it can and its partner is not already winning,
// otherwise it throws off its weakest card.
type Heuristic struct{}

var _ game.Agent = Heuristic{}

// passThresholds maps a bid number to the minimum predicted combined
// point count required to keep bidding at that level.
var passThresholds = map[int]int{
	6:  16,
	7:  24,
	8:  26,
	9:  28,
	10: 30,
	11: 32,
	12: 34,
}

func (Heuristic) SelectBid(g *game.GameData, bidder game.Bidder) game.Bid {
	// No contract above thirteen tricks is winnable, so the auction
	// must not escalate past it no matter how strong the fit looks.
	if g.Auction.BidNumber > bridge.HandSize {
		return game.Pass()
	}

	responses := receivedResponses(g, bidder)
	score := bridge.Score(g.Hand(g.Auction.Seat(bidder)))
	trump := findTrumpFit(score, responses)

	points := predictedCombinedPoints(score, responses, trump)
	if threshold, ok := passThresholds[g.Auction.BidNumber]; ok && points < threshold {
		return game.Pass()
	}
	return highestPriorityBid(score, responses, trump)
}

func (Heuristic) SelectPlay(data *game.PlayData, seat bridge.Seat) int {
	if winner, ok := data.TrickWinner(); !ok || winner.Seat != seat.Partner() {
		if index, ok := findWinningCard(data, seat); ok {
			return index
		}
	}
	return findDiscard(data, seat)
}

// receivedResponses flattens the coded responses the bidder has
// collected, most recent turn first.
func receivedResponses(g *game.GameData, bidder game.Bidder) []game.BidResponse {
	turns := g.Auction.Turns[bidder]
	var responses []game.BidResponse
	for i := len(turns) - 1; i >= 0; i-- {
		responses = append(responses, turns[i].Responses...)
	}
	return responses
}

// findTrumpFit looks for a suit in which the partnership holds eight
// or more cards between them, preferring the one the bidder's own
// hand is strongest in. A partner's longest suit is assumed to hold
// five cards.
func findTrumpFit(score bridge.HandScore, responses []game.BidResponse) *bridge.Suit {
	var fit *bridge.Suit
	for _, response := range responses {
		var suit bridge.Suit
		switch r := response.(type) {
		case game.SuitLength:
			if r.Op == game.Lte || r.Length+score.Counts.Get(r.Suit) < 8 {
				continue
			}
			suit = r.Suit
		case game.LongestSuit:
			if 5+score.Counts.Get(r.Suit) < 8 {
				continue
			}
			suit = r.Suit
		default:
			continue
		}
		if fit == nil || score.Points.Get(suit) >= score.Points.Get(*fit) {
			s := suit
			fit = &s
		}
	}
	return fit
}

// predictedCombinedPoints estimates the points available to the
// partnership. With no evaluation from partner yet, assume an average
// holding of 10.
func predictedCombinedPoints(score bridge.HandScore, responses []game.BidResponse, trump *bridge.Suit) int {
	best := -1
	for _, response := range responses {
		eval, ok := response.(game.HandEvaluation)
		if !ok {
			continue
		}
		points := eval.Rating.ApproximatePoints()
		if eval.Trump != nil && trump != nil && *eval.Trump == *trump {
			points += bridge.Evaluate(score, eval.Trump)
		} else {
			points += score.Points.Sum()
		}
		if points > best {
			best = points
		}
	}
	if best < 0 {
		return score.Points.Sum() + 10
	}
	return best
}

type candidateSuit struct {
	count  int
	points int
	suit   bridge.Suit
}

// prioritizedSuitBid picks the longest, then strongest, suit the
// bidder has received no information about yet.
func prioritizedSuitBid(score bridge.HandScore, responses []game.BidResponse) (candidateSuit, bool) {
	known := make(map[bridge.Suit]bool)
	for _, response := range responses {
		switch r := response.(type) {
		case game.SuitLength:
			known[r.Suit] = true
		case game.HandEvaluation:
			if r.Trump != nil {
				known[*r.Trump] = true
			}
		case game.LongestSuit:
			known[r.Suit] = true
		case game.WeakestSuit:
			known[r.Suit] = true
		}
	}

	var best candidateSuit
	found := false
	for _, suit := range bridge.Suits {
		if known[suit] {
			continue
		}
		cand := candidateSuit{score.Counts.Get(suit), score.Points.Get(suit), suit}
		if !found || cand.count > best.count ||
			(cand.count == best.count && cand.points >= best.points) {
			best = cand
			found = true
		}
	}
	return best, found
}

func evaluationCount(responses []game.BidResponse) int {
	count := 0
	for _, response := range responses {
		if _, ok := response.(game.HandEvaluation); ok {
			count++
		}
	}
	return count
}

// highestPriorityBid picks a bid in priority order: raise a known
// trump fit, open an unexplored five-card suit, query for a first
// evaluation, bid a strong four-card suit, then keep querying.
func highestPriorityBid(score bridge.HandScore, responses []game.BidResponse, trump *bridge.Suit) game.Bid {
	if trump != nil {
		return game.SuitBid(*trump)
	}
	cand, ok := prioritizedSuitBid(score, responses)
	if !ok {
		return game.Query()
	}
	switch {
	case cand.count >= 5:
		return game.SuitBid(cand.suit)
	case evaluationCount(responses) == 0:
		return game.Query()
	case cand.count >= 4 && cand.points >= 3:
		return game.SuitBid(cand.suit)
	default:
		return game.Query()
	}
}

// findWinningCard returns the index of the highest-power card in hand
// that would win the current trick, preferring higher ranks and later
// hand positions on equal power.
func findWinningCard(data *game.PlayData, seat bridge.Seat) (int, bool) {
	var best game.IndexedCard
	found := false
	for _, play := range data.WinningPlays(seat) {
		if !found || morePowerful(data, play.Card, best.Card) >= 0 {
			best = play
			found = true
		}
	}
	return best.Index, found
}

// findDiscard returns the index of the lowest-power legal card,
// either following suit or throwing off.
func findDiscard(data *game.PlayData, seat bridge.Seat) int {
	plays := data.LegalPlays(seat)
	if len(plays) == 0 {
		panic("bot: no legal plays")
	}
	best := plays[0]
	for _, play := range plays[1:] {
		if morePowerful(data, play.Card, best.Card) < 0 {
			best = play
		}
	}
	return best.Index
}

// morePowerful orders cards by trick-taking power, breaking ties by
// rank.
func morePowerful(data *game.PlayData, a, b bridge.Card) int {
	if cmp := data.CompareCardPower(a, b); cmp != 0 {
		return cmp
	}
	return int(a.Rank) - int(b.Rank)
}
