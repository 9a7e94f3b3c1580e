package bridge

// HandScore holds the per-suit card counts and high card point scores
// for a single hand.
type HandScore struct {
	Counts SuitCounts
	Points SuitCounts
}

// HighCardPoints returns the standard point value of a rank:
// Ace=4, King=3, Queen=2, Jack=1, everything else 0.
func HighCardPoints(rank Rank) int {
	switch rank {
	case Ace:
		return 4
	case King:
		return 3
	case Queen:
		return 2
	case Jack:
		return 1
	default:
		return 0
	}
}

// Score computes the per-suit counts and high card points for a hand.
func Score(hand []Card) HandScore {
	var hs HandScore
	for _, card := range hand {
		hs.Counts.Add(card.Suit, 1)
		hs.Points.Add(card.Suit, HighCardPoints(card.Rank))
	}
	return hs
}

// Evaluate computes a total strength score for a hand. When a trump
// suit is supplied, short-suit points are added for every non-trump
// suit: void=5, singleton=3, doubleton=1.
func Evaluate(hs HandScore, trump *Suit) int {
	total := hs.Points.Sum()
	if trump == nil {
		return total
	}
	for _, suit := range Suits {
		if suit == *trump {
			continue
		}
		switch hs.Counts.Get(suit) {
		case 0:
			total += 5
		case 1:
			total += 3
		case 2:
			total += 1
		}
	}
	return total
}

// Rating is a discretized band of hand strength, used when the exact
// score is hidden from the partner.
type Rating int

const (
	Terrible Rating = iota
	Poor
	Fair
	Good
	Excellent
	Superb
)

// RatingOf buckets an integer score into a Rating.
func RatingOf(points int) Rating {
	switch {
	case points <= 5:
		return Terrible
	case points <= 9:
		return Poor
	case points <= 12:
		return Fair
	case points <= 15:
		return Good
	case points <= 18:
		return Excellent
	default:
		return Superb
	}
}

// ApproximatePoints returns a representative point value for the band.
func (r Rating) ApproximatePoints() int {
	switch r {
	case Terrible:
		return 5
	case Poor:
		return 8
	case Fair:
		return 10
	case Good:
		return 13
	case Excellent:
		return 16
	default:
		return 19
	}
}

func (r Rating) String() string {
	switch r {
	case Terrible:
		return "Terrible"
	case Poor:
		return "Poor"
	case Fair:
		return "Fair"
	case Good:
		return "Good"
	case Excellent:
		return "Excellent"
	case Superb:
		return "Superb"
	default:
		return "?"
	}
}

// Balance classifies the shape of a hand. A balanced hand contains at
// most one doubleton and no singletons or voids.
type Balance int

const (
	Balanced Balance = iota
	Unbalanced
)

func (b Balance) String() string {
	if b == Balanced {
		return "Balanced"
	}
	return "Unbalanced"
}

// BalanceOf classifies a scored hand as Balanced or Unbalanced.
func BalanceOf(hs HandScore) Balance {
	short := 0
	for _, suit := range Suits {
		n := hs.Counts.Get(suit)
		if n <= 1 {
			return Unbalanced
		}
		if n <= 2 {
			short++
		}
	}
	if short <= 1 {
		return Balanced
	}
	return Unbalanced
}

// LongestSuit returns the suit maximizing (count, points). On an exact
// tie the later suit in the fixed order wins.
func LongestSuit(hs HandScore) Suit {
	best := Suits[0]
	for _, suit := range Suits[1:] {
		if hs.Counts.Get(suit) > hs.Counts.Get(best) ||
			(hs.Counts.Get(suit) == hs.Counts.Get(best) && hs.Points.Get(suit) >= hs.Points.Get(best)) {
			best = suit
		}
	}
	return best
}

// WeakestSuit returns the suit minimizing (points, count). On an exact
// tie the earlier suit in the fixed order wins.
func WeakestSuit(hs HandScore) Suit {
	best := Suits[0]
	for _, suit := range Suits[1:] {
		if hs.Points.Get(suit) < hs.Points.Get(best) ||
			(hs.Points.Get(suit) == hs.Points.Get(best) && hs.Counts.Get(suit) < hs.Counts.Get(best)) {
			best = suit
		}
	}
	return best
}

// CountRank returns how many cards of the given rank the hand holds.
func CountRank(hand []Card, rank Rank) int {
	n := 0
	for _, card := range hand {
		if card.Rank == rank {
			n++
		}
	}
	return n
}
