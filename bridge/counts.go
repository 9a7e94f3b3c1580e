package bridge

// SuitCounts tracks an integer per suit, indexed by the fixed suit
// order. Using a fixed-size array keeps the key domain closed and
// exhaustive, unlike a map.
type SuitCounts [NumSuits]int

// Get returns the value for a suit.
func (sc SuitCounts) Get(suit Suit) int {
	return sc[suit]
}

// Add adds n to the value for a suit.
func (sc *SuitCounts) Add(suit Suit, n int) {
	sc[suit] += n
}

// Sum returns the total across all four suits.
func (sc SuitCounts) Sum() int {
	total := 0
	for _, n := range sc {
		total += n
	}
	return total
}
