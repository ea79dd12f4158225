package cards

import (
	"math/rand"
)

// NewDeck returns all 52 cards of the bridge deck in ascending order.
func NewDeck() []Card {
	return FullDeck().AsSlice()
}

// DealRandom shuffles a full deck with rng and deals n cards to each of
// four hands, in seating order.
func DealRandom(rng *rand.Rand, n int) [4]Set {
	if n < 0 || n > NumRanks {
		panic("cards per hand must be in [0, 13]")
	}

	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	var hands [4]Set
	for i := range hands {
		hands[i] = NewSet(deck[i*n : (i+1)*n]...)
	}
	return hands
}
