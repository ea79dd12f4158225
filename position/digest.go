package position

import (
	"math/bits"

	"github.com/timpalpant/alphabridge/cards"
)

// The 13 ranks of each suit are split at a fixed boundary: the six
// highest ranks (Nine..Ace) are folded into the hash and the seven lowest
// (Two..Eight) into the label.
const (
	labelBitsPerSuit = 7
	hashBitsPerSuit  = cards.NumRanks - labelBitsPerSuit
	labelSuitMask    = 1<<labelBitsPerSuit - 1
	hashSuitMask     = 1<<hashBitsPerSuit - 1
)

// HashAndLabel folds the remaining cards into two digests.
//
// The hash is a 24-bit value used to select a storage bucket and the label
// is a 28-bit value that tells apart the sets sharing a hash. Together they
// determine the remaining cards exactly.
func HashAndLabel(remaining cards.Set) (hash, label uint32) {
	for suit := cards.Clubs; suit <= cards.Spades; suit++ {
		m := uint32(remaining.SuitMask(suit))
		label |= (m & labelSuitMask) << (uint(suit) * labelBitsPerSuit)
		hash |= ((m >> labelBitsPerSuit) & hashSuitMask) << (uint(suit) * hashBitsPerSuit)
	}
	return hash, label
}

// CountCards returns the number of remaining cards that produced the
// given digests.
func CountCards(hash, label uint32) int {
	return bits.OnesCount32(hash) + bits.OnesCount32(label)
}

// Remaining rebuilds the set of remaining cards from its digests.
func Remaining(hash, label uint32) cards.Set {
	result := cards.Set(0)
	for suit := cards.Clubs; suit <= cards.Spades; suit++ {
		low := (label >> (uint(suit) * labelBitsPerSuit)) & labelSuitMask
		high := (hash >> (uint(suit) * hashBitsPerSuit)) & hashSuitMask
		m := low | high<<labelBitsPerSuit
		for r := cards.Two; r <= cards.Ace; r++ {
			if m&(1<<r) != 0 {
				result.Add(cards.NewCard(suit, r))
			}
		}
	}
	return result
}
