package grouping

import (
	"github.com/timpalpant/alphabridge/cards"
	"github.com/timpalpant/alphabridge/contract"
)

// Naive puts every legal card in a group of its own.
type Naive struct{}

// Groups implements Strategy.
func (Naive) Groups(side contract.Side, hands [contract.NumSides]cards.Set, trick *contract.Trick, trump contract.Trump) []Group {
	legal := LegalCards(hands[side], trick)
	result := make([]Group, 0, legal.Len())
	for suit := cards.Spades; ; suit-- {
		m := legal.SuitMask(suit)
		for r := cards.Ace; m != 0; r-- {
			if m&(1<<r) != 0 {
				result = append(result, Group{Suit: suit, Ranks: 1 << r})
				m &^= 1 << r
			}
		}
		if suit == cards.Clubs {
			break
		}
	}
	return result
}
