package grouping

import (
	"github.com/timpalpant/alphabridge/cards"
	"github.com/timpalpant/alphabridge/contract"
)

// Compressed merges cards of the side to move that cannot lead to
// different outcomes.
//
// Two cards of the same suit are merged when no other side holds a card
// of that suit ranked between them. Cards already played to the current
// trick may lie between them, provided both cards agree on whether they
// would take the lead: once the trick closes those cards are gone and the
// pair is adjacent again.
type Compressed struct{}

// Groups implements Strategy.
func (Compressed) Groups(side contract.Side, hands [contract.NumSides]cards.Set, trick *contract.Trick, trump contract.Trump) []Group {
	legal := LegalCards(hands[side], trick)
	others := cards.Set(0)
	for s, hand := range hands {
		if contract.Side(s) != side {
			others = others.Union(hand)
		}
	}
	inTrick := trick.Cards()

	result := make([]Group, 0, legal.Len())
	for suit := cards.Spades; ; suit-- {
		result = appendSuitGroups(result, suit, legal.SuitMask(suit),
			others.SuitMask(suit), inTrick.SuitMask(suit), trick, trump)
		if suit == cards.Clubs {
			break
		}
	}
	return result
}

func appendSuitGroups(result []Group, suit cards.Suit, mine, others, inTrick uint16, trick *contract.Trick, trump contract.Trump) []Group {
	if mine == 0 {
		return result
	}

	var (
		current    Group
		lowest     cards.Rank
		lowestWins bool
		spansTrick bool
		open       bool
	)

	closeGroup := func() {
		if !open {
			return
		}
		switch {
		case current.Len() == 1:
			current.Reason = None
		case spansTrick && lowestWins:
			current.Reason = SureWin
		case spansTrick:
			current.Reason = SureLose
		default:
			current.Reason = Neighboring
		}
		result = append(result, current)
		open = false
	}

	for r := cards.Ace; ; r-- {
		if mine&(1<<r) != 0 {
			wins := contract.DoesBeatLeader(trick, trump, cards.NewCard(suit, r))
			if open {
				between := rangeMask(r, lowest)
				switch {
				case others&between != 0:
					closeGroup()
				case inTrick&between != 0 && wins != lowestWins:
					closeGroup()
				case inTrick&between != 0:
					spansTrick = true
				}
			}

			if !open {
				current = Group{Suit: suit}
				spansTrick = false
				open = true
			}
			current.Ranks |= 1 << r
			lowest, lowestWins = r, wins
		}
		if r == cards.Two {
			break
		}
	}
	closeGroup()
	return result
}

// rangeMask returns the ranks strictly between lo and hi.
func rangeMask(lo, hi cards.Rank) uint16 {
	if hi <= lo+1 {
		return 0
	}
	return (uint16(1)<<hi - 1) &^ (uint16(1)<<(lo+1) - 1)
}
