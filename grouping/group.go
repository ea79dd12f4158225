// Package grouping partitions the legal cards of the side to move into
// groups of interchangeable cards, so that a search only needs to try one
// card of each group.
package grouping

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/timpalpant/alphabridge/cards"
	"github.com/timpalpant/alphabridge/contract"
)

// Reason records why the cards of a Group were merged.
type Reason uint8

const (
	// None is used for groups of a single card.
	None Reason = iota
	// Neighboring cards have no other live card of the suit between them.
	Neighboring
	// SureWin cards all take the lead in the current trick and are only
	// separated by cards already played to it.
	SureWin
	// SureLose cards all fail to take the lead in the current trick and
	// are only separated by cards already played to it.
	SureLose
)

var reasonStr = [...]string{
	"None",
	"Neighboring",
	"SureWin",
	"SureLose",
}

func (r Reason) String() string {
	return reasonStr[r]
}

// Group is a set of cards in one suit that lead to equivalent outcomes.
type Group struct {
	Suit cards.Suit
	// Ranks has bit r set for each member of rank r.
	Ranks  uint16
	Reason Reason
}

// Representative returns the card that is played to explore the group:
// its lowest member.
func (g Group) Representative() cards.Card {
	return cards.NewCard(g.Suit, cards.Rank(bits.TrailingZeros16(g.Ranks)))
}

// Len returns the number of cards in the group.
func (g Group) Len() int {
	return bits.OnesCount16(g.Ranks)
}

// Cards returns the members of the group.
func (g Group) Cards() cards.Set {
	result := cards.Set(0)
	for r := cards.Two; r <= cards.Ace; r++ {
		if g.Ranks&(1<<r) != 0 {
			result.Add(cards.NewCard(g.Suit, r))
		}
	}
	return result
}

// Contains returns whether card is a member of the group.
func (g Group) Contains(card cards.Card) bool {
	return card.Suit() == g.Suit && g.Ranks&(1<<card.Rank()) != 0
}

func (g Group) String() string {
	var sb strings.Builder
	sb.WriteString(g.Suit.Symbol())
	for r := cards.Ace; ; r-- {
		if g.Ranks&(1<<r) != 0 {
			sb.WriteString(r.String())
		}
		if r == cards.Two {
			break
		}
	}
	if g.Reason != None {
		sb.WriteString(fmt.Sprintf("(%v)", g.Reason))
	}
	return sb.String()
}

// Strategy computes the groups of legal cards for the side to move.
//
// Groups are returned by suit from Spades down to Clubs and, within a
// suit, from the highest group down. Every legal card belongs to exactly
// one group.
type Strategy interface {
	Groups(side contract.Side, hands [contract.NumSides]cards.Set, trick *contract.Trick, trump contract.Trump) []Group
}

// LegalCards returns the cards side may play to trick: the called suit if
// side holds it, else any card.
func LegalCards(hand cards.Set, trick *contract.Trick) cards.Set {
	if called, ok := trick.CalledSuit(); ok && hand.HasSuit(called) {
		return hand.OfSuit(called)
	}
	return hand
}

// IsLegal returns whether side may play card to trick.
func IsLegal(hand cards.Set, trick *contract.Trick, card cards.Card) bool {
	return LegalCards(hand, trick).Contains(card)
}
