// Package position holds the four remaining hands of a deal and the side
// to move, along with the digests used to memoize search results.
package position

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/timpalpant/alphabridge/cards"
	"github.com/timpalpant/alphabridge/contract"
)

var (
	ErrHandSize      = errors.New("hand sizes are inconsistent")
	ErrDuplicateCard = errors.New("card is held more than once")
	ErrSideToMove    = errors.New("side to move does not match the contract")
)

// Position is a snapshot of the cards still held by each side and the
// side due to play.
//
// Positions are small values. The searcher keeps a stack of them and
// pushes a modified copy for every card played.
type Position struct {
	hands  [contract.NumSides]cards.Set
	toMove contract.Side
}

// NewChecked returns the Position for the given hands and side to move,
// after verifying it is consistent with the play recorded in c.
//
// The hands must be pairwise disjoint and share no card with the cards
// already played. Once the sides that already played to the current
// trick are credited with that card, all hands must have the same length.
// The side to move must be the side the contract expects next.
func NewChecked(hands [contract.NumSides]cards.Set, toMove contract.Side, c *contract.Contract) (Position, error) {
	if toMove >= contract.NumSides {
		return Position{}, errors.Wrapf(ErrSideToMove, "invalid side %v", toMove)
	}

	seen := c.Played()
	for side, hand := range hands {
		if hand.Len() > cards.NumRanks {
			return Position{}, errors.Wrapf(ErrHandSize, "%v holds %d cards",
				contract.Side(side), hand.Len())
		}
		if dup := seen.Intersect(hand); !dup.IsEmpty() {
			return Position{}, errors.Wrapf(ErrDuplicateCard, "%v holds %v which is held or played elsewhere",
				contract.Side(side), dup)
		}
		seen = seen.Union(hand)
	}

	trick := c.CurrentTrick()
	expected := -1
	for side, hand := range hands {
		n := hand.Len()
		if trick.HasPlayed(contract.Side(side)) {
			n++
		}
		if expected < 0 {
			expected = n
		} else if n != expected {
			return Position{}, errors.Wrapf(ErrHandSize, "%v has %d cards for the trick, %v has %d",
				contract.Side(side), n, contract.North, expected)
		}
	}
	if expected+c.NumCompleted() > contract.NumTricks {
		return Position{}, errors.Wrapf(ErrHandSize, "%d cards per hand after %d tricks",
			expected, c.NumCompleted())
	}

	for side, hand := range hands {
		for suit := cards.Clubs; suit <= cards.Spades; suit++ {
			if hand.HasSuit(suit) && c.IsExhausted(contract.Side(side), suit) {
				return Position{}, errors.Wrapf(contract.ErrExhaustedSuit, "%v holds %v", contract.Side(side), suit)
			}
		}
	}

	if toMove != c.NextToPlay() {
		return Position{}, errors.Wrapf(ErrSideToMove, "%v to move, contract expects %v", toMove, c.NextToPlay())
	}

	return Position{hands: hands, toMove: toMove}, nil
}

// Hand returns the cards held by side.
func (p Position) Hand(side contract.Side) cards.Set {
	return p.hands[side]
}

// Hands returns the cards held by every side.
func (p Position) Hands() [contract.NumSides]cards.Set {
	return p.hands
}

// SideToMove returns the side due to play.
func (p Position) SideToMove() contract.Side {
	return p.toMove
}

// Remaining returns every card still held by any side.
func (p Position) Remaining() cards.Set {
	return p.hands[0] | p.hands[1] | p.hands[2] | p.hands[3]
}

// TricksLeft returns the number of tricks still to be completed,
// counting the trick in progress.
func (p Position) TricksLeft() int {
	n := 0
	for _, hand := range p.hands {
		if hand.Len() > n {
			n = hand.Len()
		}
	}
	return n
}

// HashAndLabel returns the digests of the remaining cards.
func (p Position) HashAndLabel() (hash, label uint32) {
	return HashAndLabel(p.Remaining())
}

// RemoveCardCurrentSide returns the Position after the side to move has
// given up card. The side to move is left unchanged.
func (p Position) RemoveCardCurrentSide(card cards.Card) Position {
	p.hands[p.toMove].Remove(card)
	return p
}

// SetCurrentSide returns the Position with side to move.
func (p Position) SetCurrentSide(side contract.Side) Position {
	p.toMove = side
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("N: %v, E: %v, S: %v, W: %v; %v to move",
		p.hands[contract.North], p.hands[contract.East],
		p.hands[contract.South], p.hands[contract.West], p.toMove)
}
