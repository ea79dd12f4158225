package alphabridge

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/timpalpant/alphabridge/cards"
	"github.com/timpalpant/alphabridge/contract"
)

// Deal is the starting point of a double-dummy analysis: the four hands,
// the trump and the side making the opening lead.
type Deal struct {
	Hands  [contract.NumSides]cards.Set
	Trump  contract.Trump
	Leader contract.Side
}

// ParseDeal builds a Deal from four hands in S.H.D.C notation, given in
// the order North, East, South, West.
func ParseDeal(hands [contract.NumSides]string, trump contract.Trump, leader contract.Side) (Deal, error) {
	deal := Deal{Trump: trump, Leader: leader}
	for i, hand := range hands {
		set, err := cards.ParseSet(hand)
		if err != nil {
			return Deal{}, errors.Wrapf(err, "%v", contract.Side(i))
		}
		deal.Hands[i] = set
	}
	return deal, nil
}

// NewRandomDeal creates a Deal as if the deck were shuffled and each side
// were dealt cardsPerHand cards.
func NewRandomDeal(rng *rand.Rand, cardsPerHand int, trump contract.Trump, leader contract.Side) Deal {
	return Deal{
		Hands:  cards.DealRandom(rng, cardsPerHand),
		Trump:  trump,
		Leader: leader,
	}
}

func (d Deal) String() string {
	return fmt.Sprintf("N: %v, E: %v, S: %v, W: %v, trump: %v, %v leads",
		d.Hands[contract.North], d.Hands[contract.East],
		d.Hands[contract.South], d.Hands[contract.West], d.Trump, d.Leader)
}
