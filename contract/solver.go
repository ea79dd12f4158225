package contract

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/alphabridge/cards"
)

// beats returns whether challenger takes the trick from current, given the
// trump. Cards of a suit that is neither the current winner's suit nor
// trump never win.
func beats(challenger, current cards.Card, trump Trump) bool {
	if challenger.Suit() == current.Suit() {
		return challenger.Rank() > current.Rank()
	}

	trumpSuit, ok := trump.Suit()
	return ok && challenger.Suit() == trumpSuit
}

// Leader returns the side currently winning a possibly partial trick.
// For an empty trick it is the side on lead.
func Leader(t *Trick, trump Trump) Side {
	if t.n == 0 {
		return t.leader
	}

	winner := t.leader
	best := t.cards[winner]
	for i := uint8(1); i < t.n; i++ {
		side := (t.leader + Side(i)) % NumSides
		if beats(t.cards[side], best, trump) {
			winner, best = side, t.cards[side]
		}
	}
	return winner
}

// Winner returns the side that wins a complete trick.
func Winner(t *Trick, trump Trump) (Side, error) {
	if !t.IsComplete() {
		return 0, errors.Wrapf(ErrMissingCard, "trick %v has %d cards", t, t.n)
	}
	return Leader(t, trump), nil
}

// DoesBeatLeader returns whether card, if played next, would take the lead
// in the trick. Any card leads an empty trick.
func DoesBeatLeader(t *Trick, trump Trump, card cards.Card) bool {
	if t.n == 0 {
		return true
	}
	return beats(card, t.cards[Leader(t, trump)], trump)
}
