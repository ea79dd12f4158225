package contract

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/timpalpant/alphabridge/cards"
)

// NumTricks is the number of tricks in a full deal.
const NumTricks = 13

// Contract accumulates the cardplay of one deal, one card at a time.
//
// Completed tricks are archived in a pre-sized array so that a Contract is
// a plain value: Clone is a struct copy. Any additional fields added to
// Contract must be value types for the same reason.
type Contract struct {
	trump Trump
	// Completed tricks, in order of play.
	tricks  [NumTricks]Trick
	nTricks int
	current Trick
	// All cards inserted so far, including those in the current trick.
	played cards.Set
	// exhausted[side] has bit s set when side failed to follow suit s.
	exhausted [NumSides]uint8
	won       [2]int
	history   History
}

// New returns a Contract whose first trick is led by leader.
func New(leader Side, trump Trump) *Contract {
	return &Contract{
		trump:   trump,
		current: NewTrick(leader),
	}
}

// NewFromDeclarer returns a Contract for the given declarer: the opening
// lead is made by the declarer's left-hand opponent.
func NewFromDeclarer(declarer Side, trump Trump) *Contract {
	return New(declarer.Next(), trump)
}

// Clone returns an independent copy of the Contract.
func (c *Contract) Clone() *Contract {
	result := *c
	return &result
}

func (c *Contract) Trump() Trump {
	return c.trump
}

// CurrentTrick returns a copy of the trick in progress.
func (c *Contract) CurrentTrick() Trick {
	return c.current
}

// Tricks returns the completed tricks.
func (c *Contract) Tricks() []Trick {
	result := make([]Trick, c.nTricks)
	copy(result, c.tricks[:c.nTricks])
	return result
}

// NumCompleted returns the number of completed tricks.
func (c *Contract) NumCompleted() int {
	return c.nTricks
}

// TricksWon returns the number of completed tricks won by the partnership.
func (c *Contract) TricksWon(axis Axis) int {
	return c.won[axis]
}

// Played returns every card inserted so far.
func (c *Contract) Played() cards.Set {
	return c.played
}

// IsExhausted returns whether side is known to hold no card of suit.
func (c *Contract) IsExhausted(side Side, suit cards.Suit) bool {
	return c.exhausted[side]&(1<<suit) != 0
}

// NextToPlay returns the side due to play the next card.
func (c *Contract) NextToPlay() Side {
	return c.current.NextSide()
}

// IsCompleted returns whether all tricks of the deal have been played.
func (c *Contract) IsCompleted() bool {
	return c.nTricks == NumTricks
}

// History returns the plays made so far.
func (c *Contract) History() []Play {
	return c.history.AsSlice()
}

// InsertCard plays card for side. It returns the side to play next: the
// winner of the trick when card completes it, or else the next side in
// rotation.
//
// Legality of the card with respect to side's hand is the caller's
// responsibility. InsertCard only guards the consistency of the deal:
// turn order, duplicate cards and plays into a suit that side has
// already shown out of.
func (c *Contract) InsertCard(side Side, card cards.Card) (Side, error) {
	if c.IsCompleted() {
		return 0, errors.Wrapf(ErrContractCompleted, "cannot play %v", card)
	}
	if !card.Valid() {
		return 0, errors.Wrapf(ErrInvalidCard, "card %d", uint8(card))
	}
	if c.played.Contains(card) {
		return 0, errors.Wrapf(ErrDuplicateCard, "%v played by %v", card, side)
	}
	if c.current.HasPlayed(side) {
		return 0, errors.Wrapf(ErrSlotFilled, "%v played %v to %v", side, card, c.current)
	}
	if side != c.current.NextSide() {
		return 0, errors.Wrapf(ErrWrongTurn, "%v played %v but %v is next", side, card, c.current.NextSide())
	}
	if c.IsExhausted(side, card.Suit()) {
		return 0, errors.Wrapf(ErrExhaustedSuit, "%v played %v", side, card)
	}

	play := Play{Side: side, Card: card}
	if called, ok := c.current.CalledSuit(); ok && card.Suit() != called && !c.IsExhausted(side, called) {
		c.exhausted[side] |= 1 << called
		play.Revoked = true
	}

	if err := c.current.Add(side, card); err != nil {
		return 0, err
	}
	c.played.Add(card)
	c.history.Append(play)

	if !c.current.IsComplete() {
		return c.current.NextSide(), nil
	}

	winner, err := Winner(&c.current, c.trump)
	if err != nil {
		return 0, err
	}

	c.tricks[c.nTricks] = c.current
	c.nTricks++
	c.won[winner.Axis()]++
	c.current = NewTrick(winner)
	return winner, nil
}

// Undo takes back the most recently played card. If the current trick is
// empty, the previous trick is reopened first.
func (c *Contract) Undo() error {
	last, ok := c.history.Last()
	if !ok {
		return ErrNothingToUndo
	}

	if c.current.IsEmpty() {
		c.nTricks--
		c.won[c.current.Leader().Axis()]--
		c.current = c.tricks[c.nTricks]
		c.tricks[c.nTricks] = Trick{}
	}

	called, _ := c.current.CalledSuit()
	side, card := c.current.removeLast()
	if side != last.Side || card != last.Card {
		panic(fmt.Errorf("history %v out of sync with trick: %v played %v", last, side, card))
	}

	c.history.Pop()
	c.played.Remove(card)
	if last.Revoked {
		c.exhausted[side] &^= 1 << called
	}

	return nil
}

func (c *Contract) String() string {
	return fmt.Sprintf("trump: %v, tricks: %d (NS %d, EW %d), current: %v",
		c.trump, c.nTricks, c.won[NorthSouth], c.won[EastWest], c.current)
}
