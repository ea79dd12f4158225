package contract

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/alphabridge/cards"
)

// Trump is the denomination of a contract: one of the four suits, or NoTrump.
type Trump uint8

const (
	ClubsTrump Trump = iota
	DiamondsTrump
	HeartsTrump
	SpadesTrump
	NoTrump
)

// AllTrumps lists every denomination, suits first.
var AllTrumps = []Trump{ClubsTrump, DiamondsTrump, HeartsTrump, SpadesTrump, NoTrump}

// TrumpOf returns the Trump for the given suit.
func TrumpOf(suit cards.Suit) Trump {
	return Trump(suit)
}

// Suit returns the trump suit, or false for NoTrump.
func (t Trump) Suit() (cards.Suit, bool) {
	if t >= NoTrump {
		return 0, false
	}
	return cards.Suit(t), true
}

// Valid returns whether t is one of the five denominations.
func (t Trump) Valid() bool {
	return t <= NoTrump
}

func (t Trump) String() string {
	if suit, ok := t.Suit(); ok {
		return suit.Symbol()
	}
	if t == NoTrump {
		return "NT"
	}
	return fmt.Sprintf("Trump(%d)", uint8(t))
}

// Trick is one round of play: at most one card per side, played in seating
// order starting from the leader.
type Trick struct {
	leader Side
	n      uint8
	cards  [NumSides]cards.Card
}

// NewTrick returns an empty trick led by leader.
func NewTrick(leader Side) Trick {
	return Trick{leader: leader}
}

// Leader returns the side that leads (or led) the trick.
func (t *Trick) Leader() Side {
	return t.leader
}

// Len returns the number of cards played to the trick.
func (t *Trick) Len() int {
	return int(t.n)
}

// IsEmpty returns whether no card has been played yet.
func (t *Trick) IsEmpty() bool {
	return t.n == 0
}

// IsComplete returns whether all four sides have played.
func (t *Trick) IsComplete() bool {
	return t.n == NumSides
}

// NextSide returns the side due to play to the trick.
// For a complete trick this is the leader again.
func (t *Trick) NextSide() Side {
	return (t.leader + Side(t.n)) % NumSides
}

// HasPlayed returns whether side has already played to the trick.
func (t *Trick) HasPlayed(side Side) bool {
	offset := (side + NumSides - t.leader) % NumSides
	return uint8(offset) < t.n
}

// Card returns the card played by side, if any.
func (t *Trick) Card(side Side) (cards.Card, bool) {
	if !t.HasPlayed(side) {
		return 0, false
	}
	return t.cards[side], true
}

// CalledSuit returns the suit of the card that was led.
func (t *Trick) CalledSuit() (cards.Suit, bool) {
	if t.n == 0 {
		return 0, false
	}
	return t.cards[t.leader].Suit(), true
}

// Cards returns the set of cards played to the trick so far.
func (t *Trick) Cards() cards.Set {
	result := cards.Set(0)
	for i := uint8(0); i < t.n; i++ {
		result.Add(t.cards[(t.leader+Side(i))%NumSides])
	}
	return result
}

// Add records card as played by side.
func (t *Trick) Add(side Side, card cards.Card) error {
	if t.HasPlayed(side) {
		return errors.Wrapf(ErrSlotFilled, "%v already played to trick %v", side, t)
	}
	if t.IsComplete() || side != t.NextSide() {
		return errors.Wrapf(ErrWrongTurn, "%v played but %v is next", side, t.NextSide())
	}

	t.cards[side] = card
	t.n++
	return nil
}

// removeLast takes back the most recently played card.
func (t *Trick) removeLast() (Side, cards.Card) {
	if t.n == 0 {
		panic("cannot remove a card from an empty trick")
	}

	t.n--
	side := (t.leader + Side(t.n)) % NumSides
	card := t.cards[side]
	t.cards[side] = 0
	return side, card
}

func (t Trick) String() string {
	played := make([]string, 0, NumSides)
	for i := uint8(0); i < t.n; i++ {
		side := (t.leader + Side(i)) % NumSides
		played = append(played, fmt.Sprintf("%v:%v", side, t.cards[side]))
	}
	return "[" + strings.Join(played, " ") + "]"
}
