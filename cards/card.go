package cards

import (
	"fmt"
)

// Suit is one of the four suits of the bridge deck.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of distinct Suits.
const NumSuits = 4

var suitStr = [...]string{"C", "D", "H", "S"}

var suitSymbol = [...]string{"♣", "♦", "♥", "♠"}

// String implements Stringer.
func (s Suit) String() string {
	if s >= NumSuits {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitStr[s]
}

// Symbol returns the unicode pip for the Suit.
func (s Suit) Symbol() string {
	return suitSymbol[s]
}

// Rank is the rank of a card within its suit. Higher ranks win.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct Ranks in each Suit.
const NumRanks = 13

var rankStr = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}

// String implements Stringer.
func (r Rank) String() string {
	if r >= NumRanks {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankStr[r]
}

// Card represents one card of the 52-card deck.
//
// The identity of a card is packed as 16*suit + rank, so that each suit
// occupies its own 16-bit lane when cards are collected into a Set.
type Card uint8

const laneWidth = 16

// NewCard returns the Card of the given suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card(uint8(suit)*laneWidth + uint8(rank))
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return Suit(c / laneWidth)
}

// Rank returns the rank of the card within its suit.
func (c Card) Rank() Rank {
	return Rank(c % laneWidth)
}

// Valid returns whether the card is one of the 52 cards of the deck.
func (c Card) Valid() bool {
	return c.Suit() < NumSuits && c.Rank() < NumRanks
}

// String implements Stringer.
func (c Card) String() string {
	return c.Suit().Symbol() + c.Rank().String()
}

// ParseCard parses a card written as suit letter followed by rank,
// e.g. "SA" or "D9".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q", s)
	}

	suit, err := parseSuit(s[0])
	if err != nil {
		return 0, err
	}

	rank, err := parseRank(s[1])
	if err != nil {
		return 0, err
	}

	return NewCard(suit, rank), nil
}

// MustParseCard is like ParseCard but panics on malformed input.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseSuit(b byte) (Suit, error) {
	for s, str := range suitStr {
		if str[0] == b {
			return Suit(s), nil
		}
	}
	return 0, fmt.Errorf("invalid suit %q", b)
}

func parseRank(b byte) (Rank, error) {
	for r, str := range rankStr {
		if str[0] == b {
			return Rank(r), nil
		}
	}
	return 0, fmt.Errorf("invalid rank %q", b)
}
