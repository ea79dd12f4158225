package cards

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	suitMask = Set(1<<NumRanks) - 1
	fullSet  = suitMask | suitMask<<laneWidth | suitMask<<(2*laneWidth) | suitMask<<(3*laneWidth)
)

// Set represents an unordered set of distinct cards, such as a hand.
//
// Each suit occupies a 16-bit lane of the uint64 and bit r of a lane is
// set when the card of rank r is present. Only the low 13 bits of each
// lane are used, so a Set fits the whole 52-card deck.
type Set uint64

// NewSet creates a new Set from the given slice of Cards.
func NewSet(cards ...Card) Set {
	result := Set(0)
	for _, card := range cards {
		result.Add(card)
	}

	return result
}

// FullDeck returns the Set of all 52 cards.
func FullDeck() Set {
	return fullSet
}

// IsEmpty returns whether this Set contains any Cards.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Contains returns whether the Set contains the given Card.
func (s Set) Contains(card Card) bool {
	return s&(1<<card) != 0
}

// Len gets the total number of Cards in the Set.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Add includes the given Card in the Set.
func (s *Set) Add(card Card) {
	*s |= 1 << card
}

// Remove removes the given Card from the Set.
// Remove panics if the card is not present in the Set.
func (s *Set) Remove(card Card) {
	if !s.Contains(card) {
		panic(fmt.Errorf("card %v not in set %v", card, *s))
	}

	*s &^= 1 << card
}

// Union returns the cards in either Set.
func (s Set) Union(other Set) Set {
	return s | other
}

// Intersect returns the cards in both Sets.
func (s Set) Intersect(other Set) Set {
	return s & other
}

// Minus returns the cards of s that are not in other.
func (s Set) Minus(other Set) Set {
	return s &^ other
}

// SuitMask returns the ranks held in the given suit as a 13-bit mask.
func (s Set) SuitMask(suit Suit) uint16 {
	return uint16((s >> (uint(suit) * laneWidth)) & suitMask)
}

// OfSuit returns the subset of cards in the given suit.
func (s Set) OfSuit(suit Suit) Set {
	return s & (suitMask << (uint(suit) * laneWidth))
}

// HasSuit returns whether any card of the given suit is in the Set.
func (s Set) HasSuit(suit Suit) bool {
	return s.SuitMask(suit) != 0
}

// CountSuit returns the number of cards held in the given suit.
func (s Set) CountSuit(suit Suit) int {
	return bits.OnesCount16(s.SuitMask(suit))
}

// Highest returns the highest card held in the given suit.
func (s Set) Highest(suit Suit) (Card, bool) {
	m := s.SuitMask(suit)
	if m == 0 {
		return 0, false
	}
	return NewCard(suit, Rank(bits.Len16(m)-1)), true
}

// Lowest returns the lowest card held in the given suit.
func (s Set) Lowest(suit Suit) (Card, bool) {
	m := s.SuitMask(suit)
	if m == 0 {
		return 0, false
	}
	return NewCard(suit, Rank(bits.TrailingZeros16(m))), true
}

// Iter calls cb for each card in the Set, in ascending suit then rank order.
func (s Set) Iter(cb func(card Card)) {
	for s != 0 {
		card := Card(bits.TrailingZeros64(uint64(s)))
		cb(card)
		s &= s - 1
	}
}

// AsSlice returns the cards of the Set in ascending order.
func (s Set) AsSlice() []Card {
	result := make([]Card, 0, s.Len())
	s.Iter(func(card Card) {
		result = append(result, card)
	})
	return result
}

// String implements Stringer using the dotted S.H.D.C hand notation.
func (s Set) String() string {
	return s.Format()
}

// Format writes the Set as four dot-separated suits from Spades down to
// Clubs, highest rank first, with "-" for a void: "AQ.-.-.KJ".
func (s Set) Format() string {
	parts := make([]string, 0, NumSuits)
	for suit := Spades; ; suit-- {
		m := s.SuitMask(suit)
		if m == 0 {
			parts = append(parts, "-")
		} else {
			var sb strings.Builder
			for r := Ace; ; r-- {
				if m&(1<<r) != 0 {
					sb.WriteString(r.String())
				}
				if r == Two {
					break
				}
			}
			parts = append(parts, sb.String())
		}
		if suit == Clubs {
			break
		}
	}
	return strings.Join(parts, ".")
}

// ParseSet parses a hand in the notation produced by Format.
func ParseSet(hand string) (Set, error) {
	parts := strings.Split(hand, ".")
	if len(parts) != NumSuits {
		return 0, fmt.Errorf("hand %q must have %d suits", hand, NumSuits)
	}

	result := Set(0)
	for i, part := range parts {
		suit := Spades - Suit(i)
		if part == "-" {
			continue
		}
		for j := 0; j < len(part); j++ {
			rank, err := parseRank(part[j])
			if err != nil {
				return 0, fmt.Errorf("hand %q: %v", hand, err)
			}
			card := NewCard(suit, rank)
			if result.Contains(card) {
				return 0, fmt.Errorf("hand %q: duplicate card %v", hand, card)
			}
			result.Add(card)
		}
	}

	return result, nil
}

// MustParseSet is like ParseSet but panics on malformed input.
func MustParseSet(hand string) Set {
	s, err := ParseSet(hand)
	if err != nil {
		panic(err)
	}
	return s
}
