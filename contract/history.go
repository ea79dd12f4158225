package contract

import (
	"fmt"

	"github.com/timpalpant/alphabridge/cards"
)

// Play records one card insertion in the contract history.
type Play struct {
	Side Side
	Card cards.Card
	// Revoked is set when the play failed to follow the called suit and
	// therefore recorded Side as exhausted in that suit.
	Revoked bool
}

func (p Play) String() string {
	s := fmt.Sprintf("%v:%v", p.Side, p.Card)
	if p.Revoked {
		s += ":void"
	}
	return s
}

// MaxNumPlays is the number of cards in a full deal.
const MaxNumPlays = 52

// History records the sequence of plays in a deal.
// It is bit-packed and pre-sized, rather than a slice, so that cloning a
// Contract does not allocate for the history.
type History struct {
	plays [MaxNumPlays]uint16
	n     int
}

func (h *History) String() string {
	return fmt.Sprintf("%v", h.AsSlice())
}

func (h *History) Len() int {
	return h.n
}

func (h *History) Get(i int) Play {
	if i >= h.n {
		panic(fmt.Errorf("index out of range: %d %v", i, h))
	}

	return decodePlay(h.plays[i])
}

// Last returns the most recent play.
func (h *History) Last() (Play, bool) {
	if h.n == 0 {
		return Play{}, false
	}
	return decodePlay(h.plays[h.n-1]), true
}

func (h *History) Append(p Play) {
	if h.n >= len(h.plays) {
		panic(fmt.Errorf("history exceeded max length: %v", h))
	}

	h.plays[h.n] = encodePlay(p)
	h.n++
}

// Pop removes and returns the most recent play.
func (h *History) Pop() Play {
	if h.n == 0 {
		panic("pop from empty history")
	}

	h.n--
	p := decodePlay(h.plays[h.n])
	h.plays[h.n] = 0
	return p
}

func (h *History) AsSlice() []Play {
	result := make([]Play, h.n)
	for i, packed := range h.plays[:h.n] {
		result[i] = decodePlay(packed)
	}
	return result
}

// Play is packed as bits within a uint16:
//   [0-5] Card (suit lane in bits 4-5, rank in bits 0-3)
//   [6-7] Side
//   [8]   Revoked
func encodePlay(p Play) uint16 {
	result := uint16(p.Card) & 0x3f
	result |= uint16(p.Side&0x3) << 6
	if p.Revoked {
		result |= 1 << 8
	}
	return result
}

func decodePlay(packed uint16) Play {
	return Play{
		Card:    cards.Card(packed & 0x3f),
		Side:    Side((packed >> 6) & 0x3),
		Revoked: packed&(1<<8) != 0,
	}
}
