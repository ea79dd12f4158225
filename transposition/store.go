// Package transposition caches search results for positions at trick
// boundaries, keyed by the digests of the remaining cards.
package transposition

import (
	"fmt"

	"github.com/timpalpant/alphabridge/position"
)

// Bound is the range of tricks, still to be won from a position, that the
// maximizing partnership is known to be able to guarantee.
// A Bound with Lower == Upper is an exact value.
type Bound struct {
	Lower int8
	Upper int8
}

// Exact returns the Bound of a fully searched position.
func Exact(tricks int) Bound {
	return Bound{Lower: int8(tricks), Upper: int8(tricks)}
}

// IsExact returns whether the bound is a single value.
func (b Bound) IsExact() bool {
	return b.Lower == b.Upper
}

// Intersect narrows b by other.
func (b Bound) Intersect(other Bound) Bound {
	if other.Lower > b.Lower {
		b.Lower = other.Lower
	}
	if other.Upper < b.Upper {
		b.Upper = other.Upper
	}
	return b
}

func (b Bound) String() string {
	if b.IsExact() {
		return fmt.Sprintf("%d", b.Lower)
	}
	return fmt.Sprintf("[%d, %d]", b.Lower, b.Upper)
}

// Store is a cache of search results.
//
// Implementations need not be safe for concurrent use: each searcher owns
// its Store.
type Store interface {
	// GetValue returns the Bound stored for pos, if any.
	GetValue(pos position.Position) (Bound, bool)
	// StoreValue records the Bound for pos. A Store may drop the value.
	StoreValue(pos position.Position, b Bound)
}

// Factory creates a new empty Store.
type Factory func() Store

// Noop is a Store that never remembers anything.
type Noop struct{}

// NewNoop returns a Noop Store.
func NewNoop() Store {
	return Noop{}
}

// GetValue implements Store.
func (Noop) GetValue(pos position.Position) (Bound, bool) {
	return Bound{}, false
}

// StoreValue implements Store.
func (Noop) StoreValue(pos position.Position, b Bound) {}
