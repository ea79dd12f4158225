package grouping

import (
	"github.com/timpalpant/alphabridge/cards"
	"github.com/timpalpant/alphabridge/contract"
)

type cacheEntry struct {
	groups []Group
	valid  bool
}

// Cache memoizes the groups of each position along the current line of
// play.
//
// The cache is a stack that moves in lockstep with the searcher: Push is
// called whenever a card is played (within an open trick, or closing a
// trick and opening the next one), and the groups for the new position are
// recomputed on first use. Pop is called on undo, including an undo that
// drops back into the previous trick, and restores the groups of the
// position being returned to. Returned slices are never modified after
// they are computed.
type Cache struct {
	strategy Strategy
	stack    []cacheEntry
}

// NewCache returns an empty Cache for the root position.
func NewCache(strategy Strategy) *Cache {
	return &Cache{
		strategy: strategy,
		stack:    make([]cacheEntry, 1, 4*contract.NumTricks+1),
	}
}

// Strategy returns the grouping strategy used to fill the cache.
func (c *Cache) Strategy() Strategy {
	return c.strategy
}

// Groups returns the groups for the current position, computing them if
// the position was entered since the last call.
func (c *Cache) Groups(side contract.Side, hands [contract.NumSides]cards.Set, trick *contract.Trick, trump contract.Trump) []Group {
	top := &c.stack[len(c.stack)-1]
	if !top.valid {
		top.groups = c.strategy.Groups(side, hands, trick, trump)
		top.valid = true
	}
	return top.groups
}

// Push records that a card was played.
func (c *Cache) Push() {
	c.stack = append(c.stack, cacheEntry{})
}

// Pop records that the last card played was taken back.
func (c *Cache) Pop() {
	if len(c.stack) == 1 {
		panic("pop of root grouping cache entry")
	}
	c.stack[len(c.stack)-1] = cacheEntry{}
	c.stack = c.stack[:len(c.stack)-1]
}

// Depth returns the number of cards played since the cache was created.
func (c *Cache) Depth() int {
	return len(c.stack) - 1
}

// Clone returns a Cache with the same entries that can be used
// independently of c.
func (c *Cache) Clone() *Cache {
	stack := make([]cacheEntry, len(c.stack), cap(c.stack))
	copy(stack, c.stack)
	return &Cache{strategy: c.strategy, stack: stack}
}
