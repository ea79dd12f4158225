package transposition

import (
	"expvar"
	"math/bits"

	"github.com/golang/glog"

	"github.com/timpalpant/alphabridge/contract"
	"github.com/timpalpant/alphabridge/position"
)

var (
	storeHits    = expvar.NewInt("transposition/hits")
	storeMisses  = expvar.NewInt("transposition/misses")
	storeDropped = expvar.NewInt("transposition/dropped")
)

const (
	DefaultNumBuckets     = 1 << 14
	DefaultSlotsPerBucket = 4
)

type entry struct {
	hash  uint32
	label uint32
	bound Bound
}

// Bucket is a fixed-capacity Store.
//
// The hash digest of a position selects one of a power-of-two number of
// buckets. Each bucket keeps a short list of entries per side to move,
// matched on both digests. When the list is full, new positions are not
// stored.
type Bucket struct {
	shift   uint
	slots   int
	entries []entry
	counts  []uint8
}

// NewBucket returns a Bucket store with at least numBuckets buckets of
// slotsPerBucket entries for each side to move.
func NewBucket(numBuckets, slotsPerBucket int) *Bucket {
	if numBuckets < 1 {
		numBuckets = 1
	}
	if slotsPerBucket < 1 || slotsPerBucket > 255 {
		panic("slots per bucket must be in [1, 255]")
	}

	logN := bits.Len(uint(numBuckets - 1))
	n := 1 << logN
	return &Bucket{
		shift:   uint(32 - logN),
		slots:   slotsPerBucket,
		entries: make([]entry, n*contract.NumSides*slotsPerBucket),
		counts:  make([]uint8, n*contract.NumSides),
	}
}

// NewBucketFactory returns a Factory of Bucket stores with the given size.
func NewBucketFactory(numBuckets, slotsPerBucket int) Factory {
	return func() Store {
		return NewBucket(numBuckets, slotsPerBucket)
	}
}

// NumBuckets returns the number of buckets in the store.
func (b *Bucket) NumBuckets() int {
	return len(b.counts) / contract.NumSides
}

// Len returns the number of entries held.
func (b *Bucket) Len() int {
	n := 0
	for _, c := range b.counts {
		n += int(c)
	}
	return n
}

func (b *Bucket) list(pos position.Position) (hash, label uint32, list int) {
	hash, label = pos.HashAndLabel()
	idx := int((hash * 0x9e3779b1) >> b.shift)
	return hash, label, idx*contract.NumSides + int(pos.SideToMove())
}

func (b *Bucket) find(hash, label uint32, list int) int {
	start := list * b.slots
	for i := 0; i < int(b.counts[list]); i++ {
		e := &b.entries[start+i]
		if e.hash == hash && e.label == label {
			return start + i
		}
	}
	return -1
}

// GetValue implements Store.
func (b *Bucket) GetValue(pos position.Position) (Bound, bool) {
	hash, label, list := b.list(pos)
	i := b.find(hash, label, list)
	if i < 0 {
		storeMisses.Add(1)
		return Bound{}, false
	}

	e := &b.entries[i]
	if n := position.CountCards(e.hash, e.label); n != pos.Remaining().Len() {
		glog.Errorf("transposition entry for %v holds %d cards, position has %d",
			pos, n, pos.Remaining().Len())
		storeMisses.Add(1)
		return Bound{}, false
	}

	storeHits.Add(1)
	return e.bound, true
}

// StoreValue implements Store.
func (b *Bucket) StoreValue(pos position.Position, bound Bound) {
	hash, label, list := b.list(pos)
	if i := b.find(hash, label, list); i >= 0 {
		b.entries[i].bound = bound
		return
	}

	n := int(b.counts[list])
	if n >= b.slots {
		storeDropped.Add(1)
		if glog.V(2) {
			glog.Infof("transposition bucket %d full for %v, dropping %v",
				list/contract.NumSides, pos.SideToMove(), bound)
		}
		return
	}

	b.entries[list*b.slots+n] = entry{hash: hash, label: label, bound: bound}
	b.counts[list]++
}
