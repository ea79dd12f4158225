package alphabridge

import (
	"runtime"

	"github.com/timpalpant/alphabridge/contract"
	"github.com/timpalpant/alphabridge/grouping"
	"github.com/timpalpant/alphabridge/transposition"
)

type config struct {
	strategy     grouping.Strategy
	storeFactory transposition.Factory
	maximizer    contract.Axis
	parallelism  int
}

func defaultConfig() config {
	return config{
		strategy: grouping.Compressed{},
		storeFactory: transposition.NewBucketFactory(
			transposition.DefaultNumBuckets, transposition.DefaultSlotsPerBucket),
		maximizer:   contract.NorthSouth,
		parallelism: runtime.NumCPU(),
	}
}

// Option configures an Explorer.
type Option func(*config)

// WithStrategy sets the grouping strategy used to generate moves.
// The default is grouping.Compressed.
func WithStrategy(strategy grouping.Strategy) Option {
	return func(c *config) {
		c.strategy = strategy
	}
}

// WithStoreFactory sets how transposition stores are created. Each
// Explorer, and each clone made for a parallel hint, owns its own store.
func WithStoreFactory(factory transposition.Factory) Option {
	return func(c *config) {
		c.storeFactory = factory
	}
}

// WithMaximizer sets the partnership whose tricks are counted.
// The default is North-South.
func WithMaximizer(axis contract.Axis) Option {
	return func(c *config) {
		c.maximizer = axis
	}
}

// WithParallelism limits the number of branches searched at once by
// HintParallel. The default is the number of CPUs.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.parallelism = n
	}
}
