// Script to compare the search effort of naive and compressed move
// grouping over many random deals.
package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/timpalpant/alphabridge"
	"github.com/timpalpant/alphabridge/contract"
	"github.com/timpalpant/alphabridge/grouping"
)

type result struct {
	naiveNodes      int64
	compressedNodes int64
}

func main() {
	seed := flag.Int64("seed", 123, "Seed for random deals")
	numDeals := flag.Int("num_deals", 100, "Number of deals to solve")
	n := flag.Int("cards", 6, "Number of cards dealt to each side")
	threads := flag.Int("threads", runtime.NumCPU(), "Number of deals solved at once")
	flag.Parse()

	go http.ListenAndServe("localhost:4124", nil)

	rng := rand.New(rand.NewSource(*seed))
	var mu sync.Mutex
	var total result
	var eg errgroup.Group
	eg.SetLimit(*threads)
	for i := 0; i < *numDeals; i++ {
		trump := contract.AllTrumps[rng.Intn(len(contract.AllTrumps))]
		leader := contract.Side(rng.Intn(contract.NumSides))
		deal := alphabridge.NewRandomDeal(rng, *n, trump, leader)
		eg.Go(func() error {
			r, err := compare(deal)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			total.naiveNodes += r.naiveNodes
			total.compressedNodes += r.compressedNodes
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		glog.Fatal(err)
	}

	glog.Infof("%d deals: naive %d nodes, compressed %d nodes (%.2fx)",
		*numDeals, total.naiveNodes, total.compressedNodes,
		float64(total.naiveNodes)/float64(total.compressedNodes))
}

func compare(deal alphabridge.Deal) (result, error) {
	naive, err := alphabridge.NewExplorer(deal, alphabridge.WithStrategy(grouping.Naive{}))
	if err != nil {
		return result{}, err
	}
	compressed, err := alphabridge.NewExplorer(deal)
	if err != nil {
		return result{}, err
	}

	naiveValue, err := naive.Explore()
	if err != nil {
		return result{}, err
	}
	compressedValue, err := compressed.Explore()
	if err != nil {
		return result{}, err
	}
	if naiveValue != compressedValue {
		glog.Errorf("%v: naive search found %d, compressed found %d",
			deal, naiveValue, compressedValue)
	}

	glog.V(1).Infof("%v: %d tricks, naive %d nodes, compressed %d nodes",
		deal, naiveValue, naive.Nodes(), compressed.Nodes())
	return result{naive.Nodes(), compressed.Nodes()}, nil
}
