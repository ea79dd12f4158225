// Script to solve a random deal and report the value of each card.
package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/timpalpant/alphabridge"
	"github.com/timpalpant/alphabridge/contract"
	"github.com/timpalpant/alphabridge/grouping"
)

var trumps = map[string]contract.Trump{
	"C":  contract.ClubsTrump,
	"D":  contract.DiamondsTrump,
	"H":  contract.HeartsTrump,
	"S":  contract.SpadesTrump,
	"NT": contract.NoTrump,
}

func main() {
	seed := flag.Int64("seed", 123, "Seed for random deal")
	n := flag.Int("cards", 7, "Number of cards dealt to each side")
	trumpStr := flag.String("trump", "NT", "Trump suit: C, D, H, S or NT")
	leader := flag.Int("leader", int(contract.West), "Side on lead (0=North .. 3=West)")
	naive := flag.Bool("naive", false, "Search every card instead of groups of equivalent cards")
	parallel := flag.Bool("parallel", true, "Search each lead on its own goroutine")
	threads := flag.Int("threads", 0, "Max goroutines for the parallel hint (0 = all CPUs)")
	flag.Parse()

	go http.ListenAndServe("localhost:4123", nil)

	trump, ok := trumps[strings.ToUpper(*trumpStr)]
	if !ok {
		glog.Fatalf("unknown trump: %q", *trumpStr)
	}

	rng := rand.New(rand.NewSource(*seed))
	deal := alphabridge.NewRandomDeal(rng, *n, trump, contract.Side(*leader))
	glog.Infof("Deal: %v", deal)

	var opts []alphabridge.Option
	if *naive {
		opts = append(opts, alphabridge.WithStrategy(grouping.Naive{}))
	}
	if *threads > 0 {
		opts = append(opts, alphabridge.WithParallelism(*threads))
	}
	explorer, err := alphabridge.NewExplorer(deal, opts...)
	if err != nil {
		glog.Fatal(err)
	}

	start := time.Now()
	value, err := explorer.Explore()
	if err != nil {
		glog.Fatal(err)
	}
	glog.Infof("%v takes %d of %d tricks (%d nodes, %v)",
		explorer.Maximizer(), value, *n, explorer.Nodes(), time.Since(start))

	start = time.Now()
	hint := explorer.Hint
	if *parallel {
		hint = explorer.HintParallel
	}
	report, err := hint()
	if err != nil {
		glog.Fatal(err)
	}
	glog.Infof("%v (%v)", report, time.Since(start))
}
