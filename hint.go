package alphabridge

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/timpalpant/alphabridge/cards"
	"github.com/timpalpant/alphabridge/contract"
	"github.com/timpalpant/alphabridge/grouping"
)

// Branch is the outcome of playing one group of equivalent cards.
type Branch struct {
	Group grouping.Group
	Card  cards.Card
	// Tricks is the total for the maximizer after best play following Card.
	Tricks int
	Best   bool
}

// HintReport holds the value of each choice open to the side to move.
type HintReport struct {
	Side     contract.Side
	Branches []Branch
	// Index into Branches of the first best choice for Side.
	Best int
}

// BestBranch returns the first branch that is best for the side to move.
func (r *HintReport) BestBranch() Branch {
	return r.Branches[r.Best]
}

func (r *HintReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v to play:", r.Side)
	for _, branch := range r.Branches {
		marker := ""
		if branch.Best {
			marker = "*"
		}
		fmt.Fprintf(&b, " %v=%d%s", branch.Group, branch.Tricks, marker)
	}
	return b.String()
}

// Hint evaluates every group of legal cards of the side to move.
func (e *Explorer) Hint() (*HintReport, error) {
	if e.IsFinished() {
		return nil, ErrFinished
	}

	groups := e.Groups()
	branches := make([]Branch, len(groups))
	for i, g := range groups {
		card := g.Representative()
		if err := e.play(card); err != nil {
			return nil, errors.Wrapf(err, "playing %v", card)
		}
		v, err := e.search(minusInfinity, plusInfinity)
		if uerr := e.undo(); uerr != nil {
			return nil, uerr
		}
		if err != nil {
			return nil, errors.Wrapf(err, "searching after %v", card)
		}

		branches[i] = Branch{Group: g, Card: card, Tricks: v}
	}

	return e.newHintReport(branches), nil
}

// HintParallel computes the same report as Hint, searching each group on
// its own clone of the Explorer. At most WithParallelism groups are
// searched at a time.
func (e *Explorer) HintParallel() (*HintReport, error) {
	if e.IsFinished() {
		return nil, ErrFinished
	}

	groups := e.Groups()
	branches := make([]Branch, len(groups))
	nodes := make([]int64, len(groups))
	var eg errgroup.Group
	eg.SetLimit(e.cfg.parallelism)
	for i, g := range groups {
		i, g := i, g
		clone := e.Clone()
		eg.Go(func() error {
			card := g.Representative()
			if err := clone.play(card); err != nil {
				return errors.Wrapf(err, "playing %v", card)
			}
			v, err := clone.search(minusInfinity, plusInfinity)
			if err != nil {
				return errors.Wrapf(err, "searching after %v", card)
			}

			branches[i] = Branch{Group: g, Card: card, Tricks: v}
			nodes[i] = clone.nodes
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, n := range nodes {
		e.nodes += n
	}
	glog.V(1).Infof("Searched %d branches in parallel", len(groups))
	return e.newHintReport(branches), nil
}

func (e *Explorer) newHintReport(branches []Branch) *HintReport {
	side := e.Position().SideToMove()
	maximizing := side.Axis() == e.cfg.maximizer
	best := 0
	for i, b := range branches {
		if (maximizing && b.Tricks > branches[best].Tricks) ||
			(!maximizing && b.Tricks < branches[best].Tricks) {
			best = i
		}
	}

	for i := range branches {
		branches[i].Best = branches[i].Tricks == branches[best].Tricks
	}
	return &HintReport{Side: side, Branches: branches, Best: best}
}
