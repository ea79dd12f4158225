package alphabridge

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/alphabridge/transposition"
)

// ExploreThreshold returns whether the maximizing partnership can take at
// least n tricks in total, including those already won.
func (e *Explorer) ExploreThreshold(n int) (bool, error) {
	start := e.nodes
	ok, err := e.reach(n)
	if err != nil {
		return false, errors.Wrapf(err, "threshold search for %d tricks aborted", n)
	}

	glog.V(1).Infof("Explored %d nodes: %v reaches %d tricks: %v", e.nodes-start, e.cfg.maximizer, n, ok)
	return ok, nil
}

// ExploreBisect computes the same value as Explore with a sequence of
// threshold searches, bisecting between the tricks already won and those
// plus every trick left.
func (e *Explorer) ExploreBisect() (int, error) {
	lo := e.contract.TricksWon(e.cfg.maximizer)
	hi := lo + e.Position().TricksLeft()
	for lo < hi {
		mid := (lo + hi + 1) / 2
		ok, err := e.ExploreThreshold(mid)
		if err != nil {
			return 0, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

func (e *Explorer) reach(n int) (bool, error) {
	e.nodes++
	nodesVisited.Add(1)

	pos := e.Position()
	taken := e.contract.TricksWon(e.cfg.maximizer)
	if taken >= n {
		return true, nil
	}
	left := pos.TricksLeft()
	if taken+left < n {
		return false, nil
	}

	trick := e.contract.CurrentTrick()
	boundary := trick.IsEmpty()
	var stored transposition.Bound
	hit := false
	if boundary {
		if b, ok := e.store.GetValue(pos); ok {
			switch {
			case taken+int(b.Lower) >= n:
				storeCutoffs.Add(1)
				return true, nil
			case taken+int(b.Upper) < n:
				storeCutoffs.Add(1)
				return false, nil
			}
			stored, hit = b, true
		}
	}

	groups := e.groups.Groups(pos.SideToMove(), pos.Hands(), &trick, e.contract.Trump())
	if len(groups) == 0 {
		terminalNodesVisited.Add(1)
		return false, nil
	}

	// The maximizer needs one line that reaches n, the minimizer needs
	// every line to.
	maximizing := pos.SideToMove().Axis() == e.cfg.maximizer
	result := !maximizing
	for _, g := range groups {
		if err := e.play(g.Representative()); err != nil {
			return false, errors.Wrapf(err, "playing %v from %v", g.Representative(), pos)
		}
		ok, err := e.reach(n)
		if uerr := e.undo(); uerr != nil {
			return false, uerr
		}
		if err != nil {
			return false, err
		}

		if ok == maximizing {
			result = ok
			break
		}
	}

	if boundary {
		b := transposition.Bound{Lower: 0, Upper: int8(n - 1 - taken)}
		if result {
			b = transposition.Bound{Lower: int8(n - taken), Upper: int8(left)}
		}
		if hit {
			b = b.Intersect(stored)
		}
		e.store.StoreValue(pos, b)
	}

	return result, nil
}
