// Package alphabridge implements a double-dummy solver for the cardplay of
// contract bridge: given all four hands, it computes how many tricks a
// partnership can take against best defense.
package alphabridge

import (
	"expvar"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/alphabridge/cards"
	"github.com/timpalpant/alphabridge/contract"
	"github.com/timpalpant/alphabridge/grouping"
	"github.com/timpalpant/alphabridge/position"
	"github.com/timpalpant/alphabridge/transposition"
)

var (
	nodesVisited         = expvar.NewInt("nodes_visited")
	terminalNodesVisited = expvar.NewInt("nodes_visited/terminal")
	storeCutoffs         = expvar.NewInt("nodes_visited/store_cutoff")
)

var (
	ErrInvalidDeal = errors.New("invalid deal")
	ErrIllegalCard = errors.New("card may not be played")
	ErrFinished    = errors.New("no cards left to play")
)

const (
	minusInfinity = -1
	plusInfinity  = contract.NumTricks + 1
)

// Explorer searches the cardplay tree of a deal.
//
// The contract and the stack of positions are mutated in place as cards
// are played and taken back. An Explorer must not be used from more than
// one goroutine; use Clone to search from the same point concurrently.
type Explorer struct {
	contract  *contract.Contract
	positions []position.Position
	groups    *grouping.Cache
	store     transposition.Store
	cfg       config
	nodes     int64
}

// NewExplorer returns an Explorer positioned at the opening lead of deal.
func NewExplorer(deal Deal, opts ...Option) (*Explorer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !deal.Trump.Valid() {
		return nil, errors.Wrapf(ErrInvalidDeal, "trump %v", deal.Trump)
	}

	c := contract.New(deal.Leader, deal.Trump)
	root, err := position.NewChecked(deal.Hands, deal.Leader, c)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDeal, "%v: %v", deal, err)
	}

	positions := make([]position.Position, 1, contract.MaxNumPlays+1)
	positions[0] = root
	return &Explorer{
		contract:  c,
		positions: positions,
		groups:    grouping.NewCache(cfg.strategy),
		store:     cfg.storeFactory(),
		cfg:       cfg,
	}, nil
}

// Clone returns an independent Explorer at the same point of play, with
// its own empty transposition store.
func (e *Explorer) Clone() *Explorer {
	positions := make([]position.Position, len(e.positions), cap(e.positions))
	copy(positions, e.positions)
	return &Explorer{
		contract:  e.contract.Clone(),
		positions: positions,
		groups:    e.groups.Clone(),
		store:     e.cfg.storeFactory(),
		cfg:       e.cfg,
	}
}

// Position returns the current position.
func (e *Explorer) Position() position.Position {
	return e.positions[len(e.positions)-1]
}

// Contract returns the play so far. It must not be modified.
func (e *Explorer) Contract() *contract.Contract {
	return e.contract
}

// Maximizer returns the partnership whose tricks are counted.
func (e *Explorer) Maximizer() contract.Axis {
	return e.cfg.maximizer
}

// Nodes returns the number of positions visited by searches so far.
func (e *Explorer) Nodes() int64 {
	return e.nodes
}

// IsFinished returns whether there are no cards left to play.
func (e *Explorer) IsFinished() bool {
	return e.contract.IsCompleted() || e.Position().Remaining().IsEmpty()
}

// Groups returns the groups of legal cards for the side to move.
func (e *Explorer) Groups() []grouping.Group {
	pos := e.Position()
	trick := e.contract.CurrentTrick()
	return e.groups.Groups(pos.SideToMove(), pos.Hands(), &trick, e.contract.Trump())
}

// Place plays card for the side to move. The card must be held by that
// side and follow suit if possible.
func (e *Explorer) Place(card cards.Card) error {
	pos := e.Position()
	side := pos.SideToMove()
	trick := e.contract.CurrentTrick()
	if !grouping.IsLegal(pos.Hand(side), &trick, card) {
		return errors.Wrapf(ErrIllegalCard, "%v holding %v cannot play %v to %v",
			side, pos.Hand(side), card, trick)
	}

	return e.play(card)
}

// Undo takes back the last card played.
func (e *Explorer) Undo() error {
	if len(e.positions) == 1 {
		return errors.Wrap(contract.ErrNothingToUndo, "at the starting position")
	}
	return e.undo()
}

func (e *Explorer) play(card cards.Card) error {
	pos := e.Position()
	next, err := e.contract.InsertCard(pos.SideToMove(), card)
	if err != nil {
		return err
	}

	e.positions = append(e.positions, pos.RemoveCardCurrentSide(card).SetCurrentSide(next))
	e.groups.Push()
	return nil
}

func (e *Explorer) undo() error {
	if err := e.contract.Undo(); err != nil {
		return err
	}

	e.positions = e.positions[:len(e.positions)-1]
	e.groups.Pop()
	return nil
}

// Explore returns the number of tricks, including those already won, that
// the maximizing partnership takes with best play by all sides.
func (e *Explorer) Explore() (int, error) {
	start := e.nodes
	value, err := e.search(minusInfinity, plusInfinity)
	if err != nil {
		return 0, errors.Wrap(err, "search aborted")
	}

	glog.V(1).Infof("Explored %d nodes: %v takes %d tricks", e.nodes-start, e.cfg.maximizer, value)
	return value, nil
}

// search is a fail-soft alpha-beta search. The returned value v is exact
// when alpha < v < beta, an upper bound when v <= alpha and a lower bound
// when v >= beta.
func (e *Explorer) search(alpha, beta int) (int, error) {
	e.nodes++
	nodesVisited.Add(1)

	pos := e.Position()
	taken := e.contract.TricksWon(e.cfg.maximizer)
	left := pos.TricksLeft()
	if left == 0 {
		terminalNodesVisited.Add(1)
		return taken, nil
	}

	// Potential cutoffs: the maximizer ends with at least the tricks
	// already won and at most those plus every trick left.
	if taken >= beta {
		return taken, nil
	}
	if taken+left <= alpha {
		return taken + left, nil
	}

	trick := e.contract.CurrentTrick()
	boundary := trick.IsEmpty()
	var stored transposition.Bound
	hit := false
	if boundary {
		if b, ok := e.store.GetValue(pos); ok {
			lo, hi := taken+int(b.Lower), taken+int(b.Upper)
			switch {
			case lo == hi, lo >= beta:
				storeCutoffs.Add(1)
				return lo, nil
			case hi <= alpha:
				storeCutoffs.Add(1)
				return hi, nil
			}
			alpha, beta = max(alpha, lo), min(beta, hi)
			stored, hit = b, true
		}
	}

	groups := e.groups.Groups(pos.SideToMove(), pos.Hands(), &trick, e.contract.Trump())
	if len(groups) == 0 {
		terminalNodesVisited.Add(1)
		return taken, nil
	}

	origAlpha, origBeta := alpha, beta
	maximizing := pos.SideToMove().Axis() == e.cfg.maximizer
	best := plusInfinity
	if maximizing {
		best = minusInfinity
	}

	for _, g := range groups {
		if err := e.play(g.Representative()); err != nil {
			return 0, errors.Wrapf(err, "playing %v from %v", g.Representative(), pos)
		}
		v, err := e.search(alpha, beta)
		if uerr := e.undo(); uerr != nil {
			return 0, uerr
		}
		if err != nil {
			return 0, err
		}

		if maximizing {
			best = max(best, v)
			alpha = max(alpha, best)
		} else {
			best = min(best, v)
			beta = min(beta, best)
		}
		if alpha >= beta {
			break
		}
	}

	if boundary {
		b := boundFor(best-taken, origAlpha-taken, origBeta-taken, left)
		if hit {
			b = b.Intersect(stored)
		}
		e.store.StoreValue(pos, b)
	}

	return best, nil
}

// boundFor converts the result of a fail-soft search of the remaining
// tricks, with window (alpha, beta), into a Bound.
func boundFor(v, alpha, beta, left int) transposition.Bound {
	switch {
	case v <= alpha:
		return transposition.Bound{Lower: 0, Upper: int8(v)}
	case v >= beta:
		return transposition.Bound{Lower: int8(v), Upper: int8(left)}
	default:
		return transposition.Exact(v)
	}
}
