package alphabridge

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/alphabridge/cards"
	"github.com/timpalpant/alphabridge/contract"
	"github.com/timpalpant/alphabridge/grouping"
	"github.com/timpalpant/alphabridge/transposition"
)

func scenarioDeal(t *testing.T) Deal {
	deal, err := ParseDeal([contract.NumSides]string{
		"AQ.-.-.KJ",
		"-.AK.KJ.-",
		"-.Q.A.AQ",
		"KJ.J.Q.-",
	}, contract.DiamondsTrump, contract.West)
	if err != nil {
		t.Fatal(err)
	}
	return deal
}

func newExplorer(t *testing.T, deal Deal, opts ...Option) *Explorer {
	e, err := NewExplorer(deal, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// bruteForce is a plain minimax over every legal card.
func bruteForce(c *contract.Contract, hands [contract.NumSides]cards.Set, axis contract.Axis) int {
	side := c.NextToPlay()
	trick := c.CurrentTrick()
	legal := grouping.LegalCards(hands[side], &trick)
	if legal.IsEmpty() {
		return c.TricksWon(axis)
	}

	maximizing := side.Axis() == axis
	best := plusInfinity
	if maximizing {
		best = minusInfinity
	}
	legal.Iter(func(card cards.Card) {
		if _, err := c.InsertCard(side, card); err != nil {
			panic(err)
		}
		hands[side].Remove(card)
		v := bruteForce(c, hands, axis)
		hands[side].Add(card)
		if err := c.Undo(); err != nil {
			panic(err)
		}

		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	})
	return best
}

func TestExplore_Scenario(t *testing.T) {
	e := newExplorer(t, scenarioDeal(t))
	got, err := e.Explore()
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("expected North-South to take 1 trick, got %d", got)
	}
	if e.Nodes() == 0 {
		t.Error("expected visited nodes to be counted")
	}
}

func TestExplore_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	for _, n := range []int{1, 2, 3, 4} {
		numDeals := 6
		if n == 4 {
			numDeals = 2
		}
		for i := 0; i < numDeals; i++ {
			for _, trump := range contract.AllTrumps {
				leader := contract.Side(rng.Intn(contract.NumSides))
				deal := NewRandomDeal(rng, n, trump, leader)
				expected := bruteForce(contract.New(leader, trump), deal.Hands, contract.NorthSouth)

				got, err := newExplorer(t, deal).Explore()
				if err != nil {
					t.Fatal(err)
				}
				if got != expected {
					t.Errorf("%v: expected %d, got %d", deal, expected, got)
				}
			}
		}
	}
}

func TestExplore_StrategiesAndStoresAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	configs := map[string][]Option{
		"naive, no store": {
			WithStrategy(grouping.Naive{}),
			WithStoreFactory(transposition.NewNoop),
		},
		"naive, bucket store": {
			WithStrategy(grouping.Naive{}),
		},
		"compressed, no store": {
			WithStoreFactory(transposition.NewNoop),
		},
		"compressed, tiny store": {
			WithStoreFactory(transposition.NewBucketFactory(2, 1)),
		},
	}

	for i := 0; i < 8; i++ {
		trump := contract.AllTrumps[rng.Intn(len(contract.AllTrumps))]
		deal := NewRandomDeal(rng, 5, trump, contract.Side(rng.Intn(contract.NumSides)))
		expected, err := newExplorer(t, deal).Explore()
		if err != nil {
			t.Fatal(err)
		}

		for name, opts := range configs {
			got, err := newExplorer(t, deal, opts...).Explore()
			if err != nil {
				t.Fatal(err)
			}
			if got != expected {
				t.Errorf("%s: %v: expected %d, got %d", name, deal, expected, got)
			}
		}
	}
}

func TestExplore_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 8; i++ {
		deal := NewRandomDeal(rng, 5, contract.NoTrump, contract.Side(i%contract.NumSides))
		ns, err := newExplorer(t, deal).Explore()
		if err != nil {
			t.Fatal(err)
		}
		ew, err := newExplorer(t, deal, WithMaximizer(contract.EastWest)).Explore()
		if err != nil {
			t.Fatal(err)
		}
		if ns+ew != 5 {
			t.Errorf("%v: North-South %d + East-West %d != 5", deal, ns, ew)
		}
	}
}

func TestExplore_RepeatedOnSharedStore(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	deal := NewRandomDeal(rng, 6, contract.HeartsTrump, contract.North)
	e := newExplorer(t, deal)
	first, err := e.Explore()
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Explore()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("expected %d on repeated search, got %d", first, second)
	}
}

func TestThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 6; i++ {
		trump := contract.AllTrumps[i%len(contract.AllTrumps)]
		deal := NewRandomDeal(rng, 4, trump, contract.Side(rng.Intn(contract.NumSides)))
		value, err := newExplorer(t, deal).Explore()
		if err != nil {
			t.Fatal(err)
		}

		// One explorer across thresholds, so bounds stored by earlier
		// searches are reused by later ones.
		e := newExplorer(t, deal)
		for n := 0; n <= 5; n++ {
			got, err := e.ExploreThreshold(n)
			if err != nil {
				t.Fatal(err)
			}
			if got != (value >= n) {
				t.Errorf("%v: threshold %d with value %d: got %v", deal, n, value, got)
			}
		}

		bisect, err := newExplorer(t, deal).ExploreBisect()
		if err != nil {
			t.Fatal(err)
		}
		if bisect != value {
			t.Errorf("%v: bisect found %d, expected %d", deal, bisect, value)
		}
	}
}

func TestPlaceUndo_RoundTrip(t *testing.T) {
	e := newExplorer(t, scenarioDeal(t))
	startPos := e.Position()
	startContract := e.Contract().Clone()

	var played int
	for !e.IsFinished() {
		groups := e.Groups()
		if err := e.Place(groups[len(groups)-1].Representative()); err != nil {
			t.Fatal(err)
		}
		played++
	}
	if played != 16 {
		t.Errorf("expected 16 cards played, got %d", played)
	}
	if e.Contract().NumCompleted() != 4 {
		t.Errorf("expected 4 completed tricks, got %d", e.Contract().NumCompleted())
	}

	for i := 0; i < played; i++ {
		if err := e.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	if !reflect.DeepEqual(e.Position(), startPos) {
		t.Errorf("expected position %v, got %v", startPos, e.Position())
	}
	if !reflect.DeepEqual(e.Contract(), startContract) {
		t.Errorf("expected contract %v, got %v", startContract, e.Contract())
	}
	if err := e.Undo(); errors.Cause(err) != contract.ErrNothingToUndo {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestPlace_Illegal(t *testing.T) {
	e := newExplorer(t, scenarioDeal(t))
	// West holds KJ of spades, a jack of hearts and the queen of diamonds.
	if err := e.Place(cards.MustParseCard("SA")); errors.Cause(err) != ErrIllegalCard {
		t.Errorf("expected ErrIllegalCard for a card not held, got %v", err)
	}
	if err := e.Place(cards.MustParseCard("HJ")); err != nil {
		t.Fatal(err)
	}
	// North has no hearts and may play anything.
	if err := e.Place(cards.MustParseCard("CK")); err != nil {
		t.Fatal(err)
	}
	// East holds hearts and must follow.
	if err := e.Place(cards.MustParseCard("DK")); errors.Cause(err) != ErrIllegalCard {
		t.Errorf("expected ErrIllegalCard when not following suit, got %v", err)
	}
	if e.Position().SideToMove() != contract.East {
		t.Errorf("expected East still to move, got %v", e.Position().SideToMove())
	}
}

func TestPlace_ThenExplore(t *testing.T) {
	e := newExplorer(t, scenarioDeal(t))
	report, err := e.Hint()
	if err != nil {
		t.Fatal(err)
	}
	best := report.BestBranch()
	if err := e.Place(best.Card); err != nil {
		t.Fatal(err)
	}
	got, err := e.Explore()
	if err != nil {
		t.Fatal(err)
	}
	if got != best.Tricks {
		t.Errorf("expected %d after best lead %v, got %d", best.Tricks, best.Card, got)
	}
}

func TestNewExplorer_InvalidDeal(t *testing.T) {
	testCases := []struct {
		name string
		deal Deal
	}{
		{
			name: "unequal hands",
			deal: Deal{
				Hands: [contract.NumSides]cards.Set{
					cards.MustParseSet("AK.-.-.-"),
					cards.MustParseSet("Q.-.-.-"),
					cards.MustParseSet("J.-.-.-"),
					cards.MustParseSet("T.-.-.-"),
				},
				Trump: contract.NoTrump,
			},
		},
		{
			name: "shared card",
			deal: Deal{
				Hands: [contract.NumSides]cards.Set{
					cards.MustParseSet("A.-.-.-"),
					cards.MustParseSet("A.-.-.-"),
					cards.MustParseSet("J.-.-.-"),
					cards.MustParseSet("T.-.-.-"),
				},
				Trump: contract.NoTrump,
			},
		},
		{
			name: "bad trump",
			deal: Deal{Trump: contract.NoTrump + 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewExplorer(tc.deal); errors.Cause(err) != ErrInvalidDeal {
				t.Errorf("expected ErrInvalidDeal, got %v", err)
			}
		})
	}
}

func TestPlace_ConservesCards(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	deal := NewRandomDeal(rng, 13, contract.SpadesTrump, contract.South)
	var all cards.Set
	for _, hand := range deal.Hands {
		all = all.Union(hand)
	}
	if all != cards.FullDeck() {
		t.Fatalf("expected a full deck, got %v", all)
	}

	e := newExplorer(t, deal)
	for !e.IsFinished() {
		groups := e.Groups()
		g := groups[rng.Intn(len(groups))]
		if err := e.Place(g.Representative()); err != nil {
			t.Fatal(err)
		}

		pos := e.Position()
		played := e.Contract().Played()
		total := played.Len()
		union := played
		for _, hand := range pos.Hands() {
			total += hand.Len()
			union = union.Union(hand)
		}
		if total != 52 || union != all {
			t.Fatalf("cards not conserved after %v: %v", e.Contract(), pos)
		}

		trick := e.Contract().CurrentTrick()
		if trick.IsEmpty() {
			for _, hand := range pos.Hands() {
				if hand.Len() != pos.TricksLeft() {
					t.Fatalf("unequal hands at trick boundary: %v", pos)
				}
			}
		}
	}

	if !e.Contract().IsCompleted() {
		t.Errorf("expected 13 completed tricks, got %d", e.Contract().NumCompleted())
	}
}
