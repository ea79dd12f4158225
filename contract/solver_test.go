package contract

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/alphabridge/cards"
)

func buildTrick(t *testing.T, leader Side, played ...string) Trick {
	trick := NewTrick(leader)
	side := leader
	for _, c := range played {
		if err := trick.Add(side, card(c)); err != nil {
			t.Fatalf("adding %v for %v: %v", c, side, err)
		}
		side = side.Next()
	}
	return trick
}

func TestWinner(t *testing.T) {
	testCases := []struct {
		leader Side
		played []string
		trump  Trump
		winner Side
	}{
		{North, []string{"S2", "S3", "S4", "SA"}, NoTrump, West},
		{North, []string{"SK", "H2", "SQ", "DA"}, NoTrump, North},
		{North, []string{"SK", "H2", "SQ", "DA"}, HeartsTrump, East},
		{North, []string{"SK", "H2", "H3", "DA"}, HeartsTrump, South},
		{East, []string{"C5", "C9", "D2", "CT"}, DiamondsTrump, West},
		{South, []string{"H5", "H9", "C2", "HT"}, ClubsTrump, North},
	}

	for _, tc := range testCases {
		trick := buildTrick(t, tc.leader, tc.played...)
		winner, err := Winner(&trick, tc.trump)
		if err != nil {
			t.Errorf("%v: %v", trick, err)
			continue
		}
		if winner != tc.winner {
			t.Errorf("%v with trump %v: expected %v to win, got %v", trick, tc.trump, tc.winner, winner)
		}
	}
}

func TestWinner_MissingCard(t *testing.T) {
	trick := buildTrick(t, North, "S2", "S3")
	if _, err := Winner(&trick, NoTrump); errors.Cause(err) != ErrMissingCard {
		t.Errorf("expected ErrMissingCard, got %v", err)
	}
}

func TestLeader(t *testing.T) {
	trick := NewTrick(South)
	if Leader(&trick, NoTrump) != South {
		t.Errorf("empty trick should be led by South")
	}

	trick = buildTrick(t, South, "H9", "HQ")
	if Leader(&trick, NoTrump) != West {
		t.Errorf("expected West to be winning %v", trick)
	}

	trick = buildTrick(t, South, "H9", "HQ", "S2")
	if Leader(&trick, SpadesTrump) != North {
		t.Errorf("expected North's ruff to be winning %v", trick)
	}
}

func TestDoesBeatLeader(t *testing.T) {
	trick := buildTrick(t, West, "DT", "DQ")
	testCases := []struct {
		card  string
		trump Trump
		beats bool
	}{
		{"DK", NoTrump, true},
		{"DJ", NoTrump, false},
		{"SA", NoTrump, false},
		{"S2", SpadesTrump, true},
		{"D2", DiamondsTrump, false},
		{"DA", DiamondsTrump, true},
	}

	for _, tc := range testCases {
		if got := DoesBeatLeader(&trick, tc.trump, card(tc.card)); got != tc.beats {
			t.Errorf("%v on %v with trump %v: expected %v, got %v", tc.card, trick, tc.trump, tc.beats, got)
		}
	}

	empty := NewTrick(West)
	if !DoesBeatLeader(&empty, NoTrump, card("C2")) {
		t.Error("any card should lead an empty trick")
	}
}

func TestTrickCards(t *testing.T) {
	trick := buildTrick(t, East, "C5", "C9", "D2")
	expected := cards.NewSet(card("C5"), card("C9"), card("D2"))
	if trick.Cards() != expected {
		t.Errorf("expected %v, got %v", expected, trick.Cards())
	}

	if suit, ok := trick.CalledSuit(); !ok || suit != cards.Clubs {
		t.Errorf("expected clubs called, got %v %v", suit, ok)
	}

	if !trick.HasPlayed(West) || trick.HasPlayed(North) {
		t.Errorf("unexpected HasPlayed for %v", trick)
	}

	if err := trick.Add(East, card("C6")); errors.Cause(err) != ErrSlotFilled {
		t.Errorf("expected ErrSlotFilled, got %v", err)
	}
}

func TestTrumpSuit(t *testing.T) {
	for suit := cards.Clubs; suit <= cards.Spades; suit++ {
		got, ok := TrumpOf(suit).Suit()
		if !ok || got != suit {
			t.Errorf("TrumpOf(%v).Suit() = %v, %v", suit, got, ok)
		}
	}

	if _, ok := NoTrump.Suit(); ok {
		t.Error("NoTrump should have no suit")
	}
}
