package poker

import (
	rand "math/rand/v2"
	"testing"
)

func mustHand(t *testing.T, codes ...string) Hand {
	t.Helper()
	cards, err := ParseCards(codes)
	if err != nil {
		t.Fatalf("failed to parse cards %v: %v", codes, err)
	}
	return NewHand(cards...)
}

func mustEvaluate(t *testing.T, codes ...string) HandRank {
	t.Helper()
	rank, err := Evaluate(mustHand(t, codes...))
	if err != nil {
		t.Fatalf("Evaluate(%v) failed: %v", codes, err)
	}
	return rank
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    []string
		expected HandType
	}{
		{"Royal flush", []string{"Ah", "Kh", "Qh", "Jh", "Th"}, StraightFlush},
		{"Straight flush", []string{"9s", "8s", "7s", "6s", "5s"}, StraightFlush},
		{"Steel wheel", []string{"Ad", "2d", "3d", "4d", "5d"}, StraightFlush},
		{"Four of a kind", []string{"7h", "7d", "7s", "7c", "2h"}, FourOfAKind},
		{"Full house", []string{"Ks", "Kh", "Kd", "2s", "2h"}, FullHouse},
		{"Flush", []string{"Ac", "Jc", "8c", "5c", "2c"}, Flush},
		{"Broadway straight", []string{"As", "Kh", "Qd", "Jc", "Ts"}, Straight},
		{"Wheel", []string{"Ah", "2d", "3s", "4c", "5h"}, Straight},
		{"Three of a kind", []string{"9s", "9h", "9d", "Ks", "2h"}, ThreeOfAKind},
		{"Two pair", []string{"As", "Ah", "Kd", "Ks", "2h"}, TwoPair},
		{"One pair", []string{"As", "Ah", "Kd", "Qs", "9h"}, Pair},
		{"High card", []string{"As", "Kh", "Qd", "9s", "7c"}, HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := mustEvaluate(t, tt.cards...)
			if rank.Type() != tt.expected {
				t.Errorf("Evaluate(%v).Type() = %v, want %v", tt.cards, rank.Type(), tt.expected)
			}
		})
	}
}

func TestCategoryOrdering(t *testing.T) {
	// Each entry must be strictly stronger than the next
	hands := [][]string{
		{"Ah", "Kh", "Qh", "Jh", "Th"}, // straight flush
		{"7h", "7d", "7s", "7c", "2h"}, // quads
		{"Ks", "Kh", "Kd", "2s", "2h"}, // full house
		{"Ac", "Jc", "8c", "5c", "2c"}, // flush
		{"As", "Kh", "Qd", "Jc", "Ts"}, // straight
		{"9s", "9h", "9d", "Ks", "2h"}, // trips
		{"As", "Ah", "Kd", "Ks", "2h"}, // two pair
		{"As", "Ah", "Kd", "Qs", "9h"}, // pair
		{"As", "Kh", "Qd", "9s", "7c"}, // high card
	}

	for i := 0; i < len(hands)-1; i++ {
		stronger := mustEvaluate(t, hands[i]...)
		weaker := mustEvaluate(t, hands[i+1]...)
		if CompareRanks(stronger, weaker) != 1 {
			t.Errorf("%v (rank %d) should beat %v (rank %d)",
				hands[i], stronger, hands[i+1], weaker)
		}
	}
}

func TestWheelIsLowestStraight(t *testing.T) {
	wheel := mustEvaluate(t, "Ah", "2d", "3s", "4c", "5h")
	sixHigh := mustEvaluate(t, "2d", "3s", "4c", "5h", "6d")

	if wheel.Type() != Straight || sixHigh.Type() != Straight {
		t.Fatal("both hands should be straights")
	}
	if CompareRanks(sixHigh, wheel) != 1 {
		t.Error("six-high straight should beat the wheel")
	}
}

func TestSixCardWheelStraight(t *testing.T) {
	// With A-2-3-4-5-6 the best straight is six high, not the wheel
	withSix := mustEvaluate(t, "Ah", "2d", "3s", "4c", "5h", "6d")
	sixHigh := mustEvaluate(t, "2d", "3s", "4c", "5h", "6d")
	if withSix != sixHigh {
		t.Errorf("A-6 should evaluate as the six-high straight: got %d, want %d", withSix, sixHigh)
	}
}

func TestKickersBreakTies(t *testing.T) {
	tests := []struct {
		name     string
		stronger []string
		weaker   []string
	}{
		{
			"Pair kicker",
			[]string{"As", "Ah", "Kd", "Qs", "9h"},
			[]string{"Ad", "Ac", "Kh", "Qd", "8h"},
		},
		{
			"Higher pair",
			[]string{"Ks", "Kh", "2d", "3s", "4h"},
			[]string{"Qs", "Qh", "Ad", "Ks", "Jh"},
		},
		{
			"Two pair low pair decides",
			[]string{"As", "Ah", "Kd", "Ks", "2h"},
			[]string{"Ad", "Ac", "Qh", "Qd", "Kh"},
		},
		{
			"Flush top card",
			[]string{"Ac", "Jc", "8c", "5c", "2c"},
			[]string{"Kd", "Qd", "Jd", "8d", "5d"},
		},
		{
			"Quads kicker",
			[]string{"7h", "7d", "7s", "7c", "Ah"},
			[]string{"7h", "7d", "7s", "7c", "Kh"},
		},
		{
			"Full house trips decide",
			[]string{"As", "Ah", "Ad", "2s", "2h"},
			[]string{"Ks", "Kh", "Kd", "Qs", "Qh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustEvaluate(t, tt.stronger...)
			b := mustEvaluate(t, tt.weaker...)
			if CompareRanks(a, b) != 1 {
				t.Errorf("%v (rank %d) should beat %v (rank %d)", tt.stronger, a, tt.weaker, b)
			}
		})
	}
}

func TestIdenticalStrengthAcrossSuits(t *testing.T) {
	a := mustEvaluate(t, "As", "Kh", "Qd", "9s", "7c")
	b := mustEvaluate(t, "Ad", "Ks", "Qc", "9h", "7d")
	if CompareRanks(a, b) != 0 {
		t.Errorf("same ranks in different suits should tie: %d vs %d", a, b)
	}
}

func TestSevenCardPicksBestFive(t *testing.T) {
	// Seven cards containing a flush must not rank as the pair also present
	withFlush := mustEvaluate(t, "Ah", "Kh", "9h", "5h", "2h", "As", "Ad")
	if withFlush.Type() != Flush {
		t.Errorf("expected Flush, got %v", withFlush.Type())
	}

	// Extra low cards must not change the best five
	five := mustEvaluate(t, "As", "Kh", "Qd", "Jc", "Ts")
	seven := mustEvaluate(t, "As", "Kh", "Qd", "Jc", "Ts", "2h", "3d")
	if five != seven {
		t.Errorf("irrelevant cards changed the rank: %d vs %d", five, seven)
	}
}

func TestEvaluateCardCountValidation(t *testing.T) {
	if _, err := Evaluate(mustHand(t, "As", "Kh", "Qd", "Jc")); err == nil {
		t.Error("expected error for 4 cards")
	}
	if _, err := Evaluate(mustHand(t, "As", "Kh", "Qd", "Jc", "Ts", "9h", "8d", "7c")); err == nil {
		t.Error("expected error for 8 cards")
	}
}

func TestEvaluateOrderInvariance(t *testing.T) {
	codes := []string{"As", "Ah", "Kd", "Qs", "9h", "3c", "2d"}
	want := mustEvaluate(t, codes...)

	rng := rand.New(rand.NewPCG(7, 7))
	for trial := 0; trial < 20; trial++ {
		shuffled := append([]string(nil), codes...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if got := mustEvaluate(t, shuffled...); got != want {
			t.Fatalf("order changed rank: %d vs %d for %v", got, want, shuffled)
		}
	}
}
