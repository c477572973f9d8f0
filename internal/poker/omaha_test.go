package poker

import (
	"testing"
)

func mustCards(t *testing.T, codes ...string) []Card {
	t.Helper()
	cards, err := ParseCards(codes)
	if err != nil {
		t.Fatalf("failed to parse cards %v: %v", codes, err)
	}
	return cards
}

func TestEvaluateOmahaExactlyTwoHoleCards(t *testing.T) {
	// Hole has two hearts, board has two hearts: five hearts total exist but
	// no Omaha flush, because only two hole cards may be used alongside three
	// board cards
	hole := mustCards(t, "Ah", "Kh", "2c", "2d")
	board := mustCards(t, "Qh", "Jh", "3s", "4c", "5d")

	rank, err := EvaluateOmaha(hole, board)
	if err != nil {
		t.Fatalf("EvaluateOmaha failed: %v", err)
	}
	if rank.Type() == Flush {
		t.Error("Omaha hand used more than two hole cards to make a flush")
	}
	// Best here is the wheel from Ah+2c with the 3-4-5 on the board
	if rank.Type() != Straight {
		t.Errorf("expected Straight, got %v", rank.Type())
	}
}

func TestEvaluateOmahaMustUseTwo(t *testing.T) {
	// Board is a broadway straight, but the hand cannot play the board: it
	// must swap in exactly two hole cards
	hole := mustCards(t, "2c", "2d", "3h", "4s")
	board := mustCards(t, "As", "Kh", "Qd", "Jc", "Ts")

	rank, err := EvaluateOmaha(hole, board)
	if err != nil {
		t.Fatalf("EvaluateOmaha failed: %v", err)
	}
	if rank.Type() == Straight {
		t.Error("Omaha hand played the board straight without two hole cards")
	}
}

func TestEvaluateOmahaFindsBestCombination(t *testing.T) {
	// AsKs + QsJsTs on the board is a royal flush among many combinations
	hole := mustCards(t, "As", "Ks", "2h", "7d")
	board := mustCards(t, "Qs", "Js", "Ts", "2c", "7h")

	rank, err := EvaluateOmaha(hole, board)
	if err != nil {
		t.Fatalf("EvaluateOmaha failed: %v", err)
	}
	if rank.Type() != StraightFlush {
		t.Errorf("expected StraightFlush, got %v", rank.Type())
	}
}

func TestEvaluateOmahaPartialBoard(t *testing.T) {
	hole := mustCards(t, "As", "Ah", "Kd", "Kc")
	board := mustCards(t, "Ac", "7s", "2h")

	rank, err := EvaluateOmaha(hole, board)
	if err != nil {
		t.Fatalf("EvaluateOmaha on flop failed: %v", err)
	}
	if rank.Type() != ThreeOfAKind {
		t.Errorf("expected ThreeOfAKind, got %v", rank.Type())
	}
}

func TestEvaluateOmahaValidation(t *testing.T) {
	board := mustCards(t, "Qh", "Jh", "3s")

	if _, err := EvaluateOmaha(mustCards(t, "Ah", "Kh", "2c"), board); err == nil {
		t.Error("expected error for 3 hole cards")
	}
	if _, err := EvaluateOmaha(mustCards(t, "Ah", "Kh", "2c", "2d", "5s"), board); err == nil {
		t.Error("expected error for 5 hole cards")
	}
	if _, err := EvaluateOmaha(mustCards(t, "Ah", "Kh", "2c", "2d"), mustCards(t, "Qh", "Jh")); err == nil {
		t.Error("expected error for short board")
	}
}

func TestEvaluateHoldem(t *testing.T) {
	hole := mustCards(t, "Ah", "Kh")
	board := mustCards(t, "Qh", "Jh", "Th", "2c", "2d")

	rank, err := EvaluateHoldem(hole, board)
	if err != nil {
		t.Fatalf("EvaluateHoldem failed: %v", err)
	}
	if rank.Type() != StraightFlush {
		t.Errorf("expected StraightFlush, got %v", rank.Type())
	}

	if _, err := EvaluateHoldem(mustCards(t, "Ah"), board); err == nil {
		t.Error("expected error for 1 hole card")
	}
	if _, err := EvaluateHoldem(mustCards(t, "Ah", "Kh", "Qd"), board); err == nil {
		t.Error("expected error for 3 hole cards")
	}
}

func TestVariantDispatch(t *testing.T) {
	if VariantHoldem.HoleSize() != 2 || VariantOmaha.HoleSize() != 4 {
		t.Error("unexpected hole sizes")
	}

	board := mustCards(t, "Qh", "Jh", "Th", "2c", "2d")
	if _, err := VariantHoldem.Evaluate(mustCards(t, "Ah", "Kh"), board); err != nil {
		t.Errorf("holdem dispatch failed: %v", err)
	}
	if _, err := VariantOmaha.Evaluate(mustCards(t, "Ah", "Kh", "3c", "4d"), board); err != nil {
		t.Errorf("omaha dispatch failed: %v", err)
	}
	if _, err := Variant("draw").Evaluate(mustCards(t, "Ah", "Kh"), board); err == nil {
		t.Error("expected error for unknown variant")
	}
}
