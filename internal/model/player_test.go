package model

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestPlayerAccountFresh(t *testing.T) {
	p := NewPlayerAccount("Player 1")

	if p.AverageScore() != 0.0 {
		t.Errorf("expected average 0 on fresh account, got %v", p.AverageScore())
	}
	if p.DoublesPercentage() != 0.0 {
		t.Errorf("expected doubles percentage 0 on fresh account, got %v", p.DoublesPercentage())
	}
}

func TestPlayerAccountAddScore(t *testing.T) {
	p := NewPlayerAccount("Player 1")
	rolls := []int{7, 12, 16, 3, 24}

	sum := 0
	for _, points := range rolls {
		if err := p.AddScore(points); err != nil {
			t.Fatalf("add score %d: %v", points, err)
		}
		sum += points
	}

	if p.Score != sum {
		t.Errorf("score = %d, want %d", p.Score, sum)
	}
	if p.RollCount != len(rolls) {
		t.Errorf("roll count = %d, want %d", p.RollCount, len(rolls))
	}
	if p.HighestSingleRoll != 24 {
		t.Errorf("highest single roll = %d, want 24", p.HighestSingleRoll)
	}
	// 12 - дубль троек, но порог > 12 не пройден
	if p.DoublesCount != 2 {
		t.Errorf("doubles count = %d, want 2", p.DoublesCount)
	}
	if p.TotalPointsFromDoubles != 40 {
		t.Errorf("points from doubles = %d, want 40", p.TotalPointsFromDoubles)
	}
	if got, want := p.AverageScore(), float64(sum)/float64(len(rolls)); got != want {
		t.Errorf("average = %v, want %v", got, want)
	}
	if got := p.DoublesPercentage(); math.Abs(got-40.0) > 1e-9 {
		t.Errorf("doubles percentage = %v, want 40", got)
	}
}

func TestPlayerAccountAddScoreRejectsNegative(t *testing.T) {
	p := NewPlayerAccount("Player 1")
	if err := p.AddScore(5); err != nil {
		t.Fatalf("add score: %v", err)
	}

	err := p.AddScore(-1)
	if !errors.Is(err, ErrInvalidScoreInput) {
		t.Fatalf("expected ErrInvalidScoreInput, got %v", err)
	}
	if p.Score != 5 || p.RollCount != 1 {
		t.Fatalf("account mutated by rejected input: %+v", *p)
	}
}

func TestPlayerAccountResetScore(t *testing.T) {
	p := NewPlayerAccount("Computer")
	for _, points := range []int{20, 8, 14} {
		if err := p.AddScore(points); err != nil {
			t.Fatalf("add score: %v", err)
		}
	}

	p.ResetScore()

	want := PlayerAccount{Name: "Computer"}
	if *p != want {
		t.Fatalf("after reset got %+v, want %+v", *p, want)
	}
}

func TestPlayerAccountIdentity(t *testing.T) {
	a := PlayerAccount{Name: "Player 1", Score: 10}
	b := PlayerAccount{Name: "Player 1", Score: 30}
	c := PlayerAccount{Name: "Computer", Score: 10}

	if !a.SameAs(b) {
		t.Error("expected same player for equal names")
	}
	if a.SameAs(c) {
		t.Error("expected different players for different names")
	}
	if !b.HasWonAgainst(a) || a.HasWonAgainst(b) {
		t.Error("unexpected HasWonAgainst result")
	}
	if !a.IsTiedWith(c) {
		t.Error("expected tie for equal scores")
	}
}

func TestPlayerAccountText(t *testing.T) {
	p := NewPlayerAccount("Player 1")
	_ = p.AddScore(16)
	_ = p.AddScore(5)

	if got, want := p.Summary(), "Player 1: 21 points (2 rolls)"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}

	stats := p.DetailedStatistics()
	for _, line := range []string{
		"=== Player 1 Statistics ===",
		"Total Score: 21 points",
		"Doubles Rolled: 1 (50.0%)",
		"Average Score per Roll: 10.50 points",
	} {
		if !strings.Contains(stats, line) {
			t.Errorf("detailed statistics missing %q:\n%s", line, stats)
		}
	}
}
