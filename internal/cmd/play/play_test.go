package play

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-rounds", "3", "-two-player", "-delay", "0s", "-seed", "42", "-player1", "Ann"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Rounds != 3 || !cfg.TwoPlayer || cfg.Delay != 0 || cfg.Seed != 42 || cfg.Player1 != "Ann" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Rounds != 5 || cfg.TwoPlayer || cfg.Delay != 1500*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestRunTwoPlayerGame(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Rounds: 1, TwoPlayer: true, Seed: 7}

	err := Run(context.Background(), cfg, strings.NewReader("\n\ns\nq\n"), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Two players, 1 rounds.", "Player 1 rolled", "Player 2 rolled", "=== Player 1 Statistics ===", "Bye!"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(got, "WINS!") && !strings.Contains(got, "IT'S A TIE!") {
		t.Fatalf("no result headline:\n%s", got)
	}
}

func TestRunComputerRollsAfterHuman(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Rounds: 2, Seed: 3}

	err := Run(context.Background(), cfg, strings.NewReader("\n\nq\n"), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if strings.Count(got, "Computer rolled") != 2 || strings.Count(got, "Player 1 rolled") != 2 {
		t.Fatalf("expected two rolls each:\n%s", got)
	}
	if !strings.Contains(got, "Round 2/2") {
		t.Fatalf("round 2 not reached:\n%s", got)
	}
}

func TestRunSwitchModeAndRollAfterEnd(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Rounds: 1, TwoPlayer: true, Seed: 11}

	err := Run(context.Background(), cfg, strings.NewReader("\n\n\nm\nq\n"), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "The game is over.") {
		t.Fatalf("roll after end not rejected:\n%s", got)
	}
	if !strings.Contains(got, "Single player vs Computer, 1 rounds.") {
		t.Fatalf("mode not switched:\n%s", got)
	}
}

func TestRunStopsOnEOF(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Rounds: 1, TwoPlayer: true, Seed: 1}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
}
