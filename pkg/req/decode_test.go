package req

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	type payload struct {
		Rounds int `json:"rounds"`
	}

	got, err := Decode[payload](strings.NewReader(`{"rounds": 4}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Rounds != 4 {
		t.Fatalf("rounds = %d, want 4", got.Rounds)
	}

	if _, err := Decode[payload](strings.NewReader("")); !errors.Is(err, io.EOF) {
		t.Fatalf("empty body: expected io.EOF, got %v", err)
	}
	if _, err := Decode[payload](strings.NewReader("{")); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
