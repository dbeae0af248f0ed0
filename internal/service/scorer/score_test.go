package scorer

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		die1, die2 int
		wantPoints int
		wantDouble bool
	}{
		{name: "snake eyes", die1: 1, die2: 1, wantPoints: 4, wantDouble: true},
		{name: "double threes", die1: 3, die2: 3, wantPoints: 12, wantDouble: true},
		{name: "double sixes", die1: 6, die2: 6, wantPoints: 24, wantDouble: true},
		{name: "two and five", die1: 2, die2: 5, wantPoints: 7, wantDouble: false},
		{name: "six and five", die1: 6, die2: 5, wantPoints: 11, wantDouble: false},
		{name: "one and two", die1: 1, die2: 2, wantPoints: 3, wantDouble: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, isDouble := Score(tt.die1, tt.die2)
			if points != tt.wantPoints {
				t.Errorf("Score(%d, %d) points = %d, want %d", tt.die1, tt.die2, points, tt.wantPoints)
			}
			if isDouble != tt.wantDouble {
				t.Errorf("Score(%d, %d) isDouble = %v, want %v", tt.die1, tt.die2, isDouble, tt.wantDouble)
			}
		})
	}
}

func TestScoreAllPairs(t *testing.T) {
	for d1 := 1; d1 <= 6; d1++ {
		for d2 := 1; d2 <= 6; d2++ {
			points, isDouble := Score(d1, d2)
			swapped, swappedDouble := Score(d2, d1)
			if points != swapped || isDouble != swappedDouble {
				t.Errorf("Score not symmetric for (%d, %d)", d1, d2)
			}

			if d1 == d2 {
				if !isDouble || points != 2*(d1+d2) {
					t.Errorf("Score(%d, %d) = %d, %v; want doubled", d1, d2, points, isDouble)
				}
				if points < 4 || points > 24 || points%2 != 0 {
					t.Errorf("double points out of range: %d", points)
				}
				continue
			}

			if isDouble || points != d1+d2 {
				t.Errorf("Score(%d, %d) = %d, %v; want plain sum", d1, d2, points, isDouble)
			}
			if points < 3 || points > 11 {
				t.Errorf("non-double points out of range: %d", points)
			}
		}
	}
}
