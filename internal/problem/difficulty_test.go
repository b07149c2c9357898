package problem

import "testing"

func TestBoundFor_Fixtures(t *testing.T) {
	tests := []struct {
		gt    GameType
		score int
		want  int
	}{
		{GameAddition, 0, 2},
		{GameAddition, 2, 2},
		{GameAddition, 3, 3},
		{GameAddition, 9, 5},
		{GameAddition, 100, 10}, // capped
		{GameSubtraction, 6, 4},
		{GameMultiplication, 0, 2},
		{GameMultiplication, 8, 4},
		{GameMultiplication, 1000, 10}, // capped
		{GameDivision, 4, 3},
		{GameDivision, 40, 12}, // capped
		{GameMixed, 3, 3},
		{GameMixed, -5, 2}, // negative score treated as zero
	}
	for _, tt := range tests {
		if got := BoundFor(tt.gt, tt.score); got != tt.want {
			t.Errorf("BoundFor(%q, %d) = %d, want %d", tt.gt, tt.score, got, tt.want)
		}
	}
}

func TestBoundFor_MonotoneAndCapped(t *testing.T) {
	for _, gt := range GameTypes() {
		prev := 0
		for score := 0; score <= 200; score++ {
			b := BoundFor(gt, score)
			if b < prev {
				t.Fatalf("%s: bound decreased from %d to %d at score %d", gt, prev, b, score)
			}
			if b < 1 {
				t.Fatalf("%s: bound %d below 1 at score %d", gt, b, score)
			}
			if b > curves[gt].cap {
				t.Fatalf("%s: bound %d exceeds cap %d at score %d", gt, b, curves[gt].cap, score)
			}
			prev = b
		}
	}
}

func TestLabel_Buckets(t *testing.T) {
	tests := []struct {
		gt    GameType
		bound int
		want  string
	}{
		{GameAddition, 2, "easy"},
		{GameAddition, 3, "easy"},
		{GameAddition, 4, "medium"},
		{GameAddition, 6, "medium"},
		{GameAddition, 7, "hard"},
		{GameAddition, 10, "hard"},
		{GameDivision, 4, "easy"},
		{GameDivision, 8, "medium"},
		{GameDivision, 12, "hard"},
	}
	for _, tt := range tests {
		if got := Label(tt.gt, tt.bound); got != tt.want {
			t.Errorf("Label(%q, %d) = %q, want %q", tt.gt, tt.bound, got, tt.want)
		}
	}
}
