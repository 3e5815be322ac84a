package session

import "testing"

func TestStars(t *testing.T) {
	tests := []struct {
		score, total int
		want         int
	}{
		{10, 10, 3},
		{9, 10, 2},
		{7, 10, 2},
		{6, 10, 1},
		{4, 10, 1},
		{3, 10, 0},
		{0, 10, 0},
		{5, 5, 3},
		{4, 5, 2},
		{2, 5, 1},
		{1, 5, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := Stars(tt.score, tt.total); got != tt.want {
			t.Errorf("Stars(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		score, total int
		want         Verdict
	}{
		{10, 10, VerdictPerfect},
		{9, 10, VerdictGreat},
		{8, 10, VerdictGreat},
		{7, 10, VerdictGood},
		{6, 10, VerdictGood},
		{5, 10, VerdictKeepPracticing},
		{0, 0, VerdictKeepPracticing},
	}

	for _, tt := range tests {
		if got := VerdictFor(tt.score, tt.total); got != tt.want {
			t.Errorf("VerdictFor(%d, %d) = %q, want %q", tt.score, tt.total, got, tt.want)
		}
		if tt.want.Message() == "" {
			t.Errorf("empty message for %q", tt.want)
		}
	}
}
