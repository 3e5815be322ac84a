package components

import (
	"strings"
	"testing"

	"github.com/shirai91/mathfun/internal/progression"
	"github.com/shirai91/mathfun/internal/questiongen"
)

func intp(v int) *int { return &v }

func TestLevelBarView(t *testing.T) {
	bar := NewLevelBar(progression.LevelData{Level: 2, CurrentXP: 100, TotalXP: 100}, 40)

	if bar.Percent != 50 {
		t.Errorf("Percent = %d, want 50", bar.Percent)
	}
	view := bar.View()
	for _, want := range []string{"Lv 2", "Learner", "50%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view %q missing %q", view, want)
		}
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	for _, pct := range []int{-10, 0, 100, 250} {
		view := NewProgressBar("", pct, false, 10).View()
		if view == "" {
			t.Errorf("empty view for %d%%", pct)
		}
	}
}

func TestQuestionBodyHorizontal(t *testing.T) {
	q := questiongen.Question{
		Operand1:  intp(3),
		Result:    intp(7),
		Answer:    4,
		Operation: questiongen.OpAddition,
		Format:    questiongen.FormatHorizontal,
	}
	if got := QuestionBody(q); got != "3 + ? = 7" {
		t.Errorf("QuestionBody = %q, want %q", got, "3 + ? = 7")
	}
}

func TestQuestionBodyVertical(t *testing.T) {
	q := questiongen.Question{
		Operand1:  intp(12),
		Operand2:  intp(5),
		Answer:    7,
		Operation: questiongen.OpSubtraction,
		Format:    questiongen.FormatVertical,
	}
	lines := strings.Split(QuestionBody(q), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), lines)
	}
	if strings.TrimSpace(lines[0]) != "12" {
		t.Errorf("top line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "-") || strings.TrimSpace(lines[1][1:]) != "5" {
		t.Errorf("operator line = %q", lines[1])
	}
	if strings.TrimSpace(lines[3]) != "?" {
		t.Errorf("result line = %q", lines[3])
	}
}

func TestQuestionCardRevealed(t *testing.T) {
	q := questiongen.Question{
		Operand1:  intp(2),
		Operand2:  intp(2),
		Answer:    4,
		Options:   []int{3, 4, 5, 6},
		Operation: questiongen.OpAddition,
	}
	view := QuestionCard{Question: q, Number: 1, Total: 10, Revealed: true}.View()
	for _, want := range []string{"Question 1/10", "A) 3", "B) 4", "✓"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestOptionIndex(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"a", 0, true},
		{" D ", 3, true},
		{"c", 2, true},
		{"1", 0, false},
		{"e", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := OptionIndex(tt.in, 4)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("OptionIndex(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
