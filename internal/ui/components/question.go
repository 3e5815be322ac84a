package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shirai91/mathfun/internal/questiongen"
	"github.com/shirai91/mathfun/internal/ui/theme"
)

// OptionLabels label the answer options in order.
var OptionLabels = []string{"A", "B", "C", "D"}

// QuestionCard renders a question and its answer options.
type QuestionCard struct {
	Question questiongen.Question

	// Number and Total are shown in the header when Total > 0.
	Number int
	Total  int

	// Revealed highlights the correct option, for hints and previews.
	Revealed bool
}

// View renders the card.
func (c QuestionCard) View() string {
	var b strings.Builder

	if c.Total > 0 {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d/%d", c.Number, c.Total)))
		b.WriteString("\n")
	}

	body := QuestionBody(c.Question)
	b.WriteString(theme.Card.Render(theme.Body.Bold(true).Render(body)))
	b.WriteString("\n")

	for i, opt := range c.Question.Options {
		label := fmt.Sprintf("  %s) %d", optionLabel(i), opt)
		if c.Revealed && opt == c.Question.Answer {
			label = theme.Correct.Render(label + "  ✓")
		}
		b.WriteString(label)
		b.WriteString("\n")
	}
	return b.String()
}

// QuestionBody lays the equation out in the question's format.
func QuestionBody(q questiongen.Question) string {
	if q.Format != questiongen.FormatVertical {
		return q.Text()
	}

	top := slot(q.Operand1)
	bottom := slot(q.Operand2)
	result := slot(q.Result)
	w := max(len(top), len(bottom), len(result)) + 2

	lines := []string{
		pad(top, w),
		q.Operation.Symbol() + pad(bottom, w-1),
		strings.Repeat("─", w),
		pad(result, w),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// OptionIndex maps a typed label such as "a" or "B" to an option index.
func OptionIndex(input string, count int) (int, bool) {
	input = strings.ToUpper(strings.TrimSpace(input))
	for i := 0; i < count && i < len(OptionLabels); i++ {
		if input == OptionLabels[i] {
			return i, true
		}
	}
	return 0, false
}

func optionLabel(i int) string {
	if i < len(OptionLabels) {
		return OptionLabels[i]
	}
	return fmt.Sprint(i + 1)
}

func slot(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprint(*v)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
