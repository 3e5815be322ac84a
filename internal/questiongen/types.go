package questiongen

import (
	"fmt"
	"strconv"
)

// Question is a single generated arithmetic question. Exactly one of
// Operand1, Operand2 and Result is nil; Answer fills that slot.
type Question struct {
	// ID is unique per generated question and never reused.
	ID string

	Operand1 *int
	Operand2 *int
	Result   *int

	// Answer is the value of the missing slot.
	Answer int

	// Options holds 4 distinct values in shuffled order, one of which is Answer.
	Options []int

	Format    Format
	Operation Operation
	Type      QuestionType

	// Topic is the topic filter the question was generated under.
	Topic Topic
}

// Text renders the question on one line with "?" for the missing slot,
// e.g. "? + 4 = 9".
func (q Question) Text() string {
	return fmt.Sprintf("%s %s %s = %s",
		slot(q.Operand1), q.Operation.Symbol(), slot(q.Operand2), slot(q.Result))
}

// IsCorrect reports whether value is the answer to q.
func (q Question) IsCorrect(value int) bool {
	return value == q.Answer
}

func slot(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}

// Format is a rendering hint for how the question is laid out.
type Format string

const (
	FormatHorizontal Format = "horizontal"
	FormatVertical   Format = "vertical"
)

var formats = []Format{FormatHorizontal, FormatVertical}

// Operation is the arithmetic operation of a question.
type Operation string

const (
	OpAddition    Operation = "addition"
	OpSubtraction Operation = "subtraction"
)

// Symbol returns "+" or "-".
func (o Operation) Symbol() string {
	if o == OpSubtraction {
		return "-"
	}
	return "+"
}

// QuestionType identifies which slot of "a op b = c" is unknown.
type QuestionType string

const (
	AddFindSum        QuestionType = "add_find_sum"        // a + b = ?
	AddFindFirst      QuestionType = "add_find_first"      // ? + b = c
	AddFindSecond     QuestionType = "add_find_second"     // a + ? = c
	SubFindDiff       QuestionType = "sub_find_diff"       // a - b = ?
	SubFindSubtrahend QuestionType = "sub_find_subtrahend" // a - ? = c
	SubFindMinuend    QuestionType = "sub_find_minuend"    // ? - b = c
)

// AllQuestionTypes returns every question type in canonical order.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{
		AddFindSum, AddFindFirst, AddFindSecond,
		SubFindDiff, SubFindSubtrahend, SubFindMinuend,
	}
}

// Operation returns the operation implied by the question type.
func (t QuestionType) Operation() Operation {
	switch t {
	case AddFindSum, AddFindFirst, AddFindSecond:
		return OpAddition
	case SubFindDiff, SubFindSubtrahend, SubFindMinuend:
		return OpSubtraction
	default:
		panic(fmt.Sprintf("questiongen: unknown question type %q", string(t)))
	}
}
