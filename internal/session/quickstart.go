package session

import (
	"context"

	"github.com/shirai91/mathfun/internal/progression"
	"github.com/shirai91/mathfun/internal/questiongen"
)

// QuickStart is a fixed-length quiz. Questions are generated up front and
// answered in order.
type QuickStart struct {
	*state

	questions []questiongen.Question
	results   []*bool
	index     int
	completed bool
}

// NewQuickStart generates the quiz described by opts.
func NewQuickStart(gen *questiongen.Generator, tracker *progression.Tracker, opts Options) (*QuickStart, error) {
	st, err := newState(ModeQuickStart, gen, tracker, opts)
	if err != nil {
		return nil, err
	}
	n := st.opts.Questions
	return &QuickStart{
		state:     st,
		questions: st.gen.GenerateN(n, st.opts.Range, st.opts.Topic),
		results:   make([]*bool, n),
	}, nil
}

// ID returns the session ID.
func (q *QuickStart) ID() string { return q.id }

// Len returns the number of questions in the quiz.
func (q *QuickStart) Len() int { return len(q.questions) }

// Index returns the zero-based position of the current question.
func (q *QuickStart) Index() int { return q.index }

// Current returns the question awaiting an answer. ok is false once every
// question has been answered.
func (q *QuickStart) Current() (questiongen.Question, bool) {
	if q.Done() {
		return questiongen.Question{}, false
	}
	return q.questions[q.index], true
}

// Done reports whether every question has been answered.
func (q *QuickStart) Done() bool {
	return q.index >= len(q.questions)
}

// Answer scores value against the current question and moves on.
func (q *QuickStart) Answer(ctx context.Context, value int) (AnswerOutcome, error) {
	cur, ok := q.Current()
	if !ok {
		return AnswerOutcome{}, ErrFinished
	}
	out := q.record(ctx, cur, value, false)
	correct := out.Correct
	q.results[q.index] = &correct
	q.index++
	return out, nil
}

// Hint reveals the answer to the current question. Each question allows
// one hint.
func (q *QuickStart) Hint() (int, error) {
	cur, ok := q.Current()
	if !ok {
		return 0, ErrFinished
	}
	return q.hint(cur)
}

// Complete awards the completion bonus and returns the session summary.
// The bonus is awarded only on the first call.
func (q *QuickStart) Complete(ctx context.Context) (Summary, error) {
	if !q.Done() {
		return Summary{}, ErrNotFinished
	}
	if !q.completed {
		q.completed = true
		var out AnswerOutcome
		q.apply(&out, q.tracker.AwardCompletionBonus(ctx, q.correct, len(q.questions)))
	}
	sum := q.summary()
	sum.Stars = q.Stars()
	return sum, nil
}

// Score returns the number of correct answers so far.
func (q *QuickStart) Score() int { return q.correct }

// Answers returns per-question results in order. Unanswered questions
// are nil.
func (q *QuickStart) Answers() []*bool {
	out := make([]*bool, len(q.results))
	copy(out, q.results)
	return out
}

// Questions returns a copy of the quiz questions.
func (q *QuickStart) Questions() []questiongen.Question {
	out := make([]questiongen.Question, len(q.questions))
	copy(out, q.questions)
	return out
}

// Stars returns the star rating for the current score.
func (q *QuickStart) Stars() int {
	return Stars(q.correct, len(q.questions))
}
