package session

import (
	"context"

	"github.com/shirai91/mathfun/internal/progression"
	"github.com/shirai91/mathfun/internal/questiongen"
)

// Endless serves one question at a time until the player stops. Correct
// answers build a streak, and streak milestones earn bonus XP.
type Endless struct {
	*state

	current  questiongen.Question
	finished bool
}

// Stats is a running tally of an endless session.
type Stats struct {
	Answered   int
	Correct    int
	Streak     int
	BestStreak int
	HintsUsed  int
	XPEarned   int

	// Accuracy is the rounded percentage of correct answers.
	Accuracy int
}

// NewEndless starts an endless session with its first question ready.
func NewEndless(gen *questiongen.Generator, tracker *progression.Tracker, opts Options) (*Endless, error) {
	st, err := newState(ModeEndless, gen, tracker, opts)
	if err != nil {
		return nil, err
	}
	e := &Endless{state: st}
	e.current = e.gen.Generate(e.opts.Range, e.opts.Topic)
	return e, nil
}

// ID returns the session ID.
func (e *Endless) ID() string { return e.id }

// Current returns the question awaiting an answer.
func (e *Endless) Current() questiongen.Question { return e.current }

// Answer scores value, awards XP and any streak bonus, and generates the
// next question.
func (e *Endless) Answer(ctx context.Context, value int) (AnswerOutcome, error) {
	if e.finished {
		return AnswerOutcome{}, ErrFinished
	}
	out := e.record(ctx, e.current, value, true)
	e.current = e.gen.Generate(e.opts.Range, e.opts.Topic)
	return out, nil
}

// Hint reveals the answer to the current question.
func (e *Endless) Hint() (int, error) {
	if e.finished {
		return 0, ErrFinished
	}
	return e.hint(e.current)
}

// NextMilestone returns the next streak that earns a bonus, or 0 past the last.
func (e *Endless) NextMilestone() int {
	return progression.NextStreakMilestone(e.streak)
}

// Stats returns the running tally.
func (e *Endless) Stats() Stats {
	return Stats{
		Answered:   e.answered,
		Correct:    e.correct,
		Streak:     e.streak,
		BestStreak: e.bestStreak,
		HintsUsed:  e.hintsUsed,
		XPEarned:   e.xpEarned,
		Accuracy:   accuracy(e.correct, e.answered),
	}
}

// Finish ends the session and returns its summary.
func (e *Endless) Finish() Summary {
	e.finished = true
	return e.summary()
}
