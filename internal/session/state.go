package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shirai91/mathfun/internal/progression"
	"github.com/shirai91/mathfun/internal/questiongen"
)

var (
	// ErrFinished is returned when a finished session is asked for more.
	ErrFinished = errors.New("session finished")

	// ErrNotFinished is returned by QuickStart.Complete before every
	// question has been answered.
	ErrNotFinished = errors.New("session not finished")

	// ErrHintUsed is returned when a hint is requested twice for the same question.
	ErrHintUsed = errors.New("hint already used for this question")
)

// Mode identifies the kind of play session.
type Mode string

const (
	ModeQuickStart Mode = "quick"
	ModeEndless    Mode = "endless"
)

// DefaultQuickStartQuestions is the length of a quick-start quiz.
const DefaultQuickStartQuestions = 10

// Options configures a new session.
type Options struct {
	Range int
	Topic questiongen.Topic

	// Questions is the quiz length for quick-start sessions. Zero means
	// DefaultQuickStartQuestions. Ignored by endless sessions.
	Questions int
}

func (o Options) normalize() (Options, error) {
	if o.Range == 0 {
		o.Range = questiongen.DefaultRange
	}
	if _, err := questiongen.ValidateRange(o.Range); err != nil {
		return o, err
	}
	if o.Topic == "" {
		o.Topic = questiongen.DefaultTopic
	}
	if _, ok := questiongen.TopicConfigFor(o.Topic); !ok {
		return o, fmt.Errorf("%w %q", questiongen.ErrUnknownTopic, o.Topic)
	}
	if o.Questions < 0 {
		return o, fmt.Errorf("question count must not be negative, got %d", o.Questions)
	}
	if o.Questions == 0 {
		o.Questions = DefaultQuickStartQuestions
	}
	return o, nil
}

// AnswerOutcome is the result of answering one question.
type AnswerOutcome struct {
	Correct bool

	// Answer is the correct answer to the question.
	Answer int

	// XPGained is all XP awarded for this answer, bonuses included.
	XPGained int

	// Streak is the streak after this answer.
	Streak int

	// Milestone is true when Streak hit a bonus milestone.
	Milestone bool

	LeveledUp bool
	NewLevel  int
}

// state is the bookkeeping shared by both session modes.
type state struct {
	id      string
	mode    Mode
	opts    Options
	gen     *questiongen.Generator
	tracker *progression.Tracker
	now     func() time.Time
	start   time.Time

	answered   int
	correct    int
	streak     int
	bestStreak int
	hintsUsed  int
	xpEarned   int

	// hinted is true once a hint was shown for the current question.
	hinted bool
}

func newState(mode Mode, gen *questiongen.Generator, tracker *progression.Tracker, opts Options) (*state, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if gen == nil {
		gen = questiongen.New(questiongen.DefaultConfig())
	}
	if tracker == nil {
		tracker = progression.NewTracker(context.Background(), nil)
	}
	s := &state{
		id:      uuid.New().String(),
		mode:    mode,
		opts:    opts,
		gen:     gen,
		tracker: tracker,
		now:     time.Now,
	}
	s.start = s.now()
	return s, nil
}

// record scores one answer against q and awards XP.
func (s *state) record(ctx context.Context, q questiongen.Question, value int, streakBonus bool) AnswerOutcome {
	out := AnswerOutcome{
		Correct: q.IsCorrect(value),
		Answer:  q.Answer,
	}
	s.answered++
	s.hinted = false

	if !out.Correct {
		s.streak = 0
		return out
	}

	s.correct++
	s.streak++
	s.bestStreak = max(s.bestStreak, s.streak)
	out.Streak = s.streak

	s.apply(&out, s.tracker.AwardCorrectAnswer(ctx))
	if streakBonus && progression.IsStreakMilestone(s.streak) {
		out.Milestone = true
		s.apply(&out, s.tracker.AwardStreakBonus(ctx, s.streak))
	}
	return out
}

func (s *state) apply(out *AnswerOutcome, a progression.Award) {
	out.XPGained += a.XP
	s.xpEarned += a.XP
	if a.LeveledUp {
		out.LeveledUp = true
		out.NewLevel = a.NewLevel
	}
}

func (s *state) hint(q questiongen.Question) (int, error) {
	if s.hinted {
		return 0, ErrHintUsed
	}
	s.hinted = true
	s.hintsUsed++
	return q.Answer, nil
}

func (s *state) summary() Summary {
	return Summary{
		SessionID:  s.id,
		Mode:       s.mode,
		Topic:      s.opts.Topic,
		Range:      s.opts.Range,
		Questions:  s.answered,
		Correct:    s.correct,
		BestStreak: s.bestStreak,
		HintsUsed:  s.hintsUsed,
		XPEarned:   s.xpEarned,
		Duration:   s.now().Sub(s.start),
	}
}
