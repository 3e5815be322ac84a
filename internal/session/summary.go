package session

import (
	"context"
	"fmt"
	"time"

	"github.com/shirai91/mathfun/internal/questiongen"
	"github.com/shirai91/mathfun/internal/store"
)

// Summary describes a finished session.
type Summary struct {
	SessionID  string
	Mode       Mode
	Topic      questiongen.Topic
	Range      int
	Questions  int
	Correct    int
	BestStreak int
	HintsUsed  int
	XPEarned   int
	Duration   time.Duration

	// Stars is the quick-start rating; always 0 for endless sessions.
	Stars int
}

// Accuracy returns the rounded percentage of correct answers.
func (s Summary) Accuracy() int {
	return accuracy(s.Correct, s.Questions)
}

// Verdict returns the results message for the session.
func (s Summary) Verdict() Verdict {
	return VerdictFor(s.Correct, s.Questions)
}

// Record appends s to the session history. Sessions with no answers are
// not recorded.
func Record(ctx context.Context, repo store.SessionRepo, s Summary) error {
	if repo == nil || s.Questions == 0 {
		return nil
	}
	err := repo.AppendSession(ctx, store.SessionRecord{
		SessionID:    s.SessionID,
		Mode:         string(s.Mode),
		Topic:        string(s.Topic),
		Range:        s.Range,
		Questions:    s.Questions,
		Correct:      s.Correct,
		BestStreak:   s.BestStreak,
		HintsUsed:    s.HintsUsed,
		XPEarned:     s.XPEarned,
		DurationSecs: int(s.Duration.Round(time.Second) / time.Second),
	})
	if err != nil {
		return fmt.Errorf("record session %s: %w", s.SessionID, err)
	}
	return nil
}
