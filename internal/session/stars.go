package session

import "math"

// Star thresholds as percentages of the quiz. On a 10-question quiz they
// are 10, 7 and 4 correct answers.
const (
	threeStarPercent = 100
	twoStarPercent   = 70
	oneStarPercent   = 40
)

// Stars rates score out of total from 0 to 3 stars.
func Stars(score, total int) int {
	if total <= 0 {
		return 0
	}
	switch pct := score * 100; {
	case pct >= threeStarPercent*total:
		return 3
	case pct >= twoStarPercent*total:
		return 2
	case pct >= oneStarPercent*total:
		return 1
	}
	return 0
}

// Verdict is the results message shown for a finished quiz.
type Verdict string

const (
	VerdictPerfect        Verdict = "perfect"
	VerdictGreat          Verdict = "great"
	VerdictGood           Verdict = "good"
	VerdictKeepPracticing Verdict = "keep_practicing"
)

// VerdictFor picks the results message for score out of total.
func VerdictFor(score, total int) Verdict {
	if total <= 0 {
		return VerdictKeepPracticing
	}
	switch pct := score * 100; {
	case score == total:
		return VerdictPerfect
	case pct >= 80*total:
		return VerdictGreat
	case pct >= 60*total:
		return VerdictGood
	}
	return VerdictKeepPracticing
}

// Message returns a player-facing line for v.
func (v Verdict) Message() string {
	switch v {
	case VerdictPerfect:
		return "Perfect! You got every one!"
	case VerdictGreat:
		return "Great job!"
	case VerdictGood:
		return "Good work!"
	default:
		return "Keep practicing!"
	}
}

// accuracy returns correct/answered as a rounded percentage.
func accuracy(correct, answered int) int {
	if answered == 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(answered)))
}
