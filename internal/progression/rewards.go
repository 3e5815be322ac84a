package progression

import "slices"

// XP reward table.
const (
	CorrectAnswerReward   = 5
	CompletionBonusReward = 10
	PerfectGameReward     = 30
)

// StreakMilestones are the consecutive-correct counts that earn a bonus.
var StreakMilestones = []int{5, 10, 20, 50, 100}

var streakBonus = map[int]int{
	5:   10,
	10:  25,
	20:  50,
	50:  100,
	100: 200,
}

// GainReason labels why XP was awarded.
type GainReason string

const (
	ReasonCorrectAnswer   GainReason = "correct_answer"
	ReasonStreakBonus     GainReason = "streak_bonus"
	ReasonCompletionBonus GainReason = "completion_bonus"
	ReasonPerfectGame     GainReason = "perfect_game"
)

// CorrectAnswerXP returns the XP for one correct answer.
func CorrectAnswerXP() int {
	return CorrectAnswerReward
}

// IsStreakMilestone reports whether streak is one of StreakMilestones.
func IsStreakMilestone(streak int) bool {
	return slices.Contains(StreakMilestones, streak)
}

// StreakBonusXP returns the bonus for reaching streak, or 0 if streak is
// not a milestone.
func StreakBonusXP(streak int) int {
	return streakBonus[streak]
}

// NextStreakMilestone returns the smallest milestone above current, or 0
// once the last milestone has been passed.
func NextStreakMilestone(current int) int {
	for _, m := range StreakMilestones {
		if m > current {
			return m
		}
	}
	return 0
}

// CompletionBonusXP returns the bonus for finishing a quiz, including the
// perfect-game bonus when every answer was correct.
func CompletionBonusXP(score, total int) int {
	bonus := CompletionBonusReward
	if score == total {
		bonus += PerfectGameReward
	}
	return bonus
}
