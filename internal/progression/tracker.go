package progression

import "context"

// Award describes XP granted by one Tracker call.
type Award struct {
	XP        int
	Reason    GainReason
	LeveledUp bool
	NewLevel  int
}

// Tracker holds a player's LevelData for a session and saves it after
// every change. Each change replaces the record rather than editing it.
type Tracker struct {
	store *LevelStore
	data  LevelData

	levelUpPending bool
	levelReached   int
	pendingXP      int
}

// NewTracker loads the player's record from store.
func NewTracker(ctx context.Context, store *LevelStore) *Tracker {
	if store == nil {
		store = NewLevelStore(nil, nil)
	}
	return &Tracker{
		store:        store,
		data:         store.Load(ctx),
		levelReached: 1,
	}
}

// Data returns the current record.
func (t *Tracker) Data() LevelData {
	return t.data
}

// Config returns the level table entry for the current level.
func (t *Tracker) Config() LevelConfig {
	return LevelConfigFor(t.data.Level)
}

// Progress returns the percentage toward the next level.
func (t *Tracker) Progress() int {
	return LevelProgress(t.data)
}

// XPUntilNextLevel returns the XP still needed for the next level.
func (t *Tracker) XPUntilNextLevel() int {
	return XPUntilNextLevel(t.data)
}

// AwardCorrectAnswer grants the correct-answer reward.
func (t *Tracker) AwardCorrectAnswer(ctx context.Context) Award {
	return t.gain(ctx, CorrectAnswerXP(), ReasonCorrectAnswer)
}

// AwardStreakBonus grants the milestone bonus for streak. Non-milestone
// streaks award nothing and leave the record untouched.
func (t *Tracker) AwardStreakBonus(ctx context.Context, streak int) Award {
	xp := StreakBonusXP(streak)
	if xp == 0 {
		return Award{Reason: ReasonStreakBonus, NewLevel: t.data.Level}
	}
	return t.gain(ctx, xp, ReasonStreakBonus)
}

// AwardCompletionBonus grants the quiz completion bonus, including the
// perfect-game bonus when score == total.
func (t *Tracker) AwardCompletionBonus(ctx context.Context, score, total int) Award {
	reason := ReasonCompletionBonus
	if score == total {
		reason = ReasonPerfectGame
	}
	return t.gain(ctx, CompletionBonusXP(score, total), reason)
}

// LevelUp reports the level reached by the most recent level-up that has
// not yet been dismissed.
func (t *Tracker) LevelUp() (level int, pending bool) {
	return t.levelReached, t.levelUpPending
}

// DismissLevelUp clears the pending level-up.
func (t *Tracker) DismissLevelUp() {
	t.levelUpPending = false
}

// PendingXP returns the XP gained since the last ClearPendingXP.
func (t *Tracker) PendingXP() int {
	return t.pendingXP
}

// ClearPendingXP resets the PendingXP accumulator.
func (t *Tracker) ClearPendingXP() {
	t.pendingXP = 0
}

// Reset restores the default record and saves it.
func (t *Tracker) Reset(ctx context.Context) {
	t.data = DefaultLevelData()
	t.levelUpPending = false
	t.levelReached = 1
	t.pendingXP = 0
	t.store.Save(ctx, t.data)
}

func (t *Tracker) gain(ctx context.Context, xp int, reason GainReason) Award {
	res := AddXP(t.data, xp)
	t.data = res.Data
	t.pendingXP += xp
	if res.LeveledUp {
		t.levelUpPending = true
		t.levelReached = res.NewLevel
	}
	t.store.Save(ctx, t.data)

	return Award{
		XP:        xp,
		Reason:    reason,
		LeveledUp: res.LeveledUp,
		NewLevel:  res.NewLevel,
	}
}
