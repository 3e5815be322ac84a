package progression

import "math"

// LevelData is the persisted progression record for one player.
type LevelData struct {
	Level     int `json:"level"`
	CurrentXP int `json:"currentXP"`
	TotalXP   int `json:"totalXP"`
}

// DefaultLevelData returns the state of a new player.
func DefaultLevelData() LevelData {
	return LevelData{Level: 1}
}

// IsMaxLevel reports whether data is at the terminal level.
func (d LevelData) IsMaxLevel() bool {
	return d.Level >= MaxLevel
}

// XPResult is the outcome of AddXP.
type XPResult struct {
	Data      LevelData
	LeveledUp bool
	NewLevel  int
}

// AddXP returns data with amount added. The level advances past every
// threshold the new total reaches, stopping at MaxLevel. data is not modified.
func AddXP(data LevelData, amount int) XPResult {
	next := LevelData{
		Level:     data.Level,
		CurrentXP: data.CurrentXP + amount,
		TotalXP:   data.TotalXP + amount,
	}

	leveledUp := false
	for next.Level < MaxLevel && next.TotalXP >= XPForNextLevel(next.Level) {
		next.Level++
		leveledUp = true
	}

	return XPResult{Data: next, LeveledUp: leveledUp, NewLevel: next.Level}
}

// LevelProgress returns the percentage (0-100) of the way from the current
// level's threshold to the next one. It is 100 at MaxLevel.
func LevelProgress(data LevelData) int {
	if data.IsMaxLevel() {
		return 100
	}
	start := XPForCurrentLevel(data.Level)
	span := XPForNextLevel(data.Level) - start
	pct := math.Round(float64(data.TotalXP-start) * 100 / float64(span))
	return int(min(max(pct, 0), 100))
}

// XPUntilNextLevel returns the XP still needed for the next level, or 0 at MaxLevel.
func XPUntilNextLevel(data LevelData) int {
	if data.IsMaxLevel() {
		return 0
	}
	return XPForNextLevel(data.Level) - data.TotalXP
}
