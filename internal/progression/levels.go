package progression

// MaxLevel is the terminal level. XP keeps accumulating past its threshold.
const MaxLevel = 10

// LevelConfig is a static entry of the level table.
type LevelConfig struct {
	Level int
	// XPRequired is the cumulative XP at which this level begins.
	XPRequired int
	Title      string
	TitleKey   string
}

// levelConfigs is indexed by level-1. Thresholds are non-decreasing and
// the first is always 0.
var levelConfigs = [MaxLevel]LevelConfig{
	{Level: 1, XPRequired: 0, Title: "Beginner", TitleKey: "level.beginner"},
	{Level: 2, XPRequired: 50, Title: "Learner", TitleKey: "level.learner"},
	{Level: 3, XPRequired: 150, Title: "Explorer", TitleKey: "level.explorer"},
	{Level: 4, XPRequired: 300, Title: "Star", TitleKey: "level.star"},
	{Level: 5, XPRequired: 500, Title: "Champion", TitleKey: "level.champion"},
	{Level: 6, XPRequired: 750, Title: "Hero", TitleKey: "level.hero"},
	{Level: 7, XPRequired: 1050, Title: "Wizard", TitleKey: "level.wizard"},
	{Level: 8, XPRequired: 1400, Title: "Master", TitleKey: "level.master"},
	{Level: 9, XPRequired: 1800, Title: "Genius", TitleKey: "level.genius"},
	{Level: 10, XPRequired: 2500, Title: "Legend", TitleKey: "level.legend"},
}

// LevelConfigs returns the whole level table in ascending order.
func LevelConfigs() []LevelConfig {
	out := levelConfigs
	return out[:]
}

// LevelConfigFor returns the table entry for level. Levels outside
// [1, MaxLevel] are clamped rather than rejected.
func LevelConfigFor(level int) LevelConfig {
	return levelConfigs[clampLevel(level)-1]
}

// XPForCurrentLevel returns the threshold at which level begins.
func XPForCurrentLevel(level int) int {
	return LevelConfigFor(level).XPRequired
}

// XPForNextLevel returns the threshold of the level after level, or 0 at MaxLevel.
func XPForNextLevel(level int) int {
	if level >= MaxLevel {
		return 0
	}
	return LevelConfigFor(level + 1).XPRequired
}

func clampLevel(level int) int {
	return min(max(level, 1), MaxLevel)
}
