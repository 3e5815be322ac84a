package cmd

import (
	"fmt"
	"strconv"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/shirai91/mathfun/internal/session"
	"github.com/shirai91/mathfun/internal/store"
	"github.com/shirai91/mathfun/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent games",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent games to show (0 for all)")
}

func runStats(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd, s.cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	recs, err := st.SessionRepo().RecentSessions(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		lipgloss.Fprintln(out, theme.Subtitle.Render("No games played yet. Try `mathfun play`."))
		return nil
	}

	lipgloss.Fprintln(out, statsTable(recs))
	var correct, answered, xp int
	for _, r := range recs {
		correct += r.Correct
		answered += r.Questions
		xp += r.XPEarned
	}
	lipgloss.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf("%d games, %d/%d correct, %d XP earned",
		len(recs), correct, answered, xp)))
	return nil
}

func statsTable(recs []store.SessionRecord) string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		stars := "-"
		if session.Mode(r.Mode) == session.ModeQuickStart {
			stars = strconv.Itoa(session.Stars(r.Correct, r.Questions))
		}
		rows = append(rows, []string{
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			r.Mode,
			r.Topic,
			strconv.Itoa(r.Range),
			fmt.Sprintf("%d/%d", r.Correct, r.Questions),
			stars,
			strconv.Itoa(r.BestStreak),
			strconv.Itoa(r.HintsUsed),
			strconv.Itoa(r.XPEarned),
			(time.Duration(r.DurationSecs) * time.Second).String(),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("When", "Mode", "Topic", "Range", "Score", "Stars", "Streak", "Hints", "XP", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Foreground(theme.Primary).Bold(true)
			}
			return style
		}).
		String()
}
