package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/shirai91/mathfun/internal/progression"
	"github.com/shirai91/mathfun/internal/ui/components"
	"github.com/shirai91/mathfun/internal/ui/theme"
	"github.com/spf13/cobra"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show current level and XP",
	RunE:  runLevel,
}

func init() {
	levelCmd.Flags().Bool("all", false, "Also list every level and its XP threshold")
}

func runLevel(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd, s.cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	tracker := newTracker(cmd.Context(), st)
	data := tracker.Data()
	out := cmd.OutOrStdout()

	lipgloss.Fprintln(out, theme.Title.Render(fmt.Sprintf("Level %d: %s", data.Level, tracker.Config().Title)))
	lipgloss.Fprintln(out, components.NewLevelBar(data, 48).View())
	if data.IsMaxLevel() {
		lipgloss.Fprintln(out, theme.XP.Render("Max level reached!"))
	} else {
		lipgloss.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf("%d XP to level %d", tracker.XPUntilNextLevel(), data.Level+1)))
	}
	lipgloss.Fprintln(out, theme.XP.Render(fmt.Sprintf("Total XP: %d", data.TotalXP)))

	if all, _ := cmd.Flags().GetBool("all"); all {
		lipgloss.Fprintln(out)
		lipgloss.Fprintln(out, levelTable(data.Level))
	}
	return nil
}

func levelTable(current int) string {
	rows := make([][]string, 0, progression.MaxLevel)
	for _, c := range progression.LevelConfigs() {
		rows = append(rows, []string{strconv.Itoa(c.Level), c.Title, strconv.Itoa(c.XPRequired)})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Level", "Title", "XP").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Foreground(theme.Primary).Bold(true)
			case row+1 == current:
				return style.Foreground(theme.Gold).Bold(true)
			}
			return style
		}).
		String()
}
