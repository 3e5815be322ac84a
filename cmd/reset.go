package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/shirai91/mathfun/internal/ui/theme"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset level and XP to the start",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprint(out, "Reset level and XP? Game history is kept. [y/N] ")
			in := bufio.NewScanner(cmd.InOrStdin())
			if !in.Scan() || !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, s.cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		newTracker(cmd.Context(), st).Reset(cmd.Context())
		lipgloss.Fprintln(out, theme.Correct.Render("Level data reset. Back to level 1!"))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
