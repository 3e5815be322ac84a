package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/shirai91/mathfun/internal/questiongen"
	"github.com/shirai91/mathfun/internal/ui/components"
	"github.com/shirai91/mathfun/internal/ui/theme"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions with their answers (no database)",
	Long: `Generate questions for a range and topic and print them with answers revealed.

This is a stateless tool: no database, no XP. Pass --seed to reproduce a set.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().Uint64("seed", 0, "Random seed (0 picks a random one)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	gen := questiongen.New(questiongen.DefaultConfig())
	if seed != 0 {
		gen = questiongen.NewSeeded(questiongen.DefaultConfig(), seed, seed)
	}

	out := cmd.OutOrStdout()
	topic, _ := questiongen.TopicConfigFor(s.topic)
	lipgloss.Fprintln(out, theme.Topic(topic.Color).Render(topic.Emoji+" "+string(topic.ID))+"  "+
		theme.Subtitle.Render(fmt.Sprintf("range %d, %d questions", s.rng, count)))
	lipgloss.Fprintln(out)

	for i, q := range gen.GenerateN(count, s.rng, s.topic) {
		card := components.QuestionCard{Question: q, Number: i + 1, Total: count, Revealed: true}
		lipgloss.Fprintln(out, card.View())
		lipgloss.Fprintln(out, theme.Hint.Render(fmt.Sprintf("%s  %s  answer %d", q.Type, q.Format, q.Answer)))
		lipgloss.Fprintln(out)
	}
	return nil
}
