package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/shirai91/mathfun/internal/config"
	"github.com/shirai91/mathfun/internal/progression"
	"github.com/shirai91/mathfun/internal/questiongen"
	"github.com/shirai91/mathfun/internal/session"
	"github.com/shirai91/mathfun/internal/ui/components"
	"github.com/shirai91/mathfun/internal/ui/theme"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:       "play [quick|endless]",
	Short:     "Start a game",
	Long:      "Answer with the number or the option letter. Type h for a hint, q to quit.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(session.ModeQuickStart), string(session.ModeEndless)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := session.ModeQuickStart
		if len(args) == 1 {
			switch session.Mode(strings.ToLower(args[0])) {
			case session.ModeQuickStart:
			case session.ModeEndless:
				mode = session.ModeEndless
			default:
				return fmt.Errorf("unknown mode %q: must be quick or endless", args[0])
			}
		}
		return runPlay(cmd, mode)
	},
}

func init() {
	playCmd.Flags().Int("questions", 0, "Quick-start quiz length (overrides MATHFUN_QUICK_START_QUESTIONS)")
}

func runPlay(cmd *cobra.Command, mode session.Mode) error {
	ctx := cmd.Context()
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	questions := s.cfg.QuickStartQuestions
	if f := cmd.Flags().Lookup("questions"); f != nil && f.Changed {
		questions, _ = cmd.Flags().GetInt("questions")
		if questions < 1 || questions > config.MaxQuickStartQuestions {
			return fmt.Errorf("--questions must be between 1 and %d", config.MaxQuickStartQuestions)
		}
	}

	st, err := openStore(cmd, s.cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	p := &player{
		in:      bufio.NewScanner(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
		tracker: newTracker(ctx, st),
	}
	gen := questiongen.New(questiongen.DefaultConfig())
	opts := session.Options{Range: s.rng, Topic: s.topic, Questions: questions}

	p.banner(mode, opts)

	var sum session.Summary
	switch mode {
	case session.ModeEndless:
		e, err := session.NewEndless(gen, p.tracker, opts)
		if err != nil {
			return err
		}
		sum = p.playEndless(ctx, e)
	default:
		qs, err := session.NewQuickStart(gen, p.tracker, opts)
		if err != nil {
			return err
		}
		var done bool
		if sum, done = p.playQuickStart(ctx, qs); !done {
			p.println(theme.Subtitle.Render("Quiz abandoned."))
			return nil
		}
	}

	p.summary(sum)
	if err := session.Record(ctx, st.SessionRepo(), sum); err != nil {
		logger.Printf("warning: %v", err)
	}
	return nil
}

// player runs a line-based game loop.
type player struct {
	in      *bufio.Scanner
	out     io.Writer
	tracker *progression.Tracker
}

type action int

const (
	actAnswer action = iota
	actHint
	actQuit
)

func (p *player) println(v ...any) {
	lipgloss.Fprintln(p.out, v...)
}

// read prompts until the player types an answer, a hint request or quit.
// End of input counts as quit.
func (p *player) read(q questiongen.Question) (int, action) {
	for {
		fmt.Fprint(p.out, "> ")
		if !p.in.Scan() {
			p.println()
			return 0, actQuit
		}
		line := strings.TrimSpace(p.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "h", "hint":
			return 0, actHint
		case "q", "quit", "exit":
			return 0, actQuit
		}
		if i, ok := components.OptionIndex(line, len(q.Options)); ok {
			return q.Options[i], actAnswer
		}
		if n, err := strconv.Atoi(line); err == nil {
			return n, actAnswer
		}
		p.println(theme.Hint.Render("Type a number, a letter A-D, h for a hint or q to quit."))
	}
}

func (p *player) playQuickStart(ctx context.Context, qs *session.QuickStart) (session.Summary, bool) {
	for !qs.Done() {
		q, _ := qs.Current()
		p.println(components.QuestionCard{Question: q, Number: qs.Index() + 1, Total: qs.Len()}.View())

		for answered := false; !answered; {
			value, act := p.read(q)
			switch act {
			case actQuit:
				return session.Summary{}, false
			case actHint:
				p.hint(qs.Hint())
			case actAnswer:
				out, err := qs.Answer(ctx, value)
				if err != nil {
					return session.Summary{}, false
				}
				p.outcome(out)
				answered = true
			}
		}
	}

	sum, err := qs.Complete(ctx)
	if err != nil {
		return session.Summary{}, false
	}
	p.levelUp()
	return sum, true
}

func (p *player) playEndless(ctx context.Context, e *session.Endless) session.Summary {
	for {
		q := e.Current()
		stats := e.Stats()
		header := fmt.Sprintf("Answered %d  Correct %d  Best streak %d", stats.Answered, stats.Correct, stats.BestStreak)
		if next := e.NextMilestone(); next > 0 && stats.Streak > 0 {
			header += "  " + theme.Streak.Render(fmt.Sprintf("Streak %d (next bonus at %d)", stats.Streak, next))
		}
		p.println(theme.Subtitle.Render(header))
		p.println(components.QuestionCard{Question: q}.View())

		for answered := false; !answered; {
			value, act := p.read(q)
			switch act {
			case actQuit:
				return e.Finish()
			case actHint:
				p.hint(e.Hint())
			case actAnswer:
				out, err := e.Answer(ctx, value)
				if err != nil {
					return e.Finish()
				}
				p.outcome(out)
				answered = true
			}
		}
	}
}

func (p *player) hint(answer int, err error) {
	if errors.Is(err, session.ErrHintUsed) {
		p.println(theme.Hint.Render("You already used a hint on this one."))
		return
	}
	if err != nil {
		return
	}
	p.println(theme.Hint.Render(fmt.Sprintf("Hint: the answer is %d", answer)))
}

func (p *player) outcome(out session.AnswerOutcome) {
	if out.Correct {
		line := theme.Correct.Render("✓ Correct!")
		if out.XPGained > 0 {
			line += "  " + theme.XP.Render(fmt.Sprintf("+%d XP", out.XPGained))
		}
		if out.Milestone {
			line += "  " + theme.Streak.Render(fmt.Sprintf("%d in a row!", out.Streak))
		}
		p.println(line)
	} else {
		p.println(theme.Incorrect.Render(fmt.Sprintf("✗ Not quite. The answer was %d.", out.Answer)))
	}
	p.levelUp()
	p.println()
}

// levelUp announces a pending level-up once.
func (p *player) levelUp() {
	level, pending := p.tracker.LevelUp()
	if !pending {
		return
	}
	p.tracker.DismissLevelUp()
	cfg := progression.LevelConfigFor(level)
	p.println(theme.LevelUp.Render(fmt.Sprintf("Level up! You are now level %d: %s", cfg.Level, cfg.Title)))
}

func (p *player) banner(mode session.Mode, opts session.Options) {
	topic, _ := questiongen.TopicConfigFor(opts.Topic)
	name := "Quick start"
	if mode == session.ModeEndless {
		name = "Endless"
	}
	p.println(theme.Title.Render("Mathfun: "+name) + "  " +
		theme.Topic(topic.Color).Render(topic.Emoji+" "+string(topic.ID)) + "  " +
		theme.Subtitle.Render(fmt.Sprintf("numbers up to %d", opts.Range)))
	p.println(components.NewLevelBar(p.tracker.Data(), 48).View())
	p.println(theme.Hint.Render("Answer with a number or letter. h = hint, q = quit."))
	p.println()
}

func (p *player) summary(sum session.Summary) {
	p.println(theme.Title.Render("Results"))
	if sum.Mode == session.ModeQuickStart {
		stars := strings.Repeat("★", sum.Stars) + strings.Repeat("☆", 3-sum.Stars)
		p.println(lipgloss.NewStyle().Foreground(theme.Gold).Render(stars) + "  " + sum.Verdict().Message())
	}
	p.println(fmt.Sprintf("Score: %d/%d (%d%%)", sum.Correct, sum.Questions, sum.Accuracy()))
	p.println(fmt.Sprintf("Best streak: %d   Hints used: %d", sum.BestStreak, sum.HintsUsed))
	p.println(theme.XP.Render(fmt.Sprintf("XP earned: %d", sum.XPEarned)))
	p.println(components.NewLevelBar(p.tracker.Data(), 48).View())
}
