package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shirai91/mathfun/internal/config"
	"github.com/shirai91/mathfun/internal/progression"
	"github.com/shirai91/mathfun/internal/questiongen"
	"github.com/shirai91/mathfun/internal/store"
	"github.com/spf13/cobra"
)

// logger receives warnings from the level store.
var logger = log.New(os.Stderr, "mathfun: ", 0)

var rootCmd = &cobra.Command{
	Use:   "mathfun",
	Short: "Arithmetic practice game for kids",
	Long:  "Mathfun is a terminal game for practicing addition and subtraction, with XP, levels and streaks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHFUN_DB env var)")
	rootCmd.PersistentFlags().Int("range", 0, fmt.Sprintf("Number range, one of %v (overrides MATHFUN_RANGE)", questiongen.RangeOptions))
	rootCmd.PersistentFlags().String("topic", "", "Topic: all, addition, subtraction, find_result, find_missing (overrides MATHFUN_TOPIC)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// settings are the resolved game options for one command.
type settings struct {
	cfg   config.Config
	rng   int
	topic questiongen.Topic
}

// loadSettings reads the environment config and applies flag overrides.
func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return settings{}, err
	}
	s := settings{cfg: cfg, rng: cfg.Range, topic: cfg.TopicValue()}

	if cmd.Flags().Changed("range") {
		n, _ := cmd.Flags().GetInt("range")
		if s.rng, err = questiongen.ValidateRange(n); err != nil {
			return settings{}, err
		}
	}
	if cmd.Flags().Changed("topic") {
		t, _ := cmd.Flags().GetString("topic")
		if s.topic, err = questiongen.ParseTopic(t); err != nil {
			return settings{}, err
		}
	}
	return s, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHFUN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func newTracker(ctx context.Context, st *store.Store) *progression.Tracker {
	return progression.NewTracker(ctx, progression.NewLevelStore(st.KVRepo(), logger.Printf))
}
