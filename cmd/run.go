package cmd

import (
	"github.com/shirai91/mathfun/internal/session"
	"github.com/spf13/cobra"
)

// runApp starts a quick-start game, the default when no subcommand is given.
func runApp(cmd *cobra.Command) error {
	return runPlay(cmd, session.ModeQuickStart)
}
