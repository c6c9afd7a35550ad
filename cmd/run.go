package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/app"
	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/ui/board"
)

// runApp builds the session and launches the TUI.
func runApp(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c, err := openCoach(cmd)
	if err != nil {
		return err
	}
	defer c.Close(ctx)

	b := board.New()
	ctrl, err := c.newSession(b)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	skip, _ := cmd.Flags().GetBool("skip-intro")
	return app.Run(ctx, app.Options{
		Controller:  ctrl,
		Board:       b,
		Tracks:      c.catalog.Tracks(),
		SkipWelcome: skip,
	})
}
