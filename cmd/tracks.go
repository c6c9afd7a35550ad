package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the drill tracks in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		printTracks(cmd.OutOrStdout(), cat, verbose)
		return nil
	},
}

func init() {
	tracksCmd.Flags().BoolP("verbose", "v", false, "Also list each track's questions and keywords")
}

func printTracks(w io.Writer, cat *catalog.Catalog, verbose bool) {
	tracks := cat.Tracks()

	idWidth := 0
	for _, t := range tracks {
		if len(t.ID) > idWidth {
			idWidth = len(t.ID)
		}
	}

	for _, t := range tracks {
		fmt.Fprintf(w, "%-*s  %s (%d questions)\n", idWidth, t.ID, t.Label, len(t.Questions))
		if !verbose {
			continue
		}
		for _, q := range t.Questions {
			fmt.Fprintf(w, "    %-*s  %s\n", idWidth, q.ID, q.Title)
			fmt.Fprintf(w, "    %-*s  keys: %s\n", idWidth, "", strings.Join(q.Keys, ", "))
		}
	}
	fmt.Fprintf(w, "\n%d tracks, %d questions\n", cat.Len(), cat.QuestionCount())
}
