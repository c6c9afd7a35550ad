package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect question catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tracks, %d questions)\n",
			args[0], cat.Len(), cat.QuestionCount())
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}
