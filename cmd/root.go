package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "ethicscoach",
	Short: "AI ethics speech coach",
	Long: `ethicscoach drills you on AI ethics questions in the terminal.

Pick a track, answer the way you would in front of an ethics board, and the
coach grades how many of the expected concepts your answer covers.`,
	SilenceUsage: true,
	RunE:         runApp,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("catalog", "", "Question catalog file, YAML or JSON (overrides ETHICSCOACH_CATALOG)")
	f.String("log-dir", "", "Directory for log and telemetry files (overrides ETHICSCOACH_LOG_DIR)")
	f.Bool("no-tts", false, "Start with text-to-speech muted")
	f.String("tts-cmd", "", `Speech command, e.g. "espeak-ng -s 160" (overrides ETHICSCOACH_TTS_CMD)`)
	f.Bool("no-repeat", false, "Never serve the same question twice in a row")
	f.Uint64("seed", 0, "Seed for question selection, 0 for random")
	f.String("export-file", "", "Write copied notes here when the system clipboard is unavailable")

	rootCmd.Flags().Bool("skip-intro", false, "Start on the track menu")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers .env, environment variables and flags, each
// overriding the one before.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadEnvFile(".env"); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath, _ = flags.GetString("catalog")
	}
	if flags.Changed("log-dir") {
		cfg.LogDir, _ = flags.GetString("log-dir")
	}
	if flags.Changed("tts-cmd") {
		cfg.Speech.Command, _ = flags.GetString("tts-cmd")
	}
	if flags.Changed("export-file") {
		cfg.ExportFile, _ = flags.GetString("export-file")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if off, _ := flags.GetBool("no-tts"); off {
		cfg.Speech.Enabled = false
	}
	if on, _ := flags.GetBool("no-repeat"); on {
		cfg.NoRepeat = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
