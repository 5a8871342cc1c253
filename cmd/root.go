package cmd

import (
	"github.com/spf13/cobra"

	"mentora/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mentora",
	Short: "AI course builder and flashcard tutor",
	Long:  "Mentora builds learning roadmaps and courses with AI and drills them as flashcard reviews, all from the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides the default XDG location)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MENTORA_DB env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the config file, then the default resolution in store.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
