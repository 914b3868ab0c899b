package cmd

import (
	"github.com/quotienthq/quotient/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quotient",
	Short: "Terminal IQ test",
	Long:  "Quotient — a terminal app that administers a fixed-length IQ test, scores it, and keeps your history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUOTIENT_DB env var)")
	rootCmd.Flags().Int("questions", 0, "Number of questions per test session (0 = whole catalog)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUOTIENT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
