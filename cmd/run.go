package cmd

import (
	"fmt"

	"github.com/quotienthq/quotient/internal/app"
	"github.com/quotienthq/quotient/internal/catalog"
	"github.com/quotienthq/quotient/internal/engine"
	"github.com/quotienthq/quotient/internal/identity"
	"github.com/quotienthq/quotient/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, seeds the default catalog on first run,
// builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	entries, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load embedded catalog: %w", err)
	}
	if _, err := catalog.Seed(ctx, st.Questions(), entries, false); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	questions, _ := cmd.Flags().GetInt("questions")
	return app.Run(app.Options{
		Engine:    engine.New(st),
		Identity:  identity.NewService(st.Users()),
		Questions: questions,
	})
}
