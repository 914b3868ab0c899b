package cmd

import (
	"fmt"

	"github.com/quotienthq/quotient/internal/catalog"
	"github.com/quotienthq/quotient/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the question catalog into the database",
	Long: "Seed validates a question catalog (JSON) and loads it into the database.\n" +
		"Without --file the embedded default catalog is used. An existing catalog\n" +
		"is left untouched unless --force replaces it wholesale.",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		force, _ := cmd.Flags().GetBool("force")

		var entries []catalog.Entry
		var err error
		if file != "" {
			entries, err = catalog.ParseFile(file)
		} else {
			entries, err = catalog.Default()
		}
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n, err := catalog.Seed(cmd.Context(), st.Questions(), entries, force)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Println("Catalog already seeded; use --force to replace it.")
			return nil
		}
		fmt.Printf("Seeded %d questions.\n", n)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("file", "", "Path to a question catalog JSON file")
	seedCmd.Flags().Bool("force", false, "Replace an existing catalog")
}
