package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/quotienthq/quotient/internal/engine"
	"github.com/quotienthq/quotient/internal/scoring"
	"github.com/quotienthq/quotient/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List a user's past test sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		if username == "" {
			return fmt.Errorf("--user is required")
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

		ctx := cmd.Context()
		u, err := st.Users().ByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil {
			return fmt.Errorf("unknown user %q", username)
		}

		sessions, err := engine.New(st).ListSessions(ctx, u.ID)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSCORE\tPERCENT\tBAND\tSTATUS")
		for _, s := range sessions {
			status := "in progress"
			band := "-"
			if s.Completed {
				status = "completed"
				band = scoring.Evaluate(s.Score, s.Total).Band.Label
			}
			fmt.Fprintf(w, "%s\t%d/%d\t%.1f%%\t%s\t%s\n",
				s.DateTaken.Local().Format("Jan 02, 2006 15:04"),
				s.Score, s.Total, s.Percentage, band, status)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().String("user", "", "Username whose history to list")
}
