package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gatsp/store"
)

func newHistoryCommand(g *globals) *cobra.Command {
	var (
		db    string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored solver runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := g.load()
			if err != nil {
				return err
			}
			if db != "" {
				cfg.Store.Path = db
			}
			if cfg.Store.Path == "" {
				return fmt.Errorf("history needs --db or store.path")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			s, err := store.Open(ctx, cfg.Store.Path)
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.ListRuns(ctx, limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tGRAPH\tSEED\tCOST\tGENERATIONS\tREASON")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%g\t%d\t%s\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Graph, r.Seed, r.Cost, r.Generations, r.Reason)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "SQLite run store (overrides config)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list; 0 lists all")

	return cmd
}
