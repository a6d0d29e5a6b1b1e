package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lanepath/lanegrid"
	"github.com/katalvlaran/lanepath/planner"
	"github.com/katalvlaran/lanepath/report"
	"github.com/katalvlaran/lanepath/store"
)

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Remove a saved plan from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(a.cfg.Store.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteRun(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.logger.Info("plan deleted", "run_id", args[0])
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "deleted run %s\n", args[0])

			return nil
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <plan.yaml>",
		Short: "Validate a YAML plan and add it to the history",
		Long: `Read a plan written by "lanepath plan --yaml" or "lanepath show --yaml",
check it against the coverage rules and save it under a new run ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := report.ReadYAML(f)
			if err != nil {
				return err
			}
			p, err := doc.Plan()
			if err != nil {
				return err
			}
			g, err := lanegrid.FromLanes(doc.Grid.LanesX, doc.Grid.LanesY)
			if err != nil {
				return err
			}
			exit, err := lanegrid.Classify(g, lanegrid.Point{X: doc.Exit.X, Y: doc.Exit.Y})
			if err != nil {
				return err
			}
			if err := planner.ValidatePlan(p, g.MaxX, exit.Point); err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}

			st, err := store.Open(a.cfg.Store.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.SaveRun(cmd.Context(), store.NewRun(g, exit, doc.GapSize, p))
			if err != nil {
				return err
			}
			a.logger.Info("plan imported", "run_id", id, "file", args[0])
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "imported run %s\n", id)

			return nil
		},
	}
}
