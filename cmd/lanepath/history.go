package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lanepath/lanegrid"
	"github.com/katalvlaran/lanepath/report"
	"github.com/katalvlaran/lanepath/store"
)

var (
	headerColor  = color.New(color.FgBlue, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

func (a *app) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved plans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.Open(a.cfg.Store.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				_, _ = dimColor.Fprintln(out, "no saved plans")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = headerColor.Fprintln(tw, "RUN ID\tCREATED\tLANES\tEXIT\tSOWN\tTRANSIT")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%v %s\t%d\t%d\n",
					r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"),
					r.LanesX, r.LanesY, r.Exit, r.ExitEdge, r.SownLength, r.TransitLength)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list (0 for all)")

	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(a.cfg.Store.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := st.LoadRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			g, err := lanegrid.FromLanes(run.LanesX, run.LanesY)
			if err != nil {
				return err
			}
			doc := report.NewDocument(g, run.Exit, run.Plan)
			doc.RunID = run.ID
			doc.GapSize = run.GapSize

			if asYAML {
				return report.WriteYAML(cmd.OutOrStdout(), doc)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Summary(doc, true))

			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the plan as YAML")

	return cmd
}
