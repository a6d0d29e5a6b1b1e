package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lanepath/config"
	"github.com/katalvlaran/lanepath/planner"
	"github.com/katalvlaran/lanepath/report"
	"github.com/katalvlaran/lanepath/store"
)

func (a *app) planCmd() *cobra.Command {
	var (
		save    bool
		yamlOut string
		steps   bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a coverage plan",
		Long: `Generate a coverage plan for the configured field and rover.

The exit is either a corner (--corner tl|tr|bl|br) or a lane along an edge
(--edge top|bottom|left|right --at N). Field and rover sizes share one unit.`,
		Example: `  lanepath plan --field-width 12 --field-breadth 8 --corner tl
  lanepath plan --edge top --at 3 --gap 2 --steps
  lanepath plan --save --yaml plan.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("corner") {
				cfg.Exit.Edge = ""
			}

			g, err := cfg.Grid()
			if err != nil {
				return err
			}
			exit, err := cfg.ResolveExit(g)
			if err != nil {
				return err
			}
			a.logger.Info("grid resolved",
				"lanes_x", g.NumLanesX,
				"lanes_y", g.NumLanesY,
				"exit", exit.Point.String(),
				"edge", exit.Primary().String(),
			)

			opts := append(cfg.PlannerOptions(), planner.WithLogger(a.logger))
			p, err := planner.GenerateForGrid(g, exit, opts...)
			if err != nil {
				return fmt.Errorf("generate plan: %w", err)
			}
			doc := report.NewDocument(g, exit, p)
			doc.GapSize = cfg.Gap.Size

			if save {
				st, err := store.Open(cfg.Store.Path)
				if err != nil {
					return err
				}
				defer st.Close()

				id, err := st.SaveRun(cmd.Context(), store.NewRun(g, exit, cfg.Gap.Size, p))
				if err != nil {
					return err
				}
				doc.RunID = id
				a.logger.Info("plan saved", "run_id", id, "store", cfg.Store.Path)
			}

			out := cmd.OutOrStdout()
			if yamlOut != "" {
				if err := writeDocument(out, yamlOut, doc); err != nil {
					return err
				}
				if yamlOut == "-" {
					return nil
				}
			}

			fmt.Fprintln(out, report.Summary(doc, steps))
			if doc.RunID != "" {
				fmt.Fprintf(out, "saved run %s\n", doc.RunID)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.Float64("field-width", 0, "field extent across the lanes")
	f.Float64("field-breadth", 0, "field extent along the lanes")
	f.Float64("rover-width", 0, "working width of the rover (one lane)")
	f.Float64("rover-length", 0, "rover length (one row)")
	f.String("corner", "", "exit corner: tl, tr, bl or br")
	f.String("edge", "", "exit edge: top, bottom, left or right")
	f.Int("at", 0, "lane index along --edge")
	f.Int("gap", 0, "unsown gap length around turns, in lanes")
	f.Bool("every-sweep", false, "insert gaps on every inner sweep")
	f.BoolVar(&save, "save", false, "store the plan in the history database")
	f.StringVar(&yamlOut, "yaml", "", "write the plan as YAML to this file (- for stdout)")
	f.BoolVar(&steps, "steps", false, "list every segment in the summary")
	cmd.MarkFlagsMutuallyExclusive("corner", "edge")

	for flag, key := range map[string]string{
		"field-width":   config.KeyFieldWidth,
		"field-breadth": config.KeyFieldBreadth,
		"rover-width":   config.KeyRoverWidth,
		"rover-length":  config.KeyRoverLength,
		"corner":        config.KeyExitCorner,
		"edge":          config.KeyExitEdge,
		"at":            config.KeyExitAt,
		"gap":           config.KeyGapSize,
		"every-sweep":   config.KeyGapEverySweep,
	} {
		_ = a.v.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

// writeDocument writes doc as YAML to path, or to out when path is "-".
func writeDocument(out io.Writer, path string, doc report.Document) (err error) {
	if path == "-" {
		return report.WriteYAML(out, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return report.WriteYAML(f, doc)
}
