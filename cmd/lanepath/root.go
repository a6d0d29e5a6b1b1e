package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lanepath"
	"github.com/katalvlaran/lanepath/config"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:     "lanepath",
		Short:   "Full-coverage lane path planner",
		Version: lanepath.Version,
		Long: `lanepath plans a route over a rectangular field split into parallel lanes.

The route visits every lane, never sows the same segment twice and ends on
the chosen exit lane. Plans can be exported as YAML and kept in a local
SQLite history.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./lanepath.yaml or ~/.lanepath/lanepath.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log every committed waypoint")
	pf.String("store", "", "plan history database (default: ~/.lanepath/history.db)")
	_ = a.v.BindPFlag(config.KeyStorePath, pf.Lookup("store"))

	root.AddCommand(a.planCmd(), a.historyCmd(), a.showCmd(), a.deleteCmd(), a.importCmd(), newVersionCmd())

	return root
}

// setup resolves configuration and the logger once flags are parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.cfg = cfg

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lanepath %s\n", lanepath.Version)
		},
	}
}
