package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/app"
	"github.com/abhisek/mathsprint/internal/config"
	"github.com/abhisek/mathsprint/internal/logging"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathsprint",
	Short: "Timed arithmetic practice in your terminal",
	Long:  "MathSprint — beat the clock solving arithmetic problems that get harder as your score climbs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHSPRINT_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// runApp opens the store, builds dependencies, and launches the TUI.
// startScreen, when non-nil, is pushed on top of the home screen.
func runApp(cmd *cobra.Command, startScreen func(opts app.Options) screen.Screen) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFile)

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Repo: st.Sessions(),
		Cfg:  cfg,
		Log:  log,
	}
	if startScreen != nil {
		opts.StartScreen = startScreen(opts)
	}

	return app.Run(opts)
}
