package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/config"
	"github.com/abhisek/mathsprint/internal/history"
	"github.com/abhisek/mathsprint/internal/logging"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/store"
)

var (
	statsType  string
	statsRange string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print play statistics without launching the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		records, err := st.Sessions().ListSessions(context.Background(), store.HistoryFilter{})
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		f := history.Filter{
			GameType: statsType,
			Range:    history.TimeRange(statsRange),
			Now:      time.Now(),
		}
		stats := history.Summarize(records, f)

		fmt.Printf("Games played:     %d\n", stats.TotalGames)
		fmt.Printf("Average score:    %d\n", stats.AverageScore)
		fmt.Printf("Highest score:    %d\n", stats.HighestScore)
		fmt.Printf("Total time:       %dm %ds\n",
			stats.TotalTimePlayed/60, stats.TotalTimePlayed%60)

		if len(stats.GamesByType) > 0 {
			fmt.Println("\nBy game type:")
			types := make([]string, 0, len(stats.GamesByType))
			for gt := range stats.GamesByType {
				types = append(types, gt)
			}
			sort.Strings(types)
			for _, gt := range types {
				fmt.Printf("  %-16s %d\n", problem.GameType(gt).DisplayName(), stats.GamesByType[gt])
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsType, "type", "all", "Filter by game type")
	statsCmd.Flags().StringVar(&statsRange, "range", "all", "Time range (week, month, year, all)")
}
