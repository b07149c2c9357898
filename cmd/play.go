package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/app"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/screens/play"
)

var (
	playType string
	playTime int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		gt := problem.GameType(playType)
		if !gt.Valid() {
			return fmt.Errorf("unknown game type %q (one of: addition, subtraction, multiplication, division, mixed)", playType)
		}

		return runApp(cmd, func(opts app.Options) screen.Screen {
			cfg := opts.Cfg
			if playTime > 0 {
				cfg.TimeLimitSeconds = playTime
			}
			return play.New(gt, opts.Repo, cfg, opts.Log)
		})
	},
}

func init() {
	playCmd.Flags().StringVarP(&playType, "type", "t", "mixed", "Game type to play")
	playCmd.Flags().IntVar(&playTime, "time", 0, "Session length in seconds (overrides config)")
}
