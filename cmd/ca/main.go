package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"colorca/internal/app"
	"colorca/internal/sweep"
	"colorca/internal/tui"

	"github.com/spf13/cobra"
)

func main() {
	cfg := app.NewConfig()
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "ca",
		Short:        "paint a grid and watch colors spread into empty cells",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			return cfg.Load(configFile, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML file with startup settings")
	cfg.Bind(rootCmd.PersistentFlags())

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the automaton in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			simCfg, err := cfg.SimConfig()
			if err != nil {
				return err
			}
			fps, _ := cmd.Flags().GetInt("fps")
			return tui.Run(simCfg, fps)
		},
	}
	tuiCmd.Flags().Int("fps", 30, "terminal redraws per second")

	opts := sweep.DefaultOptions()
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run many seeded random fills headlessly and tally the winners",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Rows, opts.Cols = cfg.Rows, cfg.Cols
			if cfg.Seed != 0 {
				opts.Seed = cfg.Seed
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			start := time.Now()
			results, err := sweep.Run(ctx, opts)
			if err != nil {
				return err
			}
			return sweep.WriteTable(cmd.OutOrStdout(), results, time.Since(start))
		},
	}
	sweepCmd.Flags().IntVar(&opts.Runs, "runs", opts.Runs, "number of seeded runs")
	sweepCmd.Flags().IntVar(&opts.Steps, "steps", opts.Steps, "iterations per run")
	sweepCmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "parallel runs")
	sweepCmd.Flags().BoolVar(&opts.Border, "border", opts.Border, "surround the grid with walls")

	rootCmd.AddCommand(tuiCmd, sweepCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
