package main

import (
	"fmt"
	"os"

	"go-bptree/config"
	"go-bptree/services"
	"go-bptree/util/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(config.New()).Execute(); err != nil {
		logger.L.Error(err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.AppConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bptree",
		Short: "In-memory B+ tree benchmark and inspection tool",
		Long: `Runs the B+ tree ordered map against a red-black tree map and a
classic B-tree, or prints the node structure of small trees.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare insert, get and delete timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newServices(cfg)
			if err != nil {
				return err
			}
			results, err := s.BenchService.Run(cfg.BenchConfig)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %14s %14s %14s\n", "target", "insert", "get", "delete")
			for _, r := range results {
				fmt.Fprintf(out, "%-8s %14s %14s %14s\n", r.Name, r.Insert, r.Get, r.Delete)
			}
			return nil
		},
	}
	bc := cfg.BenchConfig
	benchCmd.Flags().IntVar(&bc.Count, "count", bc.Count, "Number of keys to insert")
	benchCmd.Flags().IntVar(&bc.Keep, "keep", bc.Keep, "Number of keys left after deletion")
	benchCmd.Flags().IntVar(&bc.Order, "order", bc.Order, "B+ tree order")
	benchCmd.Flags().Int64Var(&bc.Seed, "seed", bc.Seed, "Shuffle seed")

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the node structure of a tree holding 1..count",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newServices(cfg)
			if err != nil {
				return err
			}
			tree, err := s.InspectService.Build(cfg.PrintConfig)
			if err != nil {
				return err
			}
			return s.InspectService.Render(cmd.OutOrStdout(), tree)
		},
	}
	pc := cfg.PrintConfig
	printCmd.Flags().IntVar(&pc.Order, "order", pc.Order, "B+ tree order")
	printCmd.Flags().IntVar(&pc.Count, "count", pc.Count, "Insert keys 1..count")
	printCmd.Flags().IntSliceVar(&pc.Del, "del", pc.Del, "Keys to delete after inserting")

	rootCmd.AddCommand(benchCmd, printCmd)
	return rootCmd
}

func newServices(cfg *config.AppConfig) (*services.Services, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return services.New(log), nil
}
