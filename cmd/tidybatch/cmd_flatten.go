package main

import (
	"github.com/spf13/cobra"

	"github.com/krelune/tidybatch/internal/config"
	"github.com/krelune/tidybatch/internal/flatten"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten <dir>",
	Short: "Hoist single-child directory nesting",
	Long: `Walks the first-level directories of the given directory and, wherever
one contains exactly one subdirectory and nothing else, moves that
subdirectory's contents up one level and removes it. Runs repeated passes
so deep chains collapse fully; existing destinations are never
overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Dir = config.NormalizeDirArg(args[0])
		if err := cfg.RequireDir(); err != nil {
			return err
		}

		stats, err := flatten.Flatten(cfg.Dir, cfg.Rolling, cfg.DryRun, log)
		if err != nil {
			return err
		}
		log.Info("%d moved, %d conflicts, %d directories removed",
			stats.Moved, stats.Conflicts, stats.RemovedDirs)
		return nil
	},
}

func init() {
	flattenCmd.Flags().IntVar(&cfg.Rolling, "rolling", cfg.Rolling, "maximum flattening passes")
	rootCmd.AddCommand(flattenCmd)
}
