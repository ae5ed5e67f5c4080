package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krelune/tidybatch/internal/check"
	"github.com/krelune/tidybatch/internal/display"
	"github.com/krelune/tidybatch/internal/ipfs"
)

var pinrmCmd = &cobra.Command{
	Use:   "pinrm",
	Short: "Remove IPFS MFS entries and their pins",
	Long: `Reads 'ipfs files ls -l' output from stdin and, for each listed entry,
removes it from MFS and drops its pin. Feed it a filtered listing:

    ipfs files ls -l | grep pattern | tidybatch pinrm`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := check.IPFS(); err != nil && !cfg.DryRun {
			return err
		}

		entries, err := ipfs.ParseListing(os.Stdin)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			log.Warn("No entries to remove")
			return nil
		}

		runner := ipfs.ExecRunner{Out: os.Stdout}
		stats := ipfs.Clean(cmd.Context(), entries, runner, cfg.DryRun, log)
		log.Info("%d removed, %d failed, %s released",
			stats.Removed, stats.Failed, display.FormatBytes(stats.BytesReleased))
		if stats.Failed > 0 {
			return fmt.Errorf("%d entries could not be removed", stats.Failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pinrmCmd)
}
