package main

import (
	"github.com/spf13/cobra"

	"github.com/krelune/tidybatch/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Diagnose the environment",
	Long: `Verifies that the pieces tidybatch depends on are in place: a POSIX
shell and the ipfs binary on PATH, the rules file parsing cleanly, and the
journal location being writable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return check.Run(&cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
