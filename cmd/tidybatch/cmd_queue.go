package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krelune/tidybatch/internal/cmdqueue"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Run a list of shell commands with retries",
	Long: `Reads one shell command per line from --file (or stdin) and executes them
in order through sh. A failing command is retried up to --retries times
before the queue moves on; output streams through as the commands run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := os.Stdin
		if cfg.CommandFile != "" {
			f, err := os.Open(cfg.CommandFile)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		commands, err := cmdqueue.ReadCommands(in)
		if err != nil {
			return err
		}
		if len(commands) == 0 {
			log.Warn("No commands to run")
			return nil
		}
		if cfg.DryRun {
			for _, command := range commands {
				log.Info("[DRY] %s", command)
			}
			return nil
		}

		stats := cmdqueue.Run(cmd.Context(), commands, cfg.Retries, os.Stdout, log)
		log.Info("%d commands: %d succeeded, %d failed", stats.Total, stats.Succeeded, stats.Failed)
		if stats.Failed > 0 {
			return fmt.Errorf("%d of %d commands failed", stats.Failed, stats.Total)
		}
		return nil
	},
}

func init() {
	queueCmd.Flags().StringVarP(&cfg.CommandFile, "file", "f", "", "commands file (default: stdin)")
	queueCmd.Flags().IntVarP(&cfg.Retries, "retries", "r", cfg.Retries, "retries per failing command")
	rootCmd.AddCommand(queueCmd)
}
