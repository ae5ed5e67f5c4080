package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/krelune/tidybatch/internal/journal"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently applied renames",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := openJournal()
		if err != nil {
			return err
		}
		defer j.Close()

		entries, err := j.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			log.Info("Journal is empty")
			return nil
		}
		for _, e := range entries {
			log.Info("%s  %s: %q -> %q",
				e.AppliedAt.Format("2006-01-02 15:04:05"), e.Dir, e.OldName, e.NewName)
		}
		return nil
	},
}

var undoLast int

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the most recent renames",
	Long: `Reverses up to --last journal entries, newest first, renaming each file
or directory back to its recorded old name. Stops at the first entry that
cannot be reverted; everything already undone stays undone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := openJournal()
		if err != nil {
			return err
		}
		defer j.Close()

		if cfg.DryRun {
			entries, err := j.Recent(undoLast)
			if err != nil {
				return err
			}
			for _, e := range entries {
				log.Info("[DRY] %s: %q -> %q", e.Dir, e.NewName, e.OldName)
			}
			return nil
		}

		undone, err := j.Undo(undoLast, func(dir, from, to string) error {
			if err := os.Rename(filepath.Join(dir, from), filepath.Join(dir, to)); err != nil {
				return err
			}
			log.Success("%s -> %s", from, to)
			return nil
		})
		if err != nil {
			log.Info("%d renames reverted before the failure", undone)
			return err
		}
		log.Info("%d renames reverted", undone)
		return nil
	},
}

func openJournal() (*journal.Journal, error) {
	if cfg.JournalPath == "" {
		return nil, errors.New("journal disabled (--journal '')")
	}
	return journal.Open(cfg.JournalPath)
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to list")
	undoCmd.Flags().IntVar(&undoLast, "last", 1, "number of renames to revert")
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(undoCmd)
}
