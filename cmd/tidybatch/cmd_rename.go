package main

import (
	"github.com/spf13/cobra"

	"github.com/krelune/tidybatch/internal/config"
	"github.com/krelune/tidybatch/internal/journal"
	"github.com/krelune/tidybatch/internal/namefix"
	"github.com/krelune/tidybatch/internal/pipeline"
)

var renameCmd = &cobra.Command{
	Use:   "rename <dir>",
	Short: "Normalize the names of a directory's entries",
	Long: `Normalizes every first-level entry of the given directory: CJK bracket
glyphs become ASCII, known release keywords are re-tagged into square
brackets and moved to the end, bare version markers (v2..v4) are wrapped,
and whitespace runs collapse. Names with unbalanced brackets are reported
and left alone.

Applied renames are recorded in the journal; see 'tidybatch history' and
'tidybatch undo'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Dir = config.NormalizeDirArg(args[0])
		if err := cfg.RequireDir(); err != nil {
			return err
		}

		rules, err := config.LoadRules(cfg.RulesFile)
		if err != nil {
			return err
		}
		norm := namefix.New(rules)
		if cfg.Verbose {
			norm.Trace = func(stage, before, after string) {
				log.Debug("%s: %q -> %q", stage, before, after)
			}
		}

		var rec pipeline.Recorder
		if cfg.JournalPath != "" && !cfg.DryRun {
			j, err := journal.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer j.Close()
			rec = j
		}

		_, err = pipeline.Run(cmd.Context(), &cfg, norm, rec, log)
		return err
	},
}

func init() {
	renameCmd.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "parallel name planning workers")
	rootCmd.AddCommand(renameCmd)
}
