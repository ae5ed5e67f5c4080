// tidybatch is a batch hygiene tool for media collections: it normalizes
// messy release names, flattens pointless directory nesting, replays shell
// command queues, and cleans up IPFS pins.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/krelune/tidybatch/internal/config"
	"github.com/krelune/tidybatch/internal/display"
	"github.com/krelune/tidybatch/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// cfg is initialized at declaration so the flag defaults registered by the
// subcommand init functions see the real defaults.
var (
	cfg = config.Default()
	log *logging.Logger

	noColor bool
)

var rootCmd = &cobra.Command{
	Use:     "tidybatch",
	Short:   "Batch hygiene for media collections",
	Version: version,
	Long: `tidybatch keeps messy download collections in shape.

It normalizes release names (bracket repair, keyword re-tagging, version
markers), hoists single-child directory nesting, replays shell command
queues with retries, and clears stale IPFS pins. Every destructive
subcommand honors --dry-run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			cfg.ColorMode = config.ColorNever
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		var err error
		log, err = logging.New(&cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Close()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "report what would happen without touching anything")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug output")
	pf.StringVar((*string)(&cfg.ColorMode), "color", string(config.ColorAuto), "colorize output: auto, always or never")
	pf.BoolVar(&noColor, "no-color", false, "shorthand for --color=never")
	pf.StringVar(&cfg.LogFile, "log", "", "also append output to this file")
	pf.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "rename journal database ('' disables recording)")
	pf.StringVar(&cfg.RulesFile, "rules", "", "YAML file overriding the built-in keyword tables")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	display.PrintBanner()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if log != nil {
			log.Error("%v", err)
			_ = log.Close()
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
