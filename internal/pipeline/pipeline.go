// Package pipeline drives the batch rename: discover the first-level entries
// of a directory, plan each one's normalized name in parallel, then apply the
// renames sequentially so destination conflicts stay detectable.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/krelune/tidybatch/internal/config"
	"github.com/krelune/tidybatch/internal/namefix"
)

// Logger is the minimal logging surface the pipeline needs.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Recorder persists an applied rename. Satisfied by *journal.Journal; nil
// disables recording.
type Recorder interface {
	Record(dir, oldName, newName string) error
}

// Entry is one first-level directory listing item.
type Entry struct {
	Name  string
	IsDir bool
}

// plan is the planning result for one entry.
type plan struct {
	entry  Entry
	target string
	err    error
}

// RunStats aggregates one batch run.
type RunStats struct {
	Total     int
	Renamed   int
	Unchanged int
	Skipped   int // Destination conflicts.
	Failed    int // Rejected names and filesystem errors.
}

func (s RunStats) String() string {
	return fmt.Sprintf("%d entries: %d renamed, %d unchanged, %d skipped, %d failed",
		s.Total, s.Renamed, s.Unchanged, s.Skipped, s.Failed)
}

// Discover lists the first-level entries of dir, dotfiles excluded, sorted
// by name. Only the first level is processed: renaming a directory and its
// contents in one run would invalidate the deeper paths mid-flight.
func Discover(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var entries []Entry
	for _, item := range items {
		if strings.HasPrefix(item.Name(), ".") {
			continue
		}
		entries = append(entries, Entry{Name: item.Name(), IsDir: item.IsDir()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Run normalizes every first-level entry of cfg.Dir. Planning runs on
// cfg.Workers goroutines; application is sequential and in listing order so
// results are deterministic. A rejected name fails that entry only, the
// batch keeps going.
func Run(ctx context.Context, cfg *config.Config, norm *namefix.Normalizer, rec Recorder, log Logger) (RunStats, error) {
	entries, err := Discover(cfg.Dir)
	if err != nil {
		return RunStats{}, err
	}

	plans := planAll(ctx, entries, norm, cfg.Workers)
	if err := ctx.Err(); err != nil {
		return RunStats{}, err
	}

	stats := apply(cfg, plans, rec, log)
	log.Info("%s", stats)
	return stats, nil
}

// planAll computes targets concurrently. Each goroutine writes only its own
// slot, so no locking is needed; order is preserved by index.
func planAll(ctx context.Context, entries []Entry, norm *namefix.Normalizer, workers int) []plan {
	plans := make([]plan, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var target string
			var err error
			if entry.IsDir {
				target, err = norm.Name(entry.Name)
			} else {
				target, err = norm.Filename(entry.Name)
			}
			plans[i] = plan{entry: entry, target: target, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return plans
}

// apply walks the plans in order, renaming on disk. Destinations are claimed
// as they are assigned so two sources normalizing to the same name collide
// deterministically, dry-run included.
func apply(cfg *config.Config, plans []plan, rec Recorder, log Logger) RunStats {
	stats := RunStats{Total: len(plans)}
	claimed := make(map[string]string, len(plans))

	for _, p := range plans {
		name := p.entry.Name

		if p.err != nil {
			var derr *namefix.DelimiterError
			if errors.As(p.err, &derr) {
				log.Error("%v", derr)
			} else {
				log.Error("%s: %v", name, p.err)
			}
			stats.Failed++
			continue
		}

		if p.target == name {
			log.Debug("Unchanged: %s", name)
			stats.Unchanged++
			continue
		}

		if prev, ok := claimed[p.target]; ok {
			log.Warn("Skipping %s: %s already renames to %q", name, prev, p.target)
			stats.Skipped++
			continue
		}

		src := filepath.Join(cfg.Dir, name)
		dst := filepath.Join(cfg.Dir, p.target)
		if _, err := os.Lstat(dst); err == nil {
			log.Warn("Skipping %s: %q already exists", name, p.target)
			stats.Skipped++
			continue
		}
		claimed[p.target] = name

		if cfg.DryRun {
			log.Info("[DRY] %s -> %s", name, p.target)
			stats.Renamed++
			continue
		}

		if err := os.Rename(src, dst); err != nil {
			log.Error("Rename %s: %v", name, err)
			stats.Failed++
			continue
		}
		log.Success("%s -> %s", name, p.target)
		stats.Renamed++

		if rec != nil {
			if err := rec.Record(cfg.Dir, name, p.target); err != nil {
				log.Warn("Journal: %v", err)
			}
		}
	}
	return stats
}
