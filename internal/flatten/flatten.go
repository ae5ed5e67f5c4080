// Package flatten collapses needless single-child directory nesting: a
// first-level directory that contains exactly one subdirectory and nothing
// else gets that subdirectory's contents hoisted up one level.
package flatten

import (
	"fmt"
	"os"
	"path/filepath"
)

// Logger is the minimal logging surface the flattener needs. Satisfied by
// *logging.Logger; tests substitute a recorder.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Stats aggregates what a Flatten run did.
type Stats struct {
	Moved       int // Items hoisted one level up.
	Conflicts   int // Items skipped because the destination already existed.
	RemovedDirs int // Emptied single-child directories removed.
}

// Flatten runs up to passes rounds over the first-level directories of root.
// Only the single-child case acts: a directory holding files, or more than
// one subdirectory, is left alone. Conflicting destinations are reported and
// skipped, never overwritten. Passes stop early once a round changes
// nothing; deep chains need one pass per level, which is why the caller
// picks the pass count.
func Flatten(root string, passes int, dryRun bool, log Logger) (Stats, error) {
	var stats Stats
	for i := 0; i < passes; i++ {
		changed, err := flattenPass(root, dryRun, log, &stats)
		if err != nil {
			return stats, err
		}
		if !changed {
			break
		}
		if dryRun {
			// Nothing actually moved, so another pass would report the same
			// hoists forever.
			break
		}
	}
	return stats, nil
}

func flattenPass(root string, dryRun bool, log Logger, stats *Stats) (bool, error) {
	items, err := os.ReadDir(root)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", root, err)
	}

	changed := false
	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		did, err := flattenDir(filepath.Join(root, item.Name()), dryRun, log, stats)
		if err != nil {
			return changed, err
		}
		changed = changed || did
	}
	return changed, nil
}

// flattenDir applies the single-child rule to one first-level directory.
func flattenDir(dir string, dryRun bool, log Logger, stats *Stats) (bool, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", dir, err)
	}

	var onlyDir string
	for _, item := range items {
		if !item.IsDir() {
			return false, nil // Holds files; leave alone.
		}
		if onlyDir != "" {
			return false, nil // More than one subdirectory; leave alone.
		}
		onlyDir = item.Name()
	}
	if onlyDir == "" {
		return false, nil // Empty; nothing to hoist.
	}

	child := filepath.Join(dir, onlyDir)
	children, err := os.ReadDir(child)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", child, err)
	}

	moved := 0
	for _, item := range children {
		src := filepath.Join(child, item.Name())
		dst := filepath.Join(dir, item.Name())
		if _, err := os.Lstat(dst); err == nil {
			log.Warn("Conflict: %s already exists, keeping %s in place", dst, src)
			stats.Conflicts++
			continue
		}
		if dryRun {
			log.Info("[DRY] Would move %s -> %s", src, dst)
			stats.Moved++
			moved++
			continue
		}
		if err := os.Rename(src, dst); err != nil {
			log.Error("Move %s: %v", src, err)
			continue
		}
		log.Debug("Moved %s -> %s", src, dst)
		stats.Moved++
		moved++
	}

	if dryRun {
		return moved > 0, nil
	}

	// Remove the child only once it is empty; a conflict leaves it behind.
	if err := os.Remove(child); err == nil {
		stats.RemovedDirs++
		log.Debug("Removed %s", child)
	}
	return moved > 0, nil
}
