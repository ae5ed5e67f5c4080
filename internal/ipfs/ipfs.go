// Package ipfs removes MFS entries and their pins from a local IPFS node.
//
// Input is the output of `ipfs files ls -l`: one entry per line, the name
// first, the CID and the cumulative size last. Names may contain spaces, so
// the parser works from the right edge of the line.
package ipfs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// Logger is the minimal logging surface the cleaner needs.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Entry is one MFS listing line: a name, the CID backing it, and its
// cumulative size in bytes.
type Entry struct {
	Name string
	CID  string
	Size int64
}

// Stats aggregates the outcome of one cleanup run.
type Stats struct {
	Removed       int
	Failed        int
	BytesReleased int64
}

// Runner executes one ipfs subcommand. The exec-backed implementation is
// used in production; tests substitute a stub.
type Runner interface {
	Run(ctx context.Context, args ...string) error
}

// ExecRunner shells out to the ipfs binary on PATH.
type ExecRunner struct {
	// Out receives combined command output; nil discards it.
	Out io.Writer
}

func (r ExecRunner) Run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "ipfs", args...)
	if r.Out != nil {
		cmd.Stdout = r.Out
		cmd.Stderr = r.Out
	}
	return cmd.Run()
}

// ParseEntry splits one `ipfs files ls -l` line into its entry. The last
// field is the size, the one before it the CID, and everything left of that
// is the name, directory slash stripped.
func ParseEntry(line string) (Entry, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, fmt.Errorf("empty listing line")
	}

	rest, sizeField, ok := cutLastField(line)
	if !ok {
		return Entry{}, fmt.Errorf("listing line %q: missing size", line)
	}
	size, err := strconv.ParseInt(sizeField, 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("listing line %q: size %q is not a number", line, sizeField)
	}

	rest, cid, ok := cutLastField(rest)
	if !ok || !isCID(cid) {
		return Entry{}, fmt.Errorf("listing line %q: missing CID", line)
	}

	name := strings.TrimSuffix(strings.TrimSpace(rest), "/")
	if name == "" {
		return Entry{}, fmt.Errorf("listing line %q: missing name", line)
	}
	return Entry{Name: name, CID: cid, Size: size}, nil
}

// ParseListing reads an entire listing, skipping blank lines.
func ParseListing(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		entry, err := ParseEntry(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, sc.Err()
}

// cutLastField splits off the whitespace-separated field at the end of s.
func cutLastField(s string) (rest, field string, ok bool) {
	s = strings.TrimRight(s, " \t")
	i := strings.LastIndexAny(s, " \t")
	if i < 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

func isCID(s string) bool {
	if len(s) < 10 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Clean removes each entry from MFS and drops its pin. A failed MFS removal
// keeps the pin so the entry stays recoverable; a failed pin removal is
// reported but the entry still counts as removed.
func Clean(ctx context.Context, entries []Entry, runner Runner, dryRun bool, log Logger) Stats {
	var stats Stats
	for _, entry := range entries {
		if ctx.Err() != nil {
			log.Warn("Interrupted, %d entries left", len(entries)-stats.Removed-stats.Failed)
			break
		}

		if dryRun {
			log.Info("[DRY] Would remove /%s and unpin %s", entry.Name, entry.CID)
			stats.Removed++
			stats.BytesReleased += entry.Size
			continue
		}

		if err := runner.Run(ctx, "files", "rm", "-r", "/"+entry.Name); err != nil {
			log.Error("files rm /%s: %v", entry.Name, err)
			stats.Failed++
			continue
		}
		if err := runner.Run(ctx, "pin", "rm", entry.CID); err != nil {
			log.Warn("pin rm %s: %v", entry.CID, err)
		}
		log.Success("Removed /%s (%s)", entry.Name, entry.CID)
		stats.Removed++
		stats.BytesReleased += entry.Size
	}
	return stats
}
