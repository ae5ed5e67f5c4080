// Package cmdqueue executes a list of shell commands sequentially, streaming
// their output and retrying failures a bounded number of times.
package cmdqueue

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
)

// Logger is the minimal logging surface the queue needs.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Stats aggregates the outcome of one queue run.
type Stats struct {
	Total     int
	Succeeded int
	Failed    int
}

// ExecResult holds the outcome of a single command invocation.
type ExecResult struct {
	Tail string // Last lines of combined output, for failure diagnostics.
	Err  error
}

const tailLines = 20

// Exec runs one command through the shell, streaming combined output to out
// while capturing it for the failure tail.
func Exec(ctx context.Context, command string, out io.Writer) ExecResult {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)

	var buf bytes.Buffer
	w := io.MultiWriter(&buf, out)
	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	return ExecResult{Tail: tail(buf.String()), Err: err}
}

// tail returns the last tailLines lines of s.
func tail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > tailLines {
		lines = lines[len(lines)-tailLines:]
	}
	return strings.Join(lines, "\n")
}

// ReadCommands collects one command per line from r, skipping blanks.
func ReadCommands(r io.Reader) ([]string, error) {
	var commands []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		commands = append(commands, line)
	}
	return commands, sc.Err()
}

// Run executes every command in order. A failing command is retried up to
// retries more times before the queue moves on; cancellation stops the whole
// run between attempts. Output streams to out as the commands produce it.
func Run(ctx context.Context, commands []string, retries int, out io.Writer, log Logger) Stats {
	stats := Stats{Total: len(commands)}

	for i, command := range commands {
		if ctx.Err() != nil {
			log.Warn("Interrupted, %d commands not run", len(commands)-i)
			stats.Failed += len(commands) - i
			break
		}

		log.Info("[%d/%d] %s", i+1, len(commands), command)
		if runOne(ctx, command, retries, out, log) {
			stats.Succeeded++
		} else {
			log.Error("Giving up on %q after %d attempts", command, retries+1)
			stats.Failed++
		}
	}
	return stats
}

func runOne(ctx context.Context, command string, retries int, out io.Writer, log Logger) bool {
	for attempt := 0; attempt <= retries; attempt++ {
		if ctx.Err() != nil {
			return false
		}
		if attempt > 0 {
			log.Warn("Retrying %q (attempt %d/%d)", command, attempt, retries)
		}

		result := Exec(ctx, command, out)
		if result.Err == nil {
			log.Success("%q exited cleanly", command)
			return true
		}

		log.Warn("%q failed: %v", command, result.Err)
		if result.Tail != "" {
			for _, line := range strings.Split(result.Tail, "\n") {
				log.Warn("  %s", line)
			}
		}
	}
	return false
}
