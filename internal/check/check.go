// Package check runs environment diagnostics before real work: required
// binaries on PATH, the rules file parsing cleanly, and the journal location
// being writable.
package check

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/krelune/tidybatch/internal/config"
)

var (
	// ErrShellMissing means no sh binary was found; the queue cannot run.
	ErrShellMissing = errors.New("sh not found on PATH")

	// ErrIPFSMissing means no ipfs binary was found; pinrm cannot run.
	ErrIPFSMissing = errors.New("ipfs not found on PATH")
)

// Logger is the minimal logging surface the checks need.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Run performs every diagnostic and reports the result per check. The
// returned error is non-nil when any hard check failed; ipfs is advisory
// because only one subcommand needs it.
func Run(cfg *config.Config, log Logger) error {
	failed := false

	if err := Shell(); err != nil {
		log.Error("%v", err)
		failed = true
	} else {
		log.Success("sh available")
	}

	if err := IPFS(); err != nil {
		log.Warn("%v (only needed for pinrm)", err)
	} else {
		log.Success("ipfs available")
	}

	if cfg.RulesFile == "" {
		log.Info("No rules file configured, using built-in tables")
	} else if err := RulesFile(cfg.RulesFile); err != nil {
		log.Error("%v", err)
		failed = true
	} else {
		log.Success("Rules file %s parses", cfg.RulesFile)
	}

	if cfg.JournalPath == "" {
		log.Info("Journal disabled")
	} else if err := JournalPath(cfg.JournalPath); err != nil {
		log.Error("%v", err)
		failed = true
	} else {
		log.Success("Journal location %s writable", cfg.JournalPath)
	}

	if failed {
		return errors.New("environment check failed")
	}
	return nil
}

// Shell verifies that a POSIX shell is available.
func Shell() error {
	if _, err := exec.LookPath("sh"); err != nil {
		return ErrShellMissing
	}
	return nil
}

// IPFS verifies that the ipfs binary is available.
func IPFS() error {
	if _, err := exec.LookPath("ipfs"); err != nil {
		return ErrIPFSMissing
	}
	return nil
}

// RulesFile verifies that the rules file at path loads.
func RulesFile(path string) error {
	_, err := config.LoadRules(path)
	return err
}

// JournalPath verifies that the journal's directory exists or can be
// created, and is writable.
func JournalPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("journal directory: %w", err)
	}
	probe, err := os.CreateTemp(dir, ".tidybatch-check-*")
	if err != nil {
		return fmt.Errorf("journal directory %s not writable: %w", dir, err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
