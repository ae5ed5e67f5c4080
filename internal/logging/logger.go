// Package logging provides the leveled, optionally colored logger used by
// every command. The printf-style facade stays small; go.uber.org/zap does
// the encoding, leveling, and the optional file tee.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/krelune/tidybatch/internal/config"
)

// Logger wraps a zap sugared logger behind printf-style level methods.
type Logger struct {
	zl   *zap.SugaredLogger
	file *os.File
}

// New builds a logger from cfg: console output to stdout with colored level
// capitals when the terminal allows it, debug level when verbose, and an
// optional plain-text tee to cfg.LogFile. Call Close when done.
func New(cfg *config.Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	if colorEnabled(cfg.ColorMode) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), level),
	}

	l := &Logger{}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		fileCfg := zap.NewDevelopmentEncoderConfig()
		fileCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.Lock(f), level))
		l.file = f
	}

	l.zl = zap.New(zapcore.NewTee(cores...)).Sugar()
	return l, nil
}

// Close flushes buffered entries and closes the log file if one was opened.
func (l *Logger) Close() error {
	_ = l.zl.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) { l.zl.Infof(format, args...) }

// Success logs a positive outcome. Same level as Info, marked in the message
// so plain log files keep the distinction.
func (l *Logger) Success(format string, args ...interface{}) { l.zl.Infof("✓ "+format, args...) }

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) { l.zl.Warnf(format, args...) }

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) { l.zl.Errorf(format, args...) }

// Debug logs at DEBUG level; suppressed unless the logger was built verbose.
func (l *Logger) Debug(format string, args ...interface{}) { l.zl.Debugf(format, args...) }

// colorEnabled resolves the color mode against TTY detection, the NO_COLOR
// env var (https://no-color.org), and TERM=dumb.
func colorEnabled(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return isTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// isTerminal reports whether f is attached to a TTY (character device).
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
