// Package logger writes the application log to a size-rotated file under the
// config directory. Output reaches stderr only in debug mode; the TUI owns
// the terminal otherwise.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/streaks/internal/constants"
)

// Logger is nil until Init; the helpers below are no-ops before that
var Logger *log.Logger

var logPath string

type Config struct {
	Debug     bool
	ConfigDir string
	// Owner is attached to every record when set
	Owner string
}

func Init(cfg Config) error {
	dir := filepath.Join(cfg.ConfigDir, constants.LogDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logPath = filepath.Join(dir, constants.LogFileName)

	rotating := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}

	var out io.Writer = rotating
	level := log.WarnLevel
	if cfg.Debug {
		out = io.MultiWriter(os.Stderr, rotating)
		level = log.DebugLevel
	}

	l := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          constants.AppName,
		ReportTimestamp: true,
		ReportCaller:    cfg.Debug,
	})
	if cfg.Owner != "" {
		l = l.With("owner", cfg.Owner)
	}
	Logger = l
	return nil
}

// Path returns the active log file, or "" before Init
func Path() string {
	return logPath
}

func Debug(msg string, keyvals ...any) { write(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...any)  { write(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...any)  { write(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...any) { write(log.ErrorLevel, msg, keyvals) }

func write(level log.Level, msg string, keyvals []any) {
	if Logger == nil {
		return
	}
	Logger.Log(level, msg, keyvals...)
}
