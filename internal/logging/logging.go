// Package logging sets up the application logger. The TUI owns stdout, so
// logs go to a file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to logFile at the given level. An empty
// logFile resolves to the default state path; if the file cannot be
// opened the logger discards output rather than corrupting the TUI.
func New(level, logFile string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if logFile == "" {
		logFile, err = defaultLogPath()
		if err != nil {
			log.SetOutput(io.Discard)
			return log
		}
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(f)
	return log
}

// defaultLogPath resolves $XDG_STATE_HOME/mathsprint/mathsprint.log,
// falling back to ~/.local/state.
func defaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "mathsprint", "mathsprint.log"), nil
}
