// Package debug provides optional file-based debug logging.
//
// When the TRELLIS_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	checked bool
)

// Log writes a message to the debug log with a timestamp.
// A no-op unless TRELLIS_DEBUG names a writable file path.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !checked {
		checked = true
		if path := os.Getenv("TRELLIS_DEBUG"); path != "" {
			logFile, _ = open(path)
		}
	}
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	logFile.Sync()
}

// Close closes the debug log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	checked = false
	return err
}

func open(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return f, nil
}
