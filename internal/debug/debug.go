package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "TUISTACK_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	checked bool
)

// Enabled reports whether debug logging is turned on.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	openFromEnvLocked()
	return logFile != nil
}

// Init opens path for logging, replacing any log opened before.
// An empty path turns logging off.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	checked = true
	closeLocked()
	if path == "" {
		return nil
	}
	return openLocked(path)
}

func openFromEnvLocked() {
	if checked {
		return
	}
	checked = true
	if path := os.Getenv(EnvVar); path != "" {
		// A bad path leaves logging disabled.
		_ = openLocked(path)
	}
}

// openLocked does the actual open. Caller must hold mu.
func openLocked(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	logFile = f
	return nil
}

// Close closes the debug log file. Later calls to Log are dropped until Init
// is called again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	checked = true
	return closeLocked()
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Log writes a timestamped line to the debug log. It does nothing when
// logging is disabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	openFromEnvLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}
