package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	Logger  = newLogger(io.Discard)
	logFile *os.File
	mu      sync.Mutex
)

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "[notes] ", log.LstdFlags|log.Lshortfile)
}

// Initialize points Logger at logPath, creating its directory. With echo
// set, lines are also written to stderr. Until Initialize succeeds, log
// output is discarded.
func Initialize(logPath string, echo bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f

	var w io.Writer = f
	if echo {
		w = io.MultiWriter(f, os.Stderr)
	}
	Logger = newLogger(w)
	return nil
}

// Close closes the log file and discards further output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Logger = newLogger(io.Discard)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
