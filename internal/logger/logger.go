package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the diagnostics file, relative to the working directory
// (project root when run via go run ./cmd/manimation).
const LogFilePath = "logs/manimation.txt"

// Logger records one-line diagnostics (mass changes, quality switches,
// camera speed) in memory, appends them to a file, and echoes them to
// stdout the way a console report would.
type Logger struct {
	mu    sync.Mutex
	lines []string
}

// New returns a new Logger and ensures the logs directory exists.
func New() *Logger {
	dir := filepath.Dir(LogFilePath)
	_ = os.MkdirAll(dir, 0755)
	return &Logger{lines: make([]string, 0)}
}

// Log records one diagnostic line. Each file entry is prefixed with a
// [timestamp]; the stdout echo is bare.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	fmt.Println(line)

	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and records one diagnostic line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
