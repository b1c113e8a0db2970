package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// StandardLogger is a Logger implementation on the standard library's log
// package, for callers that do not want structured JSON output.
type StandardLogger struct {
	mu    sync.Mutex
	out   *log.Logger
	file  *os.File
	level contracts.LogLevel
}

// NewStandardLogger creates a logger that writes plain text lines to stderr.
func NewStandardLogger() contracts.Logger {
	return &StandardLogger{out: log.New(os.Stderr, "", 0), level: contracts.InfoLevel}
}

// Info logs a message at the INFO level
func (s *StandardLogger) Info(msg string, fields ...contracts.Field) {
	s.log(contracts.InfoLevel, "INFO", msg, fields...)
}

// Error logs a message at the ERROR level
func (s *StandardLogger) Error(msg string, fields ...contracts.Field) {
	s.log(contracts.ErrorLevel, "ERROR", msg, fields...)
}

// Debug logs a message at the DEBUG level
func (s *StandardLogger) Debug(msg string, fields ...contracts.Field) {
	s.log(contracts.DebugLevel, "DEBUG", msg, fields...)
}

// Warn logs a message at the WARN level
func (s *StandardLogger) Warn(msg string, fields ...contracts.Field) {
	s.log(contracts.WarnLevel, "WARN", msg, fields...)
}

// Fatal logs a message at the FATAL level and terminates the application
func (s *StandardLogger) Fatal(msg string, fields ...contracts.Field) {
	s.log(contracts.FatalLevel, "FATAL", msg, fields...)
	os.Exit(1)
}

// Field returns a new instance of Field
func (s *StandardLogger) Field() contracts.Field {
	return &field{}
}

// SetLevel sets the logging level
func (s *StandardLogger) SetLevel(level contracts.LogLevel) {
	s.mu.Lock()
	s.level = level
	s.mu.Unlock()
}

// SetDestination swaps the output between stderr and a log file. The previous
// file, if any, is closed after the swap.
func (s *StandardLogger) SetDestination(dest contracts.LogDestination, filePath ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dest == contracts.FileLog && len(filePath) > 0 {
		f, err := os.OpenFile(filePath[0], os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			s.out.Printf("failed to open log file %s: %v", filePath[0], err)
			return
		}
		if s.file != nil {
			s.file.Close()
		}
		s.file = f
		s.out = log.New(f, "", 0)
		return
	}

	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	s.out = log.New(os.Stderr, "", 0)
}

// log is the internal funnel for all messages
func (s *StandardLogger) log(level contracts.LogLevel, tag, msg string, fields ...contracts.Field) {
	s.mu.Lock()
	gate := s.level
	sink := s.out
	s.mu.Unlock()

	if severity(level) < severity(gate) {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	} else {
		file = filepath.Base(file)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	sink.Print(fmt.Sprintf("%s [%s] %s:%d: %s%s", timestamp, tag, file, line, msg, formatFields(fields...)))
}
