package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a Logger implementation backed by Uber's zap.
type ZapLogger struct {
	mu     sync.Mutex
	logger *zap.Logger
	level  contracts.LogLevel
}

// NewZapLogger creates a production-configured zap logger.
func NewZapLogger() contracts.Logger {
	logger, _ := zap.NewProduction()
	return &ZapLogger{logger: logger, level: contracts.InfoLevel}
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, msg, fields...)
}

// Fatal logs a message at the FATAL level and terminates the application
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(zapcore.FatalLevel, msg, fields...)
	os.Exit(1)
}

// Field returns a new instance of Field
func (z *ZapLogger) Field() contracts.Field {
	return &field{}
}

// SetLevel sets the logging level
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.mu.Lock()
	z.level = level
	z.mu.Unlock()
}

// SetDestination points the logger at the console or a log file by rebuilding
// the underlying zap core. An unopenable file leaves the current core in place.
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) {
	cfg := zap.NewProductionConfig()
	if dest == contracts.FileLog && len(filePath) > 0 {
		cfg.OutputPaths = []string{filePath[0]}
		cfg.ErrorOutputPaths = []string{filePath[0]}
	}

	logger, err := cfg.Build()
	if err != nil {
		z.Error("Failed to switch log destination", z.Field().Error("error", err))
		return
	}

	z.mu.Lock()
	z.logger = logger
	z.mu.Unlock()
}

// log is the internal funnel for all messages
func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	z.mu.Lock()
	gate := z.level
	sink := z.logger
	z.mu.Unlock()

	if level < severity(gate) {
		return
	}

	// Capture the file name and line where the log call originated
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	} else {
		file = filepath.Base(file)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	formattedFields := formatFields(fields...)
	logMessage := fmt.Sprintf("%s [%s] %s:%d: %s%s", timestamp, level.String(), file, line, msg, formattedFields)

	switch level {
	case zapcore.InfoLevel:
		sink.Info(logMessage)
	case zapcore.ErrorLevel:
		sink.Error(logMessage)
	case zapcore.DebugLevel:
		sink.Debug(logMessage)
	case zapcore.WarnLevel:
		sink.Warn(logMessage)
	case zapcore.FatalLevel:
		sink.Fatal(logMessage)
	}
}

// severity maps contract levels onto zap's ordering so the gate compares
// like with like.
func severity(level contracts.LogLevel) zapcore.Level {
	switch level {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.InfoLevel:
		return zapcore.InfoLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	case contracts.FatalLevel:
		return zapcore.FatalLevel
	}
	return zapcore.InfoLevel
}

// formatFields formats additional fields
func formatFields(fields ...contracts.Field) string {
	if len(fields) == 0 {
		return ""
	}

	fieldMap := make(map[string]interface{})
	for _, f := range fields {
		impl, ok := f.(*field)
		if !ok {
			continue
		}
		if err, isErr := impl.value.(error); isErr {
			fieldMap[impl.key] = err.Error()
			continue
		}
		fieldMap[impl.key] = impl.value
	}

	if len(fieldMap) == 0 {
		return ""
	}

	jsonBytes, err := json.Marshal(fieldMap)
	if err != nil {
		return fmt.Sprintf(" [failed to format fields: %v]", err)
	}

	return " " + string(jsonBytes)
}
