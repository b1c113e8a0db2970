package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	log := NewStandardLogger()
	log.SetDestination(contracts.FileLog, path)
	log.Info("File written", log.Field().String("path", "out.mid"), log.Field().Int("bytes", 42))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO]")
	assert.Contains(t, string(data), "File written")
	assert.Contains(t, string(data), `"path":"out.mid"`)
	assert.Contains(t, string(data), `"bytes":42`)
}

func TestStandardLoggerGatesBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	log := NewStandardLogger()
	log.SetDestination(contracts.FileLog, path)
	log.SetLevel(contracts.ErrorLevel)

	log.Debug("hidden debug")
	log.Info("hidden info")
	log.Warn("hidden warn")
	log.Error("visible error")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible error")
}

func TestFormatFieldsRendersErrors(t *testing.T) {
	f := &field{}
	out := formatFields(f.Error("error", errors.New("sink closed")))
	assert.Contains(t, out, `"error":"sink closed"`)
}
