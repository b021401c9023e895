package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abaqira/guidebook/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "abaqira.log")
	cfg := &config.Config{Env: "production", Log: config.Log{File: file, Level: "info"}}

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"run_id"`)
}

func TestNewRespectsLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "abaqira.log")
	cfg := &config.Config{Log: config.Log{File: file, Level: "warn"}}

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(&config.Config{Log: config.Log{File: filepath.Join(t.TempDir(), "x.log"), Level: "loudest"}})
	assert.Error(t, err)
}

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(&config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
