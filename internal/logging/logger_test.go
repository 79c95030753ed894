package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/bakesmith/internal/config"
)

func newTestLogger(t *testing.T, cfg config.Config) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	var out, errOut bytes.Buffer
	l.SetOutput(&out, &errOut)
	return l, &out, &errOut
}

func TestNewLogger_NoFile(t *testing.T) {
	l, out, _ := newTestLogger(t, config.DefaultConfig())
	l.Info("test message")
	assert.Contains(t, out.String(), "[INFO] test message")
	assert.Empty(t, l.FilePath())
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "nested", "bakesmith.log")
	l, _, _ := newTestLogger(t, cfg)
	assert.Equal(t, cfg.LogFile, l.FilePath())

	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
}

func TestLevels(t *testing.T) {
	l, out, errOut := newTestLogger(t, config.DefaultConfig())

	l.Success("ok %d", 1)
	l.Warn("careful")
	l.Bake("swap %s", "rock")
	l.Issue("rock: no_low_objects")
	l.Error("broken")

	assert.Contains(t, out.String(), "[SUCCESS] ok 1")
	assert.Contains(t, out.String(), "[WARN] careful")
	assert.Contains(t, out.String(), "[BAKE] swap rock")
	assert.Contains(t, out.String(), "[ISSUE] rock: no_low_objects")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errOut.String(), "[ERROR] broken")
}

func TestDebug_RespectsVerbose(t *testing.T) {
	l, out, _ := newTestLogger(t, config.DefaultConfig())

	l.Debug(false, "hidden")
	assert.Empty(t, out.String())

	l.Debug(true, "shown")
	assert.Contains(t, out.String(), "[DEBUG] shown")
}

func TestClose_Idempotent(t *testing.T) {
	l, _, _ := newTestLogger(t, config.DefaultConfig())
	assert.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}
