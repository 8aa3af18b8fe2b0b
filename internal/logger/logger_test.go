package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDefaults(t *testing.T) {
	l, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}

func TestNewLevels(t *testing.T) {
	for _, level := range Levels {
		l, err := New(&Config{Level: level, Format: "json", Output: "stderr"})
		require.NoError(t, err, level)
		assert.True(t, l.Core().Enabled(zap.ErrorLevel), level)
	}
	l, err := New(&Config{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}

func TestNewInvalid(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"level", Config{Level: "loud"}},
		{"format", Config{Format: "xml"}},
		{"output", Config{Output: "stdout"}},
		{"file-without-path", Config{Output: "file"}},
		{"both-without-path", Config{Output: "both"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(&c.cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpn.log")
	l, err := New(&Config{Level: "debug", Format: "json", Output: "file", FilePath: path, MaxSize: 1})
	require.NoError(t, err)
	l.Debug("evaluated", zap.Float64("result", 512))
	require.NoError(t, l.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"evaluated"`)
	assert.Contains(t, string(b), `"result":512`)
}

func TestNewConsoleFileUncolored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpn.log")
	l, err := New(&Config{Level: "debug", Format: "console", Output: "file", FilePath: path})
	require.NoError(t, err)
	l.Debug("converted", zap.String("postfix", "2 3 +"))
	l.Error("rpn failed")
	require.NoError(t, l.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "\x1b[")
	assert.Contains(t, string(b), "\tDEBUG\t")
	assert.Contains(t, string(b), "\tERROR\t")
	assert.Contains(t, string(b), `{"postfix": "2 3 +"}`)
}

func TestL(t *testing.T) {
	l := L()
	require.NotNil(t, l)
	assert.Same(t, l, L())
}
