package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/showorder/logging"
)

func TestNew_Levels(t *testing.T) {
	l, err := logging.New(logging.Options{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = logging.New(logging.Options{Debug: true, Development: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_WritesJSONToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showorder.log")

	l, err := logging.New(logging.Options{OutputPaths: []string{path}})
	require.NoError(t, err)
	l.Info("setlists generated", zap.Int("count", 3))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"msg":"setlists generated"`)
	assert.Contains(t, line, `"count":3`)
}

func TestNop(t *testing.T) {
	assert.False(t, logging.Nop().Core().Enabled(zapcore.ErrorLevel))
}
