package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			log, err := New(level, "stderr")
			require.NoError(t, err)

			want, _ := zapcore.ParseLevel(level)
			assert.True(t, log.Core().Enabled(want))
			if want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(want-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "stderr")
	assert.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resize.log")

	log, err := New("info", path)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("Image written", zap.String("destination", "/out/a.png"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Image written"`)
	assert.Contains(t, string(data), `"destination":"/out/a.png"`)
	assert.NotContains(t, string(data), "hidden")
}
