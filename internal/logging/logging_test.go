package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(DefaultConfig(), &buf)
	require.NoError(t, err)

	logger.Info("retrieving page", zap.String("page", "France"))
	logger.Debug("hidden at info level")
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "retrieving page", entry["message"])
	require.Equal(t, "France", entry["page"])
}

func TestNewLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		wantErr bool
		wantLog bool
	}{
		{name: "empty defaults to info", level: "", wantLog: true},
		{name: "warn drops info", level: "warn", wantLog: false},
		{name: "debug keeps info", level: "debug", wantLog: true},
		{name: "unknown level", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger, err := New(Config{Level: tt.level}, &buf)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			logger.Info("hello")
			require.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestDevelopmentUsesConsoleEncoder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Development: true}, &buf)
	require.NoError(t, err)

	logger.Debug("walking rows")
	require.Contains(t, buf.String(), "DEBUG")
	require.Contains(t, buf.String(), "walking rows")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestOrNop(t *testing.T) {
	t.Parallel()

	require.NotNil(t, OrNop(nil))

	logger := zap.NewExample()
	require.Same(t, logger, OrNop(logger))
}
