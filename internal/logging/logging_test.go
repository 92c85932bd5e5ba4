package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := map[string]struct {
		level         string
		format        string
		expectedLevel zerolog.Level
		expectedErr   bool
	}{
		"Default":  {level: "", format: "console", expectedLevel: zerolog.InfoLevel},
		"Debug":    {level: "DEBUG", format: "json", expectedLevel: zerolog.DebugLevel},
		"Warn":     {level: "warn", format: "console", expectedLevel: zerolog.WarnLevel},
		"BadLevel": {level: "loud", format: "json", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(&buf, tc.level, tc.format)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedLevel, l.GetLevel())
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", "json")
	require.NoError(t, err)

	l.Info().Str("path", "zones.json").Msg("catalog loaded")
	assert.Contains(t, buf.String(), `"path":"zones.json"`)
	assert.Contains(t, buf.String(), `"level":"info"`)

	buf.Reset()
	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", "console")
	require.NoError(t, err)

	l.Info().Str("path", "zones.json").Msg("catalog loaded")
	assert.Contains(t, buf.String(), "catalog loaded")
	assert.Contains(t, buf.String(), "path=zones.json")
}
