package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, Disabled, ParseLevel("none"))
	assert.Equal(t, InfoLevel, ParseLevel("chatty"))
}

func TestConfigure_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	lgr := Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: Disabled}) })

	lgr.Debug().Msg("hidden")
	Info().Str("course", "python").Msg("created")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "python", entry["course"])
	assert.Equal(t, "created", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: Disabled}) })

	assert.Equal(t, defaultLogger, *FromContext(context.Background()))

	scoped := defaultLogger.With().Str("request_id", "abc").Logger()
	ctx := WithContext(context.Background(), scoped)
	FromContext(ctx).Info().Msg("scoped")

	assert.Contains(t, buf.String(), `"request_id":"abc"`)
}
