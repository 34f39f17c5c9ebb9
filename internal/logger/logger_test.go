package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNop_DiscardsOutput verifies that the Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must be usable
	l.Info().Msg("discarded")
	l.Error().Msg("discarded too")
}

// TestGetChildLogger_Independent verifies that enriching a child logger does
// not affect the parent.
func TestGetChildLogger_Independent(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewLogger("parent")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf).With().Str("extra", "value").Logger()

	parent.Info().Msg("from parent")
	child.Info().Msg("from child")

	var parentEntry, childEntry map[string]any
	require.NoError(t, json.Unmarshal(parentBuf.Bytes(), &parentEntry))
	require.NoError(t, json.Unmarshal(childBuf.Bytes(), &childEntry))

	assert.NotContains(t, parentEntry, "extra")
	assert.Equal(t, "value", childEntry["extra"])
}

// TestFromRequest_ReturnsAttachedLogger verifies that FromRequest recovers
// the logger previously stored in the request context.
func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("request")
	l.Logger = l.Output(&buf)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	got := FromRequest(req)
	got.Info().Msg("via request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["role"])
}

// TestFromContext_NoLoggerAttached verifies that FromContext never returns nil.
func TestFromContext_NoLoggerAttached(t *testing.T) {
	got := FromContext(t.Context())
	require.NotNil(t, got)
}
