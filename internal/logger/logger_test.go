package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-birthday-keeper/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")

	l, err := NewClientLogger("client", path, "info")
	require.NoError(t, err)

	l.Debug().Msg("filtered out")
	l.Info().Str("k", "v").Msg("kept")
	require.NoError(t, l.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		lines = append(lines, entry)
	}

	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["message"])
	assert.Equal(t, "client", lines[0]["role"])
	assert.Equal(t, "v", lines[0]["k"])
}

func TestNewClientLogger_BadLevel(t *testing.T) {
	_, err := NewClientLogger("client", filepath.Join(t.TempDir(), "x.log"), "shouting")
	require.Error(t, err)
}

func TestNewClientLogger_Unwritable(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be opened as the log file
	_, err := NewClientLogger("client", dir, "info")
	require.Error(t, err)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
	assert.NoError(t, l.Close())
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{Logger: zerolog.New(&buf)}

	ctx, opLog := WithOperation(context.Background(), base, "contacts.add")

	id, ok := utils.GetOperationIDFromContext(ctx)
	require.True(t, ok)
	require.NotEmpty(t, id)

	FromContext(ctx).Info().Msg("inside")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contacts.add", entry["op"])
	assert.Equal(t, id, entry["op_id"])

	buf.Reset()
	opLog.Info().Msg("direct")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["op_id"])
}

func TestWithOperation_DistinctIDs(t *testing.T) {
	ctx1, _ := WithOperation(context.Background(), Nop(), "a")
	ctx2, _ := WithOperation(context.Background(), Nop(), "a")

	id1, _ := utils.GetOperationIDFromContext(ctx1)
	id2, _ := utils.GetOperationIDFromContext(ctx2)
	assert.NotEqual(t, id1, id2)
}

func TestWithOperation_ReusesParentID(t *testing.T) {
	parent := utils.WithOperationID(context.Background(), "op-parent")

	ctx, _ := WithOperation(parent, Nop(), "contacts.remove")

	id, ok := utils.GetOperationIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "op-parent", id)
}
