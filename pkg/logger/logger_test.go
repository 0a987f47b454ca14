package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusLogger_WritesFieldsAsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput(&buf, "debug", true)

	log.Error("falha ao salvar", "store_id", "s-1", "error", errors.New("boom"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "falha ao salvar", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "s-1", entry["store_id"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLogrusLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput(&buf, "warn", true)

	log.Info("ignorada")
	log.Debug("ignorada")
	assert.Zero(t, buf.Len())

	log.Warn("registrada")
	assert.Contains(t, buf.String(), "registrada")
}

func TestToFields_OddArguments(t *testing.T) {
	fields := toFields([]interface{}{"a", 1, "sozinha"})
	assert.Equal(t, 1, fields["a"])
	assert.Equal(t, "sozinha", fields["extra"])
}
