package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewWithOutput(buf, "debug", "json")
	require.NoError(t, err)

	l.WithField("vehicle_id", "b1").Debug("docked")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "docked", entry["msg"])
	assert.Equal(t, "b1", entry["vehicle_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewWithOutput_LevelFilters(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewWithOutput(buf, "warn", "text")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", "text")
	assert.Error(t, err)

	_, err = New("info", "yaml")
	assert.Error(t, err)
}
