package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent(t *testing.T) {
	log := New("debug", &bytes.Buffer{})
	entry := log.WithComponent("test")
	v, ok := entry.Entry.Data["component"]
	require.True(t, ok)
	assert.Equal(t, "test", v)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("invalid"))
}

func TestNewWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New("info", buf)
	log.WithComponent("rest").WithFields(Fields{"endpoint": "Time"}).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "rest", line["component"])
	assert.Equal(t, "Time", line["endpoint"])
	assert.Contains(t, line, "timestamp")
}

func TestLogRequestEntryRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New("info", buf)
	LogRequestEntry(log.WithComponent("rest"), "GET", "Time", 200, time.Millisecond)
	assert.Empty(t, buf.String())

	log.SetLevel(logrus.DebugLevel)
	LogRequestEntry(log.WithComponent("rest"), "GET", "Time", 200, time.Millisecond)
	assert.Contains(t, buf.String(), "request completed")
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestNewRotating(t *testing.T) {
	_, err := NewRotating("info", "", 0, 0, 0)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "kraken.log")
	log, err := NewRotating("info", path, 0, 1, 1)
	require.NoError(t, err)
	log.Info("rotating")
	assert.FileExists(t, path)
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.NotPanics(t, func() {
		log.WithComponent("x").Error("dropped")
	})
}
