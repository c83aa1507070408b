package staticLog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevelAndFormat(t *testing.T) {
	l := Init(Config{Level: "debug", JSON: true})
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.Same(t, l, Logger())

	var buf bytes.Buffer
	SetOutput(&buf)
	WithFields(logrus.Fields{"axis": "regular"}).Info("built")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "regular", line["axis"])
	assert.Equal(t, "built", line["msg"])
}

func TestInitUnknownLevel(t *testing.T) {
	l := Init(Config{Level: "chatty"})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.log")
	Init(Config{Level: "warn", File: path})
	Warnf("freedman-diaconis fallback, divisor=%d", 16)
	Infof("dropped at warn level")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "divisor=16")
	assert.NotContains(t, string(b), "dropped")

	Init(Config{Level: "warn"})
}
