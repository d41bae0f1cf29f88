package utils

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogger(t *testing.T) {
	defer func() {
		Logger.SetLevel(defaultLevel)
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}()

	require.NoError(t, ConfigureLogger("warn", "json"))
	assert.Equal(t, logrus.WarnLevel, Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Logger.Formatter)

	require.NoError(t, ConfigureLogger("", "text"))
	assert.Equal(t, logrus.WarnLevel, Logger.GetLevel())

	assert.Error(t, ConfigureLogger("loud", ""))
	assert.Error(t, ConfigureLogger("info", "xml"))
}

func TestPrintSnapshot(t *testing.T) {
	var buf bytes.Buffer
	Logger.SetOutput(&buf)
	defer Logger.SetOutput(os.Stderr)

	PrintSnapshot("snapshot", map[string]int{"b": 2, "a": 1})

	out := buf.String()
	assert.Contains(t, out, "snapshot")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("a: 1")), bytes.Index(buf.Bytes(), []byte("b: 2")))
}
