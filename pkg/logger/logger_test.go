package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleLogger(t *testing.T) {
	t.Run("FiltersBelowLevel", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter("WARN", &buf)

		log.Debug("quiet")
		log.Info("quiet")
		log.Warn("loud")
		log.Error("loud")

		out := buf.String()
		require.NotContains(t, out, "quiet")
		require.Contains(t, out, "[WARN] loud")
		require.Contains(t, out, "[ERROR] loud")
	})

	t.Run("FormatsFieldPairs", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter("INFO", &buf)

		log.Info("snapshot saved", "key", "products", "count", 3)
		require.Contains(t, buf.String(), "snapshot saved key=products count=3")
	})

	t.Run("WithFieldBindsPermanently", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter("INFO", &buf).WithField("container", "cart")

		log.Info("cleared")
		require.Contains(t, buf.String(), "container=cart")
	})
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, DebugLevel, ParseLevel("debug"))
	require.Equal(t, WarnLevel, ParseLevel("WARNING"))
	require.Equal(t, InfoLevel, ParseLevel("bogus"))
}
