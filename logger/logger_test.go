package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("rejects an empty prefix", func(t *testing.T) {
		_, err := New("", "", &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("rejects a nil writer", func(t *testing.T) {
		_, err := New("APP", "", nil)
		assert.Error(t, err)
	})
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("CHALLENGE", "\033[35m", &buf)
	assert.NoError(t, err)

	l.Info("maze ready")
	l.Warning("degraded placement")
	l.Error("generation failed")

	// The color reset escape sits between the prefix and the level, so
	// the two are asserted separately.
	out := buf.String()
	assert.Contains(t, out, "\033[35m[CHALLENGE]\033[0m")
	assert.Contains(t, out, "[INFO] maze ready")
	assert.Contains(t, out, "[WARN] degraded placement")
	assert.Contains(t, out, "[ERROR] generation failed")
}
