package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "draw-api", false)

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Info().Int("draws", 4).Msg("shuffled")
	out := buf.String()
	assert.Contains(t, out, "shuffled")
	assert.Contains(t, out, "service:draw-api")
	assert.Contains(t, out, "draws:4")
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "draw-api", true)
	l.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
