package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("MAZE", "\033[36m", &buf)
	require.NoError(t, err)

	l.Info("generated maze")
	l.Warning("slow attempt")
	l.Error("exhausted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "\033[36m[MAZE]\033[0m "), line)
	}
	assert.Contains(t, lines[0], "[INFO]")
	assert.Contains(t, lines[0], "generated maze")
	assert.Contains(t, lines[1], "[WARNING]")
	assert.Contains(t, lines[2], "[ERROR]")
	assert.Contains(t, lines[2], "exhausted")
}

func TestNewRejectsNilWriter(t *testing.T) {
	l, err := New("MAZE", "", nil)
	assert.ErrorIs(t, err, ErrNilWriter)
	assert.Nil(t, l)
}
