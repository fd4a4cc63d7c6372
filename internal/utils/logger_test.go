package utils

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn")
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", "k", "v")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	l := NewLogger(&bytes.Buffer{}, "loud")
	assert.Equal(t, log.InfoLevel, l.GetLevel())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdefgh", 5))
	assert.Equal(t, "ab", Truncate("abcdefgh", 2))
	assert.Equal(t, "♥♦...", Truncate("♥♦♣♠♥♦", 5))
	assert.Equal(t, "♥♦♣♠♥", Truncate("♥♦♣♠♥", 5))
}
