package vteparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type capturingLogger struct {
	warns, debugs []string
}

func (c *capturingLogger) Warnf(format string, args ...any)  { c.warns = append(c.warns, format) }
func (c *capturingLogger) Debugf(format string, args ...any) { c.debugs = append(c.debugs, format) }

func TestWithLoggerOverridesDefault(t *testing.T) {
	logger := &capturingLogger{}
	p := NewParser(WithLogger(logger))

	p.Push([]byte("\x1b[9999z")) // unrecognised CSI final

	assert.NotEmpty(t, logger.warns)
}

func TestNoopLoggerDiscardsEverything(t *testing.T) {
	assert.NotPanics(t, func() {
		NewParser(WithLogger(noopLogger{})).Push([]byte("\x1b[9999z"))
	})
}

func TestDefaultLoggerIsSlogBacked(t *testing.T) {
	_, ok := defaultLogger().(slogLogger)
	assert.True(t, ok)
}
