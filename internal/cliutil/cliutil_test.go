package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Hello, %s!", "World")
	assert.Equal(t, "Hello, World!", buf.String())
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Simple message")
	assert.Equal(t, "Simple message", buf.String())
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) { return 0, errors.New("simulated write error") }

func TestWritef_WriteError_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { Writef(errorWriter{}, "will fail") })
}
