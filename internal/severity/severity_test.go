package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "unknown", Severity(99).String())
}

func TestSeverityOrdering(t *testing.T) {
	assert.Less(t, int(Info), int(Warning))
	assert.Less(t, int(Warning), int(Error))
}
