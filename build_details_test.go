package laika

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion_Default(t *testing.T) {
	assert.Equal(t, "dev", Version())
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "laika/dev", UserAgent())
}
