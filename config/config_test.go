package config

import (
	"context"
	"testing"

	"github.com/erraggy/laika/hocon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseConfig(t *testing.T, source string) *Config {
	t.Helper()
	root, failures := hocon.ParseDocument("test", source)
	require.Empty(t, failures)
	r := hocon.NewResolver(context.Background(), hocon.ResolverOptions{})
	resolved, err := r.Resolve(root)
	require.NoError(t, err)
	return FromResolved(resolved, hocon.Origin{Description: "test"})
}

func TestConfig_Get(t *testing.T) {
	c := parseConfig(t, `name = "laika"
port = 8080
debug = true`)

	name, err := Get[string](c, "name")
	require.NoError(t, err)
	assert.Equal(t, "laika", name)

	port, err := Get[int64](c, "port")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)

	debug, err := Get[bool](c, "debug")
	require.NoError(t, err)
	assert.True(t, debug)
}

func TestConfig_GetOpt_Missing(t *testing.T) {
	c := parseConfig(t, `name = "laika"`)
	_, found, err := GetOpt[string](c, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestConfig_WithFallback(t *testing.T) {
	primary := parseConfig(t, `a = 1`)
	fallback := parseConfig(t, `a = 2
b = 3`)
	merged := primary.WithFallback(fallback)

	a, err := Get[int64](merged, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)

	b, err := Get[int64](merged, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(3), b)
}

func TestConfig_WithValue(t *testing.T) {
	c := parseConfig(t, `a = 1`)
	updated := c.WithValue("a", hocon.NewLongValue(99, hocon.Origin{Description: "programmatic"}))
	a, err := Get[int64](updated, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(99), a)
}

func TestConfig_Decode(t *testing.T) {
	type Server struct {
		Host string `config:"host"`
		Port int    `config:"port"`
	}
	c := parseConfig(t, `server { host = "localhost", port = 9090 }`)
	var s Server
	require.NoError(t, c.Decode("server", &s))
	assert.Equal(t, "localhost", s.Host)
	assert.Equal(t, 9090, s.Port)
}

func TestConfig_ExportYAML(t *testing.T) {
	c := parseConfig(t, `a = 1
b = "x"`)
	out, err := c.ExportYAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "a: 1")
}

func TestDiff_DetectsAddedRemovedChanged(t *testing.T) {
	old := parseConfig(t, `a = 1
b = 2`)
	updated := parseConfig(t, `a = 9
c = 3`)
	changes := Diff(old, updated)

	byPath := map[string]ChangeKind{}
	for _, c := range changes {
		byPath[c.Path] = c.Kind
	}
	assert.Equal(t, Changed, byPath["a"])
	assert.Equal(t, Removed, byPath["b"])
	assert.Equal(t, Added, byPath["c"])
}
