package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHandleParse(t *testing.T) {
	in := writeTempFile(t, "doc.txt", "hello world")
	out := filepath.Join(t.TempDir(), "out.txt")

	err := HandleParse([]string{"-o", out, in})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "CodeBlock")
}

func TestHandleParse_WrongArgCount(t *testing.T) {
	err := HandleParse(nil)
	assert.Error(t, err)
}

func TestHandleConfig(t *testing.T) {
	in := writeTempFile(t, "conf.hocon", `title = "My Doc"`)
	out := filepath.Join(t.TempDir(), "out.json")

	err := HandleConfig([]string{"-o", out, in})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "My Doc")
}

func TestHandleLegacy(t *testing.T) {
	in := writeTempFile(t, "doc.txt", "Hello {{name}}")
	out := filepath.Join(t.TempDir(), "out.txt")

	err := HandleLegacy([]string{"-q", "-o", out, in})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Hello ${name}", string(content))
}
