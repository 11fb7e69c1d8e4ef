package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/laika/internal/fileutil"
)

// WriteFile generates spec and writes it to path, creating any missing
// parent directories.
func WriteFile(spec Spec, path string) error {
	content, err := Generate(spec)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scaffold: creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("scaffold: writing %s: %w", path, err)
	}
	return nil
}
