package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// debugName is the sidecar holding a catalog that failed to format. It does
// not end with .go so the broken code never joins the catalog package.
func debugName(filename string) string {
	return filename + ".unformatted"
}

// writeDebugUnformatted stores unformatted catalog code next to the intended
// output. It is best effort and a no-op without an output directory.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, debugName(filename)), content, filePerm)
}

func removeDebugUnformatted(outDir, filename string) error {
	err := os.Remove(filepath.Join(outDir, debugName(filename)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", debugName(filename), err)
	}

	return nil
}
