package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var ErrInvalidFilename = errors.New("invalid catalog filename")

// ValidateFilename accepts a plain file name of a compiled, non-test Go file.
func ValidateFilename(name string) error {
	switch {
	case name == "" || filepath.Base(name) != name:
		return fmt.Errorf("%w: %q must be a file name without directories", ErrInvalidFilename, name)
	case !strings.HasSuffix(name, ".go"):
		return fmt.Errorf("%w: %q must end with .go", ErrInvalidFilename, name)
	case strings.HasSuffix(name, "_test.go"):
		return fmt.Errorf("%w: %q would only be compiled by go test", ErrInvalidFilename, name)
	case strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_"):
		return fmt.Errorf("%w: %q is ignored by the go tool", ErrInvalidFilename, name)
	}

	return nil
}

// WriteFiles writes the generated files into outputDir, creating it when
// missing. Each file is written to a temporary file first and renamed into
// place, so a failed run never leaves a truncated catalog. A sidecar left by
// an earlier formatting failure is removed.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		if err := ValidateFilename(file.Filename); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		if err := writeAtomic(filepath.Join(outputDir, file.Filename), file.Content); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		if err := removeDebugUnformatted(outputDir, file.Filename); err != nil {
			return err
		}
	}

	return nil
}

func writeAtomic(path string, content []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
