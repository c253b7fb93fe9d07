package fix

import (
	"errors"
	"fmt"
	"os"

	"sfclint/internal/source"
)

// ErrStale is returned when a file changed on disk after it was loaded.
var ErrStale = errors.New("file changed since it was read")

// WriteFile replaces the contents of f on disk with content. The write is
// refused with ErrStale when the file no longer matches the loaded bytes.
// The file mode is preserved.
func WriteFile(f *source.File, content []byte) error {
	if f == nil || f.Virtual() {
		return fmt.Errorf("fix: cannot write virtual file")
	}
	info, err := os.Stat(f.Path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", f.Path, err)
	}
	current, err := os.ReadFile(f.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.Path, err)
	}
	if source.HashContent(current) != f.Hash {
		return fmt.Errorf("write %s: %w", f.Path, ErrStale)
	}
	if err := os.WriteFile(f.Path, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}
