// Package upload handles request-scoped spooling of uploaded images.
package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WithTempFile writes data to a uniquely named file under dir (or the
// system temp directory when dir is empty) and invokes fn with its path.
// The file is removed on every exit path, including a panic inside fn.
func WithTempFile(dir string, data []byte, fn func(path string) error) (err error) {
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("upload-%s.img", uuid.NewString()))

	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return fmt.Errorf("spool upload: %w", writeErr)
	}
	defer func() {
		removeErr := os.Remove(path)
		if removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) && err == nil {
			err = fmt.Errorf("remove spooled upload: %w", removeErr)
		}
	}()

	return fn(path)
}
