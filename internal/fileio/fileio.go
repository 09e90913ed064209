// Package fileio holds the file access used by the CLI. The codec itself
// only touches in-memory byte slices.
package fileio

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data to path via a uniquely named temp file in the
// same directory followed by a rename, so a failed write never leaves a
// partial file at path.
func WriteFileAtomic(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming to %s: %w", path, err)
	}
	return nil
}
