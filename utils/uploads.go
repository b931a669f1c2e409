package utils

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// GenerateUploadFilename builds a collision-resistant name for a stored
// upload: millisecond timestamp plus a random suffix, keeping the original
// extension. Two uploads sharing an original name never overwrite each other.
func GenerateUploadFilename(originalName string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(originalName))
}
