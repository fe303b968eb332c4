// internal/utils/path.go

package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome rewrites a leading "~" to the current user's home directory.
// The path is returned unchanged when the home directory is unknown or
// the tilde belongs to a user name ("~other/...").
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
