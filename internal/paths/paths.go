// Package paths provides pure helpers for turning user-supplied path
// strings into canonical absolute paths, and back into display form.
//
// Nothing here touches the filesystem; existence checks belong to the
// callers that care about them.
package paths

import (
	"path/filepath"
	"strings"
)

// Normalize resolves a user-supplied path to an absolute path.
//
// Rules, applied in order:
//   - an already-absolute path is returned unchanged (cleaned)
//   - a leading "~" is replaced with home
//   - anything else is resolved relative to cwd
func Normalize(raw, cwd, home string) string {
	if raw == "" {
		return filepath.Clean(cwd)
	}
	if filepath.IsAbs(raw) {
		return filepath.Clean(raw)
	}
	if raw == "~" {
		return filepath.Clean(home)
	}
	if strings.HasPrefix(raw, "~/") {
		return filepath.Join(home, raw[2:])
	}
	return filepath.Join(cwd, raw)
}

// ShortenHome replaces a leading home prefix with "~" for display.
// Paths outside home are returned unchanged.
func ShortenHome(path, home string) string {
	if path == "" || home == "" {
		return path
	}
	home = strings.TrimSuffix(home, string(filepath.Separator))
	if path == home {
		return "~"
	}
	prefix := home + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return "~" + string(filepath.Separator) + strings.TrimPrefix(path, prefix)
	}
	return path
}
