package usecase

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// blobPath builds "<folder>/<unix millis>_<name>" with name reduced to a
// safe file name.
func blobPath(folder string, at time.Time, filename string) string {
	return fmt.Sprintf("%s/%d_%s", folder, at.UnixMilli(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" {
		name = ""
	}
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	clean = strings.Trim(clean, "._")
	if clean == "" {
		return "arquivo"
	}
	return clean
}
