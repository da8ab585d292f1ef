// Package storage keeps uploaded listing images.
package storage

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when an image does not exist.
var ErrNotFound = errors.New("image not found")

// safeName strips directories from an uploaded file name.
func safeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
