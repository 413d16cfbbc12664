package util

import (
	"errors"
	"strings"
)

var errInvalidFileName = errors.New("invalid file name")

// SanitizeFileName flattens path separators out of an uploaded file name so
// it can never escape its staging directory. Traversal patterns and names
// that reduce to nothing are rejected.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errInvalidFileName
	}
	return s, nil
}
