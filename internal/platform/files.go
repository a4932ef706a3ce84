package platform

import (
	"os"
	"strings"
	"unicode"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Output naming
const (
	DefaultDownloadDir = "downloaded_videos"
	OutputExtensionMP4 = ".mp4"
)

// SanitizeFilename builds a safe output filename from a video title and
// an optional identifier prefix. Only alphanumerics, spaces, hyphens,
// and underscores survive; trailing whitespace is stripped and ".mp4"
// appended. The function is pure and idempotent, and an empty title
// yields just the extension.
func SanitizeFilename(title, identifier string) string {
	name := title
	if identifier != "" {
		name = identifier + "_" + title
	}
	// Idempotence: a previously sanitized name re-enters without
	// growing a second extension.
	name = strings.TrimSuffix(name, OutputExtensionMP4)

	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimRightFunc(b.String(), unicode.IsSpace)
	return cleaned + OutputExtensionMP4
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist.
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
