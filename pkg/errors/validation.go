package errors

import (
	"strings"
	"unicode"
)

// ValidateDirName validates a name that will become a single directory
// component under the output directory (typically a Maven artifactId).
// It rejects names that could be used for path traversal.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators (forward or backward slash)
//   - No "." or ".." components
//   - Maximum length of 256 characters
//
// Coordinate fields parsed from Maven output are mostly constrained by the
// coordinate grammar already, but the grammar admits dot runs, so the ".."
// check here is load-bearing.
func ValidateDirName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "directory name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPath, "directory name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "directory name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "directory name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "directory name cannot be a relative path component: %q", name)
	}

	return nil
}

// ValidateEntryName validates an archive entry name before it is joined with
// an extraction target directory. Entry names come straight from untrusted
// archive metadata, so traversal sequences and absolute paths are rejected.
//
// Validation rules:
//   - Entry cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes
//   - No absolute paths (Unix or Windows style)
//   - No path traversal components (..)
func ValidateEntryName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "archive entry name cannot be empty")
	}

	const maxEntryLength = 500
	if len(name) > maxEntryLength {
		return New(ErrCodeInvalidPath, "archive entry name too long (max %d characters)", maxEntryLength)
	}

	if strings.ContainsRune(name, '\x00') {
		return New(ErrCodeInvalidPath, "archive entry name contains null bytes")
	}

	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return New(ErrCodeInvalidPath, "archive entry name must be relative: %q", name)
	}

	// Windows drive letters (C:\...) would escape the target on that platform
	if len(name) >= 2 && name[1] == ':' {
		return New(ErrCodeInvalidPath, "archive entry name must be relative: %q", name)
	}

	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "archive entry name contains path traversal: %q", name)
		}
	}

	return nil
}
