package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidatePath validates a declaration or output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateRequestPath validates a path supplied by a remote caller.
// On top of [ValidatePath] it rejects absolute paths and traversal.
func ValidateRequestPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}
	return nil
}

// ValidateDimension checks that a container dimension is a concrete pixel
// count. Negative values and values at or above limit are rejected as
// unbounded; limit is the sentinel the caller uses for "infinite".
func ValidateDimension(name string, value, limit int) error {
	if value >= limit {
		return New(ErrCodeUnboundedConstraint, "%s is unbounded; the container must have a finite size", name)
	}
	if value < 0 {
		return New(ErrCodeInvalidInput, "%s must be >= 0, got %d", name, value)
	}
	return nil
}

// ValidatePositive checks that a numeric declaration value is finite and > 0.
func ValidatePositive(code Code, name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return New(code, "%s must be a finite number, got %v", name, value)
	}
	if value <= 0 {
		return New(code, "%s must be > 0, got %v", name, value)
	}
	return nil
}
