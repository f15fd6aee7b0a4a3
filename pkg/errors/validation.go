package errors

import (
	"strings"
	"unicode"
)

// MaxLabelLength bounds node labels accepted from callers. Labels beyond
// this length cannot produce a confident symbol match and are rejected
// before they reach the matcher.
const MaxLabelLength = 500

// ValidateLabel validates a free-text node label for safety.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters or null bytes
//   - Maximum length of MaxLabelLength characters
//
// Matching-specific normalization (case folding, token splitting) is the
// matcher's job, not validation.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}

	if len(label) > MaxLabelLength {
		return New(ErrCodeInvalidLabel, "label too long (max %d characters)", MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}

	return nil
}

// ValidateStoreKey validates a position-store key (diagram/session key).
// Keys end up in file names and datastore keys, so path characters and
// traversal sequences are rejected.
func ValidateStoreKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "store key cannot be empty")
	}

	if len(key) > 128 {
		return New(ErrCodeInvalidKey, "store key too long (max 128 characters)")
	}

	if strings.ContainsAny(key, "/\\") {
		return New(ErrCodeInvalidKey, "store key cannot contain path separators")
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"\x00", // Null byte
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(key, pattern) {
			return New(ErrCodeInvalidKey, "store key contains invalid sequence: %q", pattern)
		}
	}

	for _, r := range key {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidKey, "store key contains invalid characters")
		}
	}

	return nil
}

// ValidateNodeID validates a graph node identifier.
// Node IDs double as display labels, so the rules match ValidateLabel with
// a tighter length bound.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "node ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidGraph, "node ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "node ID contains invalid control characters")
		}
	}

	return nil
}
