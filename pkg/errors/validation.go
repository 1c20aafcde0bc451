package errors

import (
	"strings"
	"unicode"
)

// ValidateParticipantName validates a participant name for safety and correctness.
// Names are treated as opaque identifiers throughout the application, so the
// rules here are intentionally conservative:
//   - No empty names
//   - No control characters (covers newlines and tabs)
//   - Maximum length of 128 characters
//
// Leading and trailing whitespace should be trimmed before calling this function.
func ValidateParticipantName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidParticipant, "participant name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidParticipant, "participant name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidParticipant, "participant name contains invalid control characters")
		}
	}

	return nil
}

// ValidateRosterFilename validates a roster filename for safety.
// It rejects empty names and names consisting only of whitespace.
func ValidateRosterFilename(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return New(ErrCodeInvalidRoster, "roster filename cannot be empty")
	}

	return nil
}
