package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxEntryLength = 256

// ValidateEntry checks a single draw entry label.
func ValidateEntry(entry string) error {
	if strings.TrimSpace(entry) == "" {
		return fmt.Errorf("entry cannot be empty")
	}
	if !utf8.ValidString(entry) {
		return fmt.Errorf("entry must be valid UTF-8")
	}
	if n := utf8.RuneCountInString(entry); n > MaxEntryLength {
		return fmt.Errorf("entry cannot exceed %d characters", MaxEntryLength)
	}
	return nil
}

// ValidateEntries returns the index of the first bad entry with its error,
// or -1 and nil.
func ValidateEntries(entries []string) (int, error) {
	for i, e := range entries {
		if err := ValidateEntry(e); err != nil {
			return i, err
		}
	}
	return -1, nil
}
