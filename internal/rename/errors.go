package rename

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks inputs that are neither regular files nor
	// directories.
	ErrInvalidInput = errors.New("invalid input path")
	// ErrRename marks physical rename failures; the batch continues past
	// them.
	ErrRename = errors.New("rename failed")
)

// Wrap builds an error carrying operation context while tagging it with the
// provided marker for classification via errors.Is.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrRename
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "rename failure"
	}
	return strings.Join(parts, ": ")
}
