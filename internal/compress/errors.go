package compress

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolUnavailable indicates a required external binary could not be located.
	ErrToolUnavailable = errors.New("tool unavailable")
	// ErrEncoderUnavailable indicates the requested hardware encoder is not present.
	ErrEncoderUnavailable = errors.New("encoder unavailable")
	// ErrUnreadableMedia indicates the input could not be inspected.
	ErrUnreadableMedia = errors.New("unreadable media")
	// ErrInvalidInput indicates a malformed request parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrProcessFailure indicates the external encoder exited with an error.
	ErrProcessFailure = errors.New("encode process failed")
	// ErrTargetUnreachable indicates the full degradation ladder was exhausted.
	ErrTargetUnreachable = errors.New("target unreachable")
)

// Wrap tags an error with one of the exported sentinel markers while keeping
// operation context in the message. The marker drives exit-code and retry
// decisions in callers.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
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
		return "compression failure"
	}
	return strings.Join(parts, ": ")
}
