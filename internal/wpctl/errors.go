package wpctl

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExternalTool marks failures to run the wpctl binary at all.
	ErrExternalTool = errors.New("external tool error")
	// ErrNotFound marks queries that matched no object.
	ErrNotFound = errors.New("not found")
)

// wrap tags err with marker and a "wpctl <operation>" prefix so callers can
// classify it with errors.Is.
func wrap(marker error, operation string, err error) error {
	detail := "wpctl"
	if operation = strings.TrimSpace(operation); operation != "" {
		detail += " " + operation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
