// Package util holds small formatting helpers shared across layers.
package util

import (
	"fmt"
	"strconv"
	"strings"

	"adboard/internal/errors"
)

const unit = 1024

// ParseBytes parses a size such as "512", "10KB", "5MB" or "1.5GB" into bytes. Units are binary.
func ParseBytes(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, errors.New("empty size")
	}

	multiplier := int64(1)
	for i, suffix := range []string{"KB", "MB", "GB"} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			for range i + 1 {
				multiplier *= unit
			}

			break
		}
	}
	s = strings.TrimSuffix(s, "B")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0, errors.Errorf("invalid size %q", s)
	}

	return int64(value * float64(multiplier)), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
