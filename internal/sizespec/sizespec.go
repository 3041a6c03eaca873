// Package sizespec parses human-friendly size strings into byte counts.
package sizespec

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Parse converts a size string such as "8MB", "7.9m", "8MiB", or a raw byte
// count into bytes. Decimal suffixes (KB/MB/GB, k/m/g) use powers of 1000,
// binary suffixes (KiB/MiB/GiB) powers of 1024.
func Parse(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("size cannot be empty")
	}
	value, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, fmt.Errorf("unrecognized size %q: %w", s, err)
	}
	if value == 0 {
		return 0, fmt.Errorf("size must be positive: %q", s)
	}
	return int64(value), nil
}
