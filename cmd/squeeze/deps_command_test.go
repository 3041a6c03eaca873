package main

import (
	"strings"
	"testing"
)

func TestDepsCommandRendersTable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, _, err := runCLI(t, "deps")
	if !strings.Contains(out, "FFmpeg") || !strings.Contains(out, "FFprobe") {
		t.Fatalf("expected dependency table, got %q (err=%v)", out, err)
	}
	if !strings.Contains(out, "Dependency") || !strings.Contains(out, "Status") {
		t.Fatalf("expected table headers, got %q", out)
	}
}
