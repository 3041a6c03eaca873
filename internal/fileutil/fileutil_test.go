package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPromoteMovesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "candidate.mp4")
	dst := filepath.Join(dir, "final.mp4")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := Promote(src, dst); err != nil {
		t.Fatalf("Promote returned error: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected destination contents: %q", data)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("expected source removed, stat err: %v", err)
	}
}

func TestPromoteMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := Promote(filepath.Join(dir, "absent.mp4"), filepath.Join(dir, "out.mp4")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyFileVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	payload := make([]byte, 1<<16)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	if err := os.WriteFile(src, payload, 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := copyFileVerified(src, dst); err != nil {
		t.Fatalf("copyFileVerified returned error: %v", err)
	}
	copied, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if len(copied) != len(payload) {
		t.Fatalf("copy length mismatch: got %d want %d", len(copied), len(payload))
	}
}
