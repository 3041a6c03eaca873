package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"squeeze/internal/compress"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{-5, "0 B"},
		{512, "512 B"},
		{8_000_000, "8.0 MB"},
	}
	for _, tc := range cases {
		if got := formatSize(tc.bytes); got != tc.want {
			t.Errorf("formatSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{12.3, "12.3s"},
		{75, "1m 15s"},
		{3725, "1h 2m"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.seconds); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatBitrate(t *testing.T) {
	if got := formatBitrate(800); got != "800 kbps" {
		t.Errorf("formatBitrate(800) = %q", got)
	}
	if got := formatBitrate(6176); got != "6.2 Mbps" {
		t.Errorf("formatBitrate(6176) = %q", got)
	}
}

func TestFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp4")
	if err := os.WriteFile(path, make([]byte, 1234), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	size, err := fileSize(path)
	if err != nil {
		t.Fatalf("fileSize: %v", err)
	}
	if size != 1234 {
		t.Fatalf("fileSize = %d, want 1234", size)
	}
	if _, err := fileSize(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRenderSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp4")
	if err := os.WriteFile(path, make([]byte, 7_900_000), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out := renderSummary(summaryData{
		result: compress.Result{
			OutputPath: path,
			Codec:      compress.CodecHEVC,
			VideoKbps:  6176,
			AudioKbps:  96,
			Width:      1920,
			Height:     1080,
			FPS:        30,
			Attempts:   2,
		},
		inputSize:    100_000_000,
		targetBytes:  8_000_000,
		durationSecs: 10,
		elapsed:      5 * time.Second,
	})

	for _, want := range []string{
		"7.9 MB",
		"98.8% of target",
		"12.7x",
		"1920x1080 @ 30fps",
		"6.2 Mbps",
		"aac 96 kbps",
		"hevc",
		"2.0x realtime",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestAudioSummaryDisabled(t *testing.T) {
	if got := audioSummary(0); got != "disabled" {
		t.Fatalf("audioSummary(0) = %q", got)
	}
}
