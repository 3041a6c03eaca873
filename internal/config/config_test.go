package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"squeeze/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Encoding.Codec != "hevc" {
		t.Fatalf("unexpected default codec: %q", cfg.Encoding.Codec)
	}
	if cfg.Encoding.Target != "8MB" {
		t.Fatalf("unexpected default target: %q", cfg.Encoding.Target)
	}
	if cfg.Encoding.MaxWidth != 1920 || cfg.Encoding.MaxFPS != 60 {
		t.Fatalf("unexpected default caps: %d %d", cfg.Encoding.MaxWidth, cfg.Encoding.MaxFPS)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.FFprobe != "ffprobe" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
	if !cfg.Output.Color {
		t.Fatal("expected color enabled by default")
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[encoding]
codec = "h264"
target = "25MB"
max_width = 1280

[output]
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected existing resolved config, got exists=%v path=%q", exists, resolved)
	}
	if cfg.Encoding.Codec != "h264" {
		t.Fatalf("expected codec from file, got %q", cfg.Encoding.Codec)
	}
	if cfg.Encoding.Target != "25MB" {
		t.Fatalf("expected target from file, got %q", cfg.Encoding.Target)
	}
	if cfg.Encoding.MaxWidth != 1280 {
		t.Fatalf("expected max width from file, got %d", cfg.Encoding.MaxWidth)
	}
	if cfg.Encoding.MaxFPS != 60 {
		t.Fatalf("expected default max fps preserved, got %d", cfg.Encoding.MaxFPS)
	}
	if cfg.Output.LogLevel != "debug" {
		t.Fatalf("expected log level from file, got %q", cfg.Output.LogLevel)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad codec", "[encoding]\ncodec = \"av1\"\n", "codec"},
		{"bad overhead", "[encoding]\noverhead = 0.9\n", "overhead"},
		{"bad width", "[encoding]\nmax_width = 64\n", "max_width"},
		{"bad fps", "[encoding]\nmax_fps = 500\n", "max_fps"},
		{"bad target", "[encoding]\ntarget = \"banana\"\n", "target"},
		{"bad format", "[output]\nlog_format = \"yaml\"\n", "log_format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(config.SampleConfig()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if *cfg != config.Default() {
		t.Fatalf("sample config should equal defaults, got %+v", *cfg)
	}
}
