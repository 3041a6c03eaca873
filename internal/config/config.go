package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools names the external binaries squeeze invokes.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Encoding carries the default compression parameters.
type Encoding struct {
	Codec        string  `toml:"codec"`
	Target       string  `toml:"target"`
	MaxRetries   int     `toml:"max_retries"`
	Overhead     float64 `toml:"overhead"`
	MaxWidth     int     `toml:"max_width"`
	MaxFPS       int     `toml:"max_fps"`
	AudioKbps    int     `toml:"audio_kbps"`
	MinAudioKbps int     `toml:"min_audio_kbps"`
}

// Output controls terminal and log rendering.
type Output struct {
	Color     bool   `toml:"color"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Config is the root configuration document.
type Config struct {
	Tools    Tools    `toml:"tools"`
	Encoding Encoding `toml:"encoding"`
	Output   Output   `toml:"output"`
}

// SampleConfig returns the annotated sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/squeeze/config.toml")
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the resolved path, and whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("squeeze.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpegBinary
	}
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = defaultFFprobeBinary
	}
	c.Encoding.Codec = strings.ToLower(strings.TrimSpace(c.Encoding.Codec))
	c.Encoding.Target = strings.TrimSpace(c.Encoding.Target)
	c.Output.LogLevel = strings.ToLower(strings.TrimSpace(c.Output.LogLevel))
	c.Output.LogFormat = strings.ToLower(strings.TrimSpace(c.Output.LogFormat))
	if c.Output.LogLevel == "" {
		c.Output.LogLevel = defaultLogLevel
	}
	if c.Output.LogFormat == "" {
		c.Output.LogFormat = defaultLogFormat
	}
}

func expandPath(pathValue string) (string, error) {
	cleaned := strings.TrimSpace(pathValue)
	if cleaned == "" {
		return "", nil
	}
	if cleaned == "~" || strings.HasPrefix(cleaned, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		cleaned = filepath.Join(home, strings.TrimPrefix(cleaned, "~"))
	}
	return filepath.Abs(cleaned)
}
