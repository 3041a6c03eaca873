package config

import (
	"fmt"

	"squeeze/internal/sizespec"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Encoding.Codec != "h264" && c.Encoding.Codec != "hevc" {
		return fmt.Errorf("encoding.codec must be h264 or hevc, got %q", c.Encoding.Codec)
	}
	if _, err := sizespec.Parse(c.Encoding.Target); err != nil {
		return fmt.Errorf("encoding.target: %w", err)
	}
	if c.Encoding.MaxRetries < 1 {
		return fmt.Errorf("encoding.max_retries must be at least 1, got %d", c.Encoding.MaxRetries)
	}
	if c.Encoding.Overhead < 0 || c.Encoding.Overhead > 0.5 {
		return fmt.Errorf("encoding.overhead must be within [0, 0.5], got %g", c.Encoding.Overhead)
	}
	if c.Encoding.MaxWidth < 128 {
		return fmt.Errorf("encoding.max_width must be at least 128, got %d", c.Encoding.MaxWidth)
	}
	if c.Encoding.MaxFPS < 1 || c.Encoding.MaxFPS > 120 {
		return fmt.Errorf("encoding.max_fps must be within [1, 120], got %d", c.Encoding.MaxFPS)
	}
	if c.Encoding.AudioKbps < 0 {
		return fmt.Errorf("encoding.audio_kbps must not be negative, got %d", c.Encoding.AudioKbps)
	}
	if c.Encoding.MinAudioKbps < 0 {
		return fmt.Errorf("encoding.min_audio_kbps must not be negative, got %d", c.Encoding.MinAudioKbps)
	}
	if c.Output.LogFormat != "console" && c.Output.LogFormat != "json" {
		return fmt.Errorf("output.log_format must be console or json, got %q", c.Output.LogFormat)
	}
	return nil
}
