package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"squeeze/internal/compress"
)

var commandContext = exec.CommandContext

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index      int    `json:"index"`
	CodecName  string `json:"codec_name"`
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}
	if _, err := exec.LookPath(binary); err != nil {
		return Result{}, compress.Wrap(compress.ErrToolUnavailable, "locate ffprobe", fmt.Sprintf("binary %q not found in PATH", binary), nil)
	}

	cmd := commandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.Output()
	if err != nil {
		return Result{}, compress.Wrap(compress.ErrUnreadableMedia, "ffprobe inspect", strings.TrimSpace(stderrOf(err)), err)
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, compress.Wrap(compress.ErrUnreadableMedia, "ffprobe parse", "", err)
	}
	return result, nil
}

// DurationSeconds returns the container duration in seconds, or 0 when unavailable.
func (r Result) DurationSeconds() float64 {
	return parseFloat(r.Format.Duration)
}

// SizeBytes returns the reported container size in bytes, or 0 when unavailable.
func (r Result) SizeBytes() int64 {
	size := parseFloat(r.Format.Size)
	if size < 0 {
		return 0
	}
	return int64(size)
}

// BitRate returns the container bitrate in bits per second, or 0 when unavailable.
func (r Result) BitRate() int64 {
	rate := parseFloat(r.Format.BitRate)
	if rate < 0 {
		return 0
	}
	return int64(rate)
}

// HasAudio reports whether any audio stream is present.
func (r Result) HasAudio() bool {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			return true
		}
	}
	return false
}

// VideoDimensions returns the width and height of the first video stream, or
// zeros when the container carries no video stream metadata.
func (r Result) VideoDimensions() (int, int) {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "video") {
			return stream.Width, stream.Height
		}
	}
	return 0, 0
}

// MediaInfo condenses the probe result into the view the convergence engine
// consumes.
func (r Result) MediaInfo() compress.MediaInfo {
	width, height := r.VideoDimensions()
	return compress.MediaInfo{
		DurationSeconds: r.DurationSeconds(),
		HasAudio:        r.HasAudio(),
		Width:           width,
		Height:          height,
	}
}

// Inspector adapts ffprobe to the engine's Inspector contract. A zero value
// uses the default binary name.
type Inspector struct {
	Binary string
}

// Inspect probes the file and returns the condensed media view. A duration
// that cannot be determined is treated as unreadable media.
func (i Inspector) Inspect(ctx context.Context, path string) (compress.MediaInfo, error) {
	result, err := Inspect(ctx, i.Binary, path)
	if err != nil {
		return compress.MediaInfo{}, err
	}
	info := result.MediaInfo()
	if info.DurationSeconds <= 0 {
		return compress.MediaInfo{}, compress.Wrap(compress.ErrUnreadableMedia, "ffprobe inspect", "could not determine duration", nil)
	}
	return info, nil
}

var _ compress.Inspector = Inspector{}

func stderrOf(err error) string {
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return string(exit.Stderr)
	}
	return err.Error()
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return 0
}
