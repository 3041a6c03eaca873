package ffprobe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"squeeze/internal/compress"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video", Width: 1920, Height: 1080},
			{CodecType: "audio", Channels: 2},
		},
		Format: Format{
			Duration: "123.45",
			Size:     "1000",
			BitRate:  "32000",
		},
	}
	if !result.HasAudio() {
		t.Fatal("expected audio stream to be detected")
	}
	if width, height := result.VideoDimensions(); width != 1920 || height != 1080 {
		t.Fatalf("unexpected dimensions: %dx%d", width, height)
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 1000 {
		t.Fatalf("unexpected size: %d", result.SizeBytes())
	}
	if result.BitRate() != 32000 {
		t.Fatalf("unexpected bitrate: %d", result.BitRate())
	}
}

func TestResultHelpersHandleInvalidNumbers(t *testing.T) {
	result := Result{
		Format: Format{
			Duration: "bad",
			Size:     "-1",
			BitRate:  "nope",
		},
	}
	if result.DurationSeconds() != 0 {
		t.Fatalf("expected duration 0, got %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 0 {
		t.Fatalf("expected size 0, got %d", result.SizeBytes())
	}
	if result.BitRate() != 0 {
		t.Fatalf("expected bitrate 0, got %d", result.BitRate())
	}
}

func TestResultHelpersWithoutVideoStream(t *testing.T) {
	result := Result{Streams: []Stream{{CodecType: "audio"}}}
	if width, height := result.VideoDimensions(); width != 0 || height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", width, height)
	}
	if !result.HasAudio() {
		t.Fatal("expected audio stream to be detected")
	}
}

func TestMediaInfoCondensesResult(t *testing.T) {
	result := Result{
		Streams: []Stream{{CodecType: "video", Width: 1280, Height: 720}},
		Format:  Format{Duration: "30"},
	}
	info := result.MediaInfo()
	if info.DurationSeconds != 30 {
		t.Fatalf("unexpected duration: %v", info.DurationSeconds)
	}
	if info.HasAudio {
		t.Fatal("expected no audio")
	}
	if info.Width != 1280 || info.Height != 720 {
		t.Fatalf("unexpected dimensions: %dx%d", info.Width, info.Height)
	}
}

func TestInspectRequiresPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestInspectParsesJSON(t *testing.T) {
	original := commandContext
	var capturedArgs []string
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		capturedArgs = append([]string(nil), args...)
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FFPROBE_HELPER_MODE=json")
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})

	result, err := Inspect(context.Background(), os.Args[0], "/media/clip.mp4")
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if result.DurationSeconds() != 60.5 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if width, height := result.VideoDimensions(); width != 1920 || height != 1080 {
		t.Fatalf("unexpected dimensions: %dx%d", width, height)
	}
	if !result.HasAudio() {
		t.Fatal("expected audio stream")
	}
	if len(capturedArgs) == 0 || capturedArgs[len(capturedArgs)-1] != "/media/clip.mp4" {
		t.Fatalf("expected path as final argument, got %v", capturedArgs)
	}
}

func TestInspectWrapsProcessFailure(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FFPROBE_HELPER_MODE=fail")
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})

	_, err := Inspect(context.Background(), os.Args[0], "/media/broken.mp4")
	if !errors.Is(err, compress.ErrUnreadableMedia) {
		t.Fatalf("expected ErrUnreadableMedia, got %v", err)
	}
}

func TestInspectorRejectsZeroDuration(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FFPROBE_HELPER_MODE=noduration")
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})

	inspector := Inspector{Binary: os.Args[0]}
	_, err := inspector.Inspect(context.Background(), "/media/clip.mp4")
	if !errors.Is(err, compress.ErrUnreadableMedia) {
		t.Fatalf("expected ErrUnreadableMedia, got %v", err)
	}
}

func TestInspectMissingBinary(t *testing.T) {
	_, err := Inspect(context.Background(), "definitely-not-a-real-binary-1b6c", "/media/clip.mp4")
	if !errors.Is(err, compress.ErrToolUnavailable) {
		t.Fatalf("expected ErrToolUnavailable, got %v", err)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("FFPROBE_HELPER_MODE") {
	case "json":
		fmt.Print(`{"streams":[{"index":0,"codec_type":"video","codec_name":"h264","width":1920,"height":1080},{"index":1,"codec_type":"audio","codec_name":"aac","channels":2}],"format":{"duration":"60.5","size":"8000000","bit_rate":"1058000","format_name":"mov,mp4"}}`)
		os.Exit(0)
	case "noduration":
		fmt.Print(`{"streams":[{"index":0,"codec_type":"video","width":1280,"height":720}],"format":{}}`)
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "moov atom not found")
		os.Exit(1)
	}
	os.Exit(0)
}
