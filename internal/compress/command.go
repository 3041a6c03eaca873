package compress

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildArgs translates an encode plan into the literal ffmpeg argument list
// for one attempt. The mapping is deterministic and pure; invalid plan values
// are caller bugs, not runtime failures.
//
// Quality choices baked in: lanczos scaling capped at MaxWidth (never
// upscaling), HDR to SDR normalization, spatial adaptive quantization, large
// GOPs for static content, and a rate-control window that widens under the
// low-bitrate threshold so the controller has room to protect static frames.
func BuildArgs(inputPath, outputPath string, plan EncodePlan) []string {
	vcodec := plan.Codec.String() + "_videotoolbox"
	lowBitrate := plan.VideoKbps < lowBitrateKbps

	filter := strings.Join([]string{
		fmt.Sprintf("scale='min(%d,iw)':-2:flags=lanczos+accurate_rnd", plan.MaxWidth),
		"colorspace=all=bt709:iall=bt2020:fast=1",
		"format=yuv420p",
	}, ",")

	gopMultiplier := 4
	maxrateMult := 2.0
	bufsizeMult := 4.0
	if lowBitrate {
		gopMultiplier = 6
		maxrateMult = 1.5
		bufsizeMult = 6.0
	}
	gopSize := plan.FPS * gopMultiplier
	if gopSize > 300 {
		gopSize = 300
	}

	codecTag := "avc1"
	if plan.Codec == CodecHEVC {
		codecTag = "hvc1"
	}

	args := []string{
		"-y",
		"-i", inputPath,
		"-map", "0:v:0",
		"-map", "0:a:0?",
		"-map_metadata", "-1",
		"-movflags", "+faststart",
		"-vf", filter,
		"-r", strconv.Itoa(plan.FPS),
		"-c:v", vcodec,
		"-b:v", fmt.Sprintf("%dk", plan.VideoKbps),
		"-maxrate", fmt.Sprintf("%dk", int(float64(plan.VideoKbps)*maxrateMult)),
		"-bufsize", fmt.Sprintf("%dk", int(float64(plan.VideoKbps)*bufsizeMult)),
		"-spatial_aq", "1",
		"-realtime", "0",
		"-prio_speed", "0",
		"-max_ref_frames", "4",
		"-g", strconv.Itoa(gopSize),
		"-bf", "3",
		"-profile:v", "main",
		"-pix_fmt", "yuv420p",
		"-tag:v", codecTag,
	}

	if plan.AudioKbps > 0 {
		args = append(args, "-c:a", "aac", "-b:a", fmt.Sprintf("%dk", plan.AudioKbps))
	} else {
		args = append(args, "-an")
	}

	return append(args, outputPath)
}
