// Package ffmpeg adapts the external ffmpeg binary: hardware encoder
// discovery and blocking encode invocations with line-oriented progress
// telemetry.
package ffmpeg
