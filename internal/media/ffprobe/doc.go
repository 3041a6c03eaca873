// Package ffprobe provides a typed wrapper around ffprobe JSON output and
// the media Inspector adapter the convergence engine consumes.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video stream properties
//   - Format: container-level metadata (duration, size, bitrate)
//   - Inspector: adapts Inspect to the compress.Inspector contract
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns parsed Result
package ffprobe
