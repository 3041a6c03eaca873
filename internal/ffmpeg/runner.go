package ffmpeg

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"squeeze/internal/compress"
)

var commandContext = exec.CommandContext

// Option configures the runner.
type Option func(*Runner)

// WithBinary overrides the default ffmpeg binary name.
func WithBinary(binary string) Option {
	return func(r *Runner) {
		if strings.TrimSpace(binary) != "" {
			r.binary = binary
		}
	}
}

// Runner wraps the ffmpeg command line. Encoder availability is probed once
// per codec and cached for the lifetime of the runner.
type Runner struct {
	binary string

	mu       sync.Mutex
	encoders map[string]bool
}

// NewRunner constructs a Runner using defaults.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{binary: "ffmpeg", encoders: make(map[string]bool)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SupportsHardwareEncoder reports whether the VideoToolbox encoder for the
// given codec family is compiled into the ffmpeg binary.
func (r *Runner) SupportsHardwareEncoder(ctx context.Context, codec string) (bool, error) {
	name := codec + "_videotoolbox"

	r.mu.Lock()
	if supported, ok := r.encoders[name]; ok {
		r.mu.Unlock()
		return supported, nil
	}
	r.mu.Unlock()

	if _, err := exec.LookPath(r.binary); err != nil {
		return false, compress.Wrap(compress.ErrToolUnavailable, "locate ffmpeg", fmt.Sprintf("binary %q not found in PATH", r.binary), nil)
	}

	cmd := commandContext(ctx, r.binary, "-hide_banner", "-encoders")
	output, err := cmd.Output()
	if err != nil {
		return false, compress.Wrap(compress.ErrProcessFailure, "list encoders", "", err)
	}
	supported := strings.Contains(string(output), name)

	r.mu.Lock()
	r.encoders[name] = supported
	r.mu.Unlock()
	return supported, nil
}

// Encode launches ffmpeg with the given arguments and blocks until the child
// exits or ctx is cancelled. The `-progress pipe:2` telemetry stream is
// consumed incrementally; out_time_ms lines are forwarded to progress as
// seconds of encoded output. A non-zero exit maps to ErrProcessFailure;
// cancellation kills the child and surfaces the context error.
func (r *Runner) Encode(ctx context.Context, args []string, progress func(outTimeSeconds float64)) error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return compress.Wrap(compress.ErrToolUnavailable, "locate ffmpeg", fmt.Sprintf("binary %q not found in PATH", r.binary), nil)
	}

	full := append([]string{"-progress", "pipe:2", "-nostats"}, args...)
	cmd := commandContext(ctx, r.binary, full...) //nolint:gosec
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return compress.Wrap(compress.ErrProcessFailure, "start ffmpeg", "", err)
	}

	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, ok := strings.CutPrefix(line, "out_time_ms=")
		if !ok {
			continue
		}
		// out_time_ms carries microseconds despite the name.
		micros, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			continue
		}
		if progress != nil {
			progress(float64(micros) / 1e6)
		}
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if exit, ok := err.(*exec.ExitError); ok {
			return compress.Wrap(compress.ErrProcessFailure, "run ffmpeg", fmt.Sprintf("exit code %d", exit.ExitCode()), nil)
		}
		return compress.Wrap(compress.ErrProcessFailure, "run ffmpeg", "", err)
	}
	return nil
}

var _ compress.Engine = (*Runner)(nil)
