package compress

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"squeeze/internal/fileutil"
	"squeeze/internal/logging"
)

// Request carries the parameters for one compression run.
type Request struct {
	InputPath      string
	OutputPath     string
	TargetBytes    int64
	Codec          Codec
	MaxRetries     int // bitrate-correction attempts per rung
	Overhead       float64
	StartMaxWidth  int
	StartFPS       int
	StartAudioKbps int
	MinAudioKbps   int
}

func (r Request) validate() error {
	if !r.Codec.Valid() {
		return Wrap(ErrInvalidInput, "validate request", fmt.Sprintf("codec must be h264 or hevc, got %q", r.Codec), nil)
	}
	if r.TargetBytes <= 0 {
		return Wrap(ErrInvalidInput, "validate request", "target size must be positive", nil)
	}
	if r.MaxRetries < 1 {
		return Wrap(ErrInvalidInput, "validate request", "retry budget must be at least 1", nil)
	}
	if r.Overhead < 0 || r.Overhead > 0.5 {
		return Wrap(ErrInvalidInput, "validate request", "overhead must be within [0, 0.5]", nil)
	}
	return nil
}

// Option configures a Compressor.
type Option func(*Compressor)

// WithLogger attaches a logger for attempt-level telemetry.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compressor) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver attaches a status observer for presentation callbacks.
func WithObserver(observer Observer) Option {
	return func(c *Compressor) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// Compressor orchestrates the convergence loop: it walks the quality ladder
// rung by rung, runs the bounded bitrate-correction sub-loop for each, and
// promotes the first candidate that lands under the target.
type Compressor struct {
	engine    Engine
	inspector Inspector
	logger    *slog.Logger
	observer  Observer
}

// New constructs a Compressor around the given engine and inspector adapters.
func New(engine Engine, inspector Inspector, opts ...Option) *Compressor {
	c := &Compressor{
		engine:    engine,
		inspector: inspector,
		logger:    logging.NewNop(),
		observer:  NopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run compresses the input under req.TargetBytes. It returns the terminal
// result on success, ErrTargetUnreachable once the ladder is exhausted, or
// the context error on cancellation. Intermediate candidates live in a
// scratch directory removed on every exit path; only the winning candidate
// ever reaches the destination.
func (c *Compressor) Run(ctx context.Context, req Request) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}

	info, err := c.inspector.Inspect(ctx, req.InputPath)
	if err != nil {
		return Result{}, err
	}
	if info.DurationSeconds <= 0 {
		return Result{}, Wrap(ErrUnreadableMedia, "inspect input", "could not determine duration", nil)
	}

	supported, err := c.engine.SupportsHardwareEncoder(ctx, req.Codec.String())
	if err != nil {
		return Result{}, err
	}
	if !supported {
		return Result{}, Wrap(ErrEncoderUnavailable, "check encoder", fmt.Sprintf("%s_videotoolbox not available", req.Codec), nil)
	}

	initialAudio := 0
	if info.HasAudio {
		initialAudio = req.StartAudioKbps
	}
	estimatedKbps, err := ComputeVideoKbps(req.TargetBytes, info.DurationSeconds, initialAudio, req.Overhead)
	if err != nil {
		return Result{}, err
	}

	ladder := BuildLadder(info, req.StartMaxWidth, req.StartFPS, req.StartAudioKbps, req.MinAudioKbps, estimatedKbps)
	rungs := ladder.Rungs()

	runID := uuid.NewString()
	logger := c.logger.With(
		logging.String("run_id", runID),
		logging.String("input", filepath.Base(req.InputPath)),
	)
	logger.Debug("ladder built",
		logging.Int("estimated_kbps", estimatedKbps),
		logging.Int("rungs", len(rungs)),
		logging.Any("widths", ladder.Widths),
		logging.Any("fps", ladder.FPSCandidates),
		logging.Any("audio_kbps", ladder.AudioKbpsCandidates),
	)

	scratch, err := os.MkdirTemp("", "squeeze-")
	if err != nil {
		return Result{}, fmt.Errorf("create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	attempt := 0
	for i, rung := range rungs {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		c.observer.RungStarted(i+1, len(rungs), rung)

		kbps, err := ComputeVideoKbps(req.TargetBytes, info.DurationSeconds, rung.AudioKbps, req.Overhead)
		if err != nil {
			return Result{}, err
		}

		for retry := 0; retry < req.MaxRetries; retry++ {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			attempt++
			candidate := filepath.Join(scratch, fmt.Sprintf("attempt_%d.mp4", attempt))
			plan := EncodePlan{
				Codec:          req.Codec,
				MaxWidth:       rung.MaxWidth,
				FPS:            rung.FPS,
				AudioKbps:      rung.AudioKbps,
				VideoKbps:      kbps,
				SafetyOverhead: req.Overhead,
			}
			c.observer.AttemptStarted(attempt, plan)
			logger.Debug("encode attempt",
				logging.Int("attempt", attempt),
				logging.Int("max_width", plan.MaxWidth),
				logging.Int("fps", plan.FPS),
				logging.Int("audio_kbps", plan.AudioKbps),
				logging.Int("video_kbps", plan.VideoKbps),
			)

			args := BuildArgs(req.InputPath, candidate, plan)
			if err := c.encode(ctx, args, info.DurationSeconds); err != nil {
				return Result{}, err
			}

			size, err := fileSize(candidate)
			if err != nil {
				return Result{}, Wrap(ErrProcessFailure, "measure candidate", "encoder produced no readable output", err)
			}
			c.observer.AttemptFinished(attempt, size, req.TargetBytes)
			logger.Debug("attempt measured",
				logging.Int("attempt", attempt),
				logging.Int64("size_bytes", size),
				logging.Int64("target_bytes", req.TargetBytes),
			)

			if size <= req.TargetBytes {
				return c.finish(ctx, req, plan, attempt, candidate)
			}

			ratio := float64(req.TargetBytes) / float64(size)
			next := correctedKbps(kbps, ratio)
			if next <= MinVideoKbps && kbps <= MinVideoKbps {
				// Both at the floor: this rung cannot reach the target.
				break
			}
			kbps = next
		}
	}

	last := rungs[len(rungs)-1]
	return Result{}, Wrap(ErrTargetUnreachable,
		"exhausted ladder",
		fmt.Sprintf("no combination down to %dpx/%dfps/audio %dkbps fit %d bytes; try a smaller target, hevc, or lower minimums",
			last.MaxWidth, last.FPS, last.AudioKbps, req.TargetBytes),
		nil)
}

func (c *Compressor) encode(ctx context.Context, args []string, durationSeconds float64) error {
	progress := func(outTimeSeconds float64) {
		if durationSeconds <= 0 {
			return
		}
		fraction := outTimeSeconds / durationSeconds
		if fraction > 1 {
			fraction = 1
		}
		c.observer.EncodeProgress(fraction)
	}
	if err := c.engine.Encode(ctx, args, progress); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// finish promotes the winning candidate to the destination and re-inspects it
// for final dimensions. Promotion is the only write that ever touches the
// destination path.
func (c *Compressor) finish(ctx context.Context, req Request, plan EncodePlan, attempts int, candidate string) (Result, error) {
	if dir := filepath.Dir(req.OutputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("ensure output directory: %w", err)
		}
	}
	if err := fileutil.Promote(candidate, req.OutputPath); err != nil {
		return Result{}, fmt.Errorf("promote candidate: %w", err)
	}

	width := plan.MaxWidth
	height := plan.MaxWidth * 9 / 16
	if out, err := c.inspector.Inspect(ctx, req.OutputPath); err == nil {
		if out.Width > 0 {
			width = out.Width
		}
		if out.Height > 0 {
			height = out.Height
		}
	}

	return Result{
		OutputPath: req.OutputPath,
		Attempts:   attempts,
		Width:      width,
		Height:     height,
		FPS:        plan.FPS,
		VideoKbps:  plan.VideoKbps,
		AudioKbps:  plan.AudioKbps,
		Codec:      plan.Codec,
	}, nil
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
