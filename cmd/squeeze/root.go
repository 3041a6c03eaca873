package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"squeeze/internal/clipboard"
	"squeeze/internal/compress"
	"squeeze/internal/config"
	"squeeze/internal/ffmpeg"
	"squeeze/internal/logging"
	"squeeze/internal/media/ffprobe"
	"squeeze/internal/sizespec"
)

const version = "1.0.0"

type rootOptions struct {
	configPath   string
	output       string
	target       string
	codec        string
	maxRetries   int
	overhead     float64
	maxWidth     int
	maxFPS       int
	audioKbps    int
	minAudioKbps int
	verbose      bool
	quiet        bool
	noColor      bool
	copyToClip   bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "squeeze INPUT",
		Short:         "Compress a video to a target file size using VideoToolbox hardware encoding",
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, args[0], opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Output path (default: <input>_compressed.mp4)")
	flags.StringVarP(&opts.target, "target", "t", "", "Target size, e.g. 8MB, 7.9MB, 8MiB, 25000000")
	flags.StringVar(&opts.codec, "codec", "", "Video codec: hevc (smaller) or h264 (more compatible)")
	flags.IntVar(&opts.maxRetries, "max-retries", 0, "Bitrate correction attempts per quality rung")
	flags.Float64Var(&opts.overhead, "overhead", -1, "Container overhead safety margin (0.0-0.5)")
	flags.IntVar(&opts.maxWidth, "max-width", 0, "Maximum output width")
	flags.IntVar(&opts.maxFPS, "fps", 0, "Maximum frame rate")
	flags.IntVar(&opts.audioKbps, "audio-kbps", -1, "Starting audio bitrate in kbps")
	flags.IntVar(&opts.minAudioKbps, "min-audio-kbps", -1, "Minimum audio bitrate before disabling audio")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Show detailed progress")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all output except errors and the output path")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.copyToClip, "copy", "c", false, "Copy the output file to the clipboard on success")

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Configuration file path")

	rootCmd.AddCommand(newInspectCommand(opts))
	rootCmd.AddCommand(newDepsCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

// mergeConfig folds the config file values under any flags the user set.
func mergeConfig(cfg *config.Config, opts *rootOptions) {
	if opts.target == "" {
		opts.target = cfg.Encoding.Target
	}
	if opts.codec == "" {
		opts.codec = cfg.Encoding.Codec
	}
	if opts.maxRetries == 0 {
		opts.maxRetries = cfg.Encoding.MaxRetries
	}
	if opts.overhead < 0 {
		opts.overhead = cfg.Encoding.Overhead
	}
	if opts.maxWidth == 0 {
		opts.maxWidth = cfg.Encoding.MaxWidth
	}
	if opts.maxFPS == 0 {
		opts.maxFPS = cfg.Encoding.MaxFPS
	}
	if opts.audioKbps < 0 {
		opts.audioKbps = cfg.Encoding.AudioKbps
	}
	if opts.minAudioKbps < 0 {
		opts.minAudioKbps = cfg.Encoding.MinAudioKbps
	}
	if !cfg.Output.Color {
		opts.noColor = true
	}
}

func validateOptions(opts *rootOptions) error {
	if opts.maxWidth < 128 {
		return fmt.Errorf("max width must be at least 128 pixels")
	}
	if opts.maxFPS < 1 || opts.maxFPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120")
	}
	if opts.overhead < 0 || opts.overhead > 0.5 {
		return fmt.Errorf("overhead must be between 0.0 and 0.5")
	}
	return nil
}

func defaultOutputPath(inputPath string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), stem+"_compressed.mp4")
}

func runCompress(cmd *cobra.Command, input string, opts *rootOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, _, _, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	mergeConfig(cfg, opts)
	if err := validateOptions(opts); err != nil {
		return err
	}

	cons := newConsole(consoleOptions{
		verbose: opts.verbose,
		quiet:   opts.quiet,
		noColor: opts.noColor,
	})

	inputPath, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	stat, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("input not found: %s", inputPath)
	}
	if stat.IsDir() {
		return fmt.Errorf("input is not a file: %s", inputPath)
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	targetBytes, err := sizespec.Parse(opts.target)
	if err != nil {
		return err
	}

	logLevel := cfg.Output.LogLevel
	if opts.verbose {
		logLevel = "debug"
	}
	logger, err := logging.New(logging.Options{Level: logLevel, Format: cfg.Output.LogFormat, Writer: os.Stderr})
	if err != nil {
		return err
	}
	if !opts.verbose {
		logger = logging.NewNop()
	}

	inspector := ffprobe.Inspector{Binary: cfg.Tools.FFprobe}
	engine := ffmpeg.NewRunner(ffmpeg.WithBinary(cfg.Tools.FFmpeg))

	// Pre-run facts.
	probe, err := ffprobe.Inspect(ctx, cfg.Tools.FFprobe, inputPath)
	if err != nil {
		return err
	}
	cons.info("Input: " + filepath.Base(inputPath))
	cons.result("Size", formatSize(stat.Size()))
	cons.result("Duration", formatDuration(probe.DurationSeconds()))
	if width, height := probe.VideoDimensions(); width > 0 && height > 0 {
		cons.result("Resolution", fmt.Sprintf("%dx%d", width, height))
	}
	cons.result("Audio", yesNo(probe.HasAudio()))
	cons.blank()
	cons.status(fmt.Sprintf("Compressing to %s (%s)", formatSize(targetBytes), strings.ToUpper(opts.codec)))

	// Guard the destination against a concurrent run.
	lockPath := outputPath + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock destination: %w", err)
	}
	if !locked {
		return fmt.Errorf("another squeeze run is already writing %s", outputPath)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	observer := newRunObserver(cons, opts.verbose, opts.quiet)
	compressor := compress.New(engine, inspector,
		compress.WithLogger(logger),
		compress.WithObserver(observer),
	)

	started := time.Now()
	result, err := compressor.Run(ctx, compress.Request{
		InputPath:      inputPath,
		OutputPath:     outputPath,
		TargetBytes:    targetBytes,
		Codec:          compress.Codec(opts.codec),
		MaxRetries:     opts.maxRetries,
		Overhead:       opts.overhead,
		StartMaxWidth:  opts.maxWidth,
		StartFPS:       opts.maxFPS,
		StartAudioKbps: opts.audioKbps,
		MinAudioKbps:   opts.minAudioKbps,
	})
	observer.close()
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	if opts.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), result.OutputPath)
	} else {
		cons.blank()
		cons.success("Compressed: " + filepath.Base(result.OutputPath))
		fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summaryData{
			result:       result,
			inputSize:    stat.Size(),
			targetBytes:  targetBytes,
			durationSecs: probe.DurationSeconds(),
			elapsed:      elapsed,
		}))
	}

	if opts.copyToClip {
		if err := clipboard.Copy(ctx, result.OutputPath); err != nil {
			cons.warning("Clipboard copy failed: " + err.Error())
		} else {
			cons.success("Copied file to clipboard")
		}
	}

	return nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
