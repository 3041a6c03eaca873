package config

const (
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultCodec         = "hevc"
	defaultTarget        = "8MB"
	defaultMaxRetries    = 3
	defaultOverhead      = 0.02
	defaultMaxWidth      = 1920
	defaultMaxFPS        = 60
	defaultAudioKbps     = 96
	defaultMinAudioKbps  = 48
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Encoding: Encoding{
			Codec:        defaultCodec,
			Target:       defaultTarget,
			MaxRetries:   defaultMaxRetries,
			Overhead:     defaultOverhead,
			MaxWidth:     defaultMaxWidth,
			MaxFPS:       defaultMaxFPS,
			AudioKbps:    defaultAudioKbps,
			MinAudioKbps: defaultMinAudioKbps,
		},
		Output: Output{
			Color:     true,
			LogLevel:  defaultLogLevel,
			LogFormat: defaultLogFormat,
		},
	}
}
