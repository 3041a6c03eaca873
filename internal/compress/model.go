package compress

import "context"

// Bitrate thresholds in kbps.
const (
	// MinVideoKbps is the floor below which video quality is unusable.
	MinVideoKbps = 50

	// lowBitrateKbps marks the point where the command builder widens the
	// rate-control window to protect static content.
	lowBitrateKbps = 500
)

// minBytesPerFrameText is the minimum bytes per frame for readable text in
// screen recordings, used by the frame-rate heuristic.
const minBytesPerFrameText = 3 * 1024

// Codec identifies a supported hardware video codec.
type Codec string

const (
	CodecH264 Codec = "h264"
	CodecHEVC Codec = "hevc"
)

// Valid reports whether the codec names a supported encoder family.
func (c Codec) Valid() bool {
	return c == CodecH264 || c == CodecHEVC
}

func (c Codec) String() string { return string(c) }

// MediaInfo captures the source characteristics the engine needs. Width and
// Height are 0 when the container lacks video stream metadata.
type MediaInfo struct {
	DurationSeconds float64
	HasAudio        bool
	Width           int
	Height          int
}

// EncodePlan describes one concrete encode attempt. Plans are values: every
// retry constructs a fresh plan with an adjusted VideoKbps.
type EncodePlan struct {
	Codec          Codec
	MaxWidth       int
	FPS            int
	AudioKbps      int // 0 disables the audio track entirely
	VideoKbps      int // always >= MinVideoKbps
	SafetyOverhead float64
}

// Rung is one fixed width/fps/audio combination in the degradation ladder.
type Rung struct {
	MaxWidth  int
	FPS       int
	AudioKbps int
}

// Result records a successful compression run.
type Result struct {
	OutputPath string
	Attempts   int
	Width      int
	Height     int
	FPS        int
	VideoKbps  int
	AudioKbps  int
	Codec      Codec
}

// Inspector queries duration, audio presence, and resolution for a media file.
type Inspector interface {
	Inspect(ctx context.Context, path string) (MediaInfo, error)
}

// Engine invokes the external transcoding engine. Encode blocks until the
// child process completes or ctx is cancelled; progress receives the encoder's
// output timestamp in seconds when the engine emits telemetry.
type Engine interface {
	SupportsHardwareEncoder(ctx context.Context, codec string) (bool, error)
	Encode(ctx context.Context, args []string, progress func(outTimeSeconds float64)) error
}
