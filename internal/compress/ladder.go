package compress

// QualityLadder holds the ordered candidate sequences the controller walks.
// Each sequence is de-duplicated preserving first-seen order and is immutable
// once built.
type QualityLadder struct {
	Widths              []int
	FPSCandidates       []int
	AudioKbpsCandidates []int
}

// Rungs flattens the ladder into the fixed rung order the controller visits:
// width outermost, then frame rate, then audio. Resolution is preserved as
// long as possible; within a width the heuristically chosen fps goes first;
// audio degrades last.
func (l QualityLadder) Rungs() []Rung {
	rungs := make([]Rung, 0, len(l.Widths)*len(l.FPSCandidates)*len(l.AudioKbpsCandidates))
	for _, width := range l.Widths {
		for _, fps := range l.FPSCandidates {
			for _, audio := range l.AudioKbpsCandidates {
				rungs = append(rungs, Rung{MaxWidth: width, FPS: fps, AudioKbps: audio})
			}
		}
	}
	return rungs
}

// BuildLadder derives the degradation ladder from the source characteristics,
// the user-supplied caps, and the initial bitrate estimate. estimatedKbps
// feeds the bytes-per-frame heuristic that picks the starting frame rate; the
// fps sequence is computed once for the whole run and not re-derived per
// resolution rung.
func BuildLadder(info MediaInfo, startMaxWidth, startFPS, startAudioKbps, minAudioKbps, estimatedKbps int) QualityLadder {
	widthCaps := []int{startMaxWidth, 1920, 1600, 1280, 1024, 854, 640}
	widths := make([]int, 0, len(widthCaps))
	for _, capWidth := range widthCaps {
		widths = append(widths, scaledWidth(info.Width, capWidth))
	}

	optimal := optimalFPSForBitrate(estimatedKbps, startFPS)
	fpsCandidates := make([]int, 0, 4)
	for _, fps := range []int{optimal, 24, 30, 60} {
		if fps <= startFPS {
			fpsCandidates = append(fpsCandidates, fps)
		}
	}

	var audioCandidates []int
	if !info.HasAudio {
		audioCandidates = []int{0}
	} else {
		for _, a := range []int{startAudioKbps, 96, 64, minAudioKbps, 0} {
			if a == 0 || a >= minAudioKbps {
				audioCandidates = append(audioCandidates, a)
			}
		}
	}

	return QualityLadder{
		Widths:              uniquePreserve(widths),
		FPSCandidates:       uniquePreserve(fpsCandidates),
		AudioKbpsCandidates: uniquePreserve(audioCandidates),
	}
}

// optimalFPSForBitrate picks the highest frame rate that still leaves enough
// bytes per frame for readable text. At low bitrates fewer frames per second
// means more bits per frame, which dominates perceived quality for static
// screen content.
func optimalFPSForBitrate(availableKbps, maxFPS int) int {
	bytesPerSecond := float64(availableKbps) * 1000 / 8
	for _, fps := range []int{60, 30, 24} {
		if fps > maxFPS {
			continue
		}
		if bytesPerSecond/float64(fps) >= minBytesPerFrameText {
			return fps
		}
	}
	if maxFPS < 24 {
		return maxFPS
	}
	return 24
}

// scaledWidth caps the output width, never proposing upscaling when the
// source width is known.
func scaledWidth(sourceWidth, capWidth int) int {
	if sourceWidth <= 0 {
		return capWidth
	}
	if sourceWidth < capWidth {
		return sourceWidth
	}
	return capWidth
}

func uniquePreserve(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
