package compress

import "math"

// ComputeVideoKbps derives the video bitrate in kbps that lands targetBytes
// after reserving the container overhead fraction and the audio stream bits.
// The result never falls below MinVideoKbps.
func ComputeVideoKbps(targetBytes int64, durationSeconds float64, audioKbps int, overhead float64) (int, error) {
	if durationSeconds <= 0 {
		return 0, Wrap(ErrInvalidInput, "derive bitrate", "duration must be positive", nil)
	}
	targetBits := float64(targetBytes) * 8.0 * (1.0 - overhead)
	videoBps := targetBits/durationSeconds - float64(audioKbps)*1000.0
	kbps := int(math.Floor(videoBps / 1000.0))
	if kbps < MinVideoKbps {
		kbps = MinVideoKbps
	}
	return kbps, nil
}

// correctedKbps applies the post-overshoot correction step. ratio is
// targetBytes/measuredSize; a badly overshot attempt (ratio < 0.85) gets the
// wider 0.96 margin, a near miss 0.98. The returned bitrate always strictly
// decreases until it reaches MinVideoKbps.
func correctedKbps(currentKbps int, ratio float64) int {
	margin := 0.98
	if ratio < 0.85 {
		margin = 0.96
	}
	next := int(math.Floor(float64(currentKbps) * ratio * margin))
	if next < MinVideoKbps {
		next = MinVideoKbps
	}
	if next >= currentKbps {
		next = currentKbps - 50
		if next < MinVideoKbps {
			next = MinVideoKbps
		}
	}
	return next
}
