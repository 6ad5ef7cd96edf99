package voice

// lowBandwidthRate is the target rate for poor-network delivery.
const lowBandwidthRate = 16000

// Postprocess shapes raw engine output for the caller's network quality:
//
//	poor/2g:   resample to 16 kHz, peak-normalize to 80% of full scale
//	medium/3g: peak-normalize to 90% of full scale
//	otherwise: peak-normalize to full scale
//
// The transform is pure; the input slice is never modified.
func Postprocess(samples []float32, rate int, quality NetworkQuality) ([]float32, int) {
	switch quality {
	case NetworkPoor:
		out := resample(samples, rate, lowBandwidthRate)
		return normalize(out, 0.8), lowBandwidthRate

	case NetworkMedium:
		return normalize(samples, 0.9), rate

	default:
		return normalize(samples, 1.0), rate
	}
}

// normalize scales so the peak absolute sample lands on gain. Silence is
// returned unchanged.
func normalize(samples []float32, gain float32) []float32 {
	var peak float32

	for _, s := range samples {
		if s > peak {
			peak = s
		}

		if -s > peak {
			peak = -s
		}
	}

	out := make([]float32, len(samples))

	if peak == 0 {
		copy(out, samples)
		return out
	}

	scale := gain / peak

	for i, s := range samples {
		out[i] = s * scale
	}

	return out
}

// resample converts between rates by linear interpolation. Good enough for
// speech headed to a constrained link; callers wanting fidelity keep the
// original rate.
func resample(samples []float32, from, to int) []float32 {
	if from == to || len(samples) == 0 {
		out := make([]float32, len(samples))
		copy(out, samples)

		return out
	}

	ratio := float64(from) / float64(to)
	n := int(float64(len(samples)) / ratio)

	if n == 0 {
		n = 1
	}

	out := make([]float32, n)

	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)

		if idx >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}

		frac := float32(pos - float64(idx))
		out[i] = samples[idx]*(1-frac) + samples[idx+1]*frac
	}

	return out
}
