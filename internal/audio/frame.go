// ABOUTME: Spectrum frame type for the analysis pipeline
// ABOUTME: Fixed-length magnitude snapshot, ascending frequency order
package audio

const (
	// DefaultBins is the spectrum resolution handed to the pipeline
	DefaultBins = 128

	// AnalysisIntervalMs is the cadence of the analysis tick
	AnalysisIntervalMs = 50
)

// Frame is one spectrum snapshot: ordered magnitudes, index order is
// ascending frequency bin. Values are expected in [0,1] but never rejected.
type Frame []float64

// Sample returns the magnitude at bin i, or 0 when i is out of range
func (f Frame) Sample(i int) float64 {
	if i < 0 || i >= len(f) {
		return 0
	}
	return f[i]
}

// Clone returns an independent copy of the frame
func (f Frame) Clone() Frame {
	out := make(Frame, len(f))
	copy(out, f)
	return out
}

// Scale multiplies every magnitude by gain in place
func (f Frame) Scale(gain float64) {
	for i := range f {
		f[i] *= gain
	}
}
