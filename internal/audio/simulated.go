// ABOUTME: Simulated spectrum generator for driving the pipeline without audio input
// ABOUTME: Synthesizes a beat pulse, harmonic stack, and noise floor from phase accumulators
package audio

import (
	"math"
)

const (
	simulatedBPM       = 124.0
	simulatedTickSecs  = float64(AnalysisIntervalMs) / 1000.0
	simulatedNoiseSeed = 0x9e3779b9
)

// SimulatedSource synthesizes a plausible musical spectrum: a decaying bass
// thump on every beat, a slowly wandering harmonic stack in the mids, and a
// deterministic treble noise floor. Output is fully determined by the tick
// counter, so two sources produce identical streams.
type SimulatedSource struct {
	bins int
	tick uint64
}

// NewSimulatedSource creates a simulated source with the given resolution
func NewSimulatedSource(bins int) *SimulatedSource {
	if bins <= 0 {
		bins = DefaultBins
	}
	return &SimulatedSource{bins: bins}
}

// Bins returns the spectrum resolution
func (s *SimulatedSource) Bins() int { return s.bins }

// Close releases nothing; the source is purely computational
func (s *SimulatedSource) Close() error { return nil }

// NextFrame fills dst with the next synthetic spectrum snapshot
func (s *SimulatedSource) NextFrame(dst []float64) error {
	t := float64(s.tick) * simulatedTickSecs
	s.tick++

	beatPeriod := 60.0 / simulatedBPM
	beatPhase := math.Mod(t, beatPeriod) / beatPeriod
	thump := math.Exp(-beatPhase * 6.0)

	n := len(dst)
	for i := range dst {
		pos := 0.0
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}

		// Bass: beat-locked thump concentrated in the lowest quarter
		bass := thump * math.Exp(-pos*10.0)

		// Mids: three harmonic peaks drifting slowly over time
		var mids float64
		for h := 1; h <= 3; h++ {
			center := 0.3 + 0.1*float64(h) + 0.05*math.Sin(t*0.37*float64(h))
			width := 0.03
			d := (pos - center) / width
			mids += 0.4 / float64(h) * math.Exp(-d*d)
		}

		// Treble: deterministic noise fading toward the top bin
		noise := pseudoNoise(s.tick, uint64(i))
		treble := noise * 0.25 * (1 - pos*0.5)
		if pos < 0.75 {
			treble *= pos / 0.75
		}

		v := bass + mids + treble
		if v > 1 {
			v = 1
		}
		dst[i] = v
	}
	return nil
}

// pseudoNoise hashes (tick, bin) into [0,1) without shared RNG state
func pseudoNoise(tick, bin uint64) float64 {
	x := tick*simulatedNoiseSeed + bin*0x85ebca6b
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	return float64(x%10000) / 10000.0
}
