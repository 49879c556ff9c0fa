// ABOUTME: Feature extractor turning spectrum frames into musical descriptors
// ABOUTME: Owns the rolling beat/energy history and the previous-tick feature snapshot
package analysis

import (
	"math"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/audio"
)

// Mood is the coarse emotional reading of a frame
type Mood string

const (
	MoodCalm       Mood = "calm"
	MoodEnergetic  Mood = "energetic"
	MoodDramatic   Mood = "dramatic"
	MoodMysterious Mood = "mysterious"
	MoodJoyful     Mood = "joyful"
)

const (
	// BeatHistoryCap bounds the rolling rhythm history
	BeatHistoryCap = 20
	// EnergyHistoryCap bounds the rolling energy history
	EnergyHistoryCap = 20
	// DefaultTempo is reported until enough beat history accumulates
	DefaultTempo = 120.0

	tempoMin = 60.0
	tempoMax = 180.0
)

// Features holds the scalar musical descriptors of one analysis tick.
// Band averages, harmony, dynamics, and energy are clamped to [0,1];
// Rhythm and Melody can exceed 1 when history rewards a steady beat or a
// large melodic delta lands on the first tick. Downstream code treats that
// as signal, not error.
type Features struct {
	Bass     float64
	Mid      float64
	Treble   float64
	Rhythm   float64
	Melody   float64
	Harmony  float64
	Dynamics float64
	Energy   float64
	Tempo    float64
	Mood     Mood
}

// Extractor converts frames into Features, keeping only derived scalars
// across ticks: the previous Features for deltas plus the bounded beat and
// energy histories.
type Extractor struct {
	prev          *Features
	beatHistory   *History
	energyHistory *History
}

// NewExtractor creates an extractor with empty history
func NewExtractor() *Extractor {
	return &Extractor{
		beatHistory:   NewHistory(BeatHistoryCap),
		energyHistory: NewHistory(EnergyHistoryCap),
	}
}

// Previous returns the feature snapshot of the prior tick, or nil on the
// first tick
func (e *Extractor) Previous() *Features { return e.prev }

// BeatHistory exposes the rolling rhythm samples for display
func (e *Extractor) BeatHistory() []float64 { return e.beatHistory.Values() }

// EnergyHistory exposes the rolling energy samples for display
func (e *Extractor) EnergyHistory() []float64 { return e.energyHistory.Values() }

// Analyze derives Features from one frame and updates the rolling history.
// The frame is not retained.
func (e *Extractor) Analyze(frame audio.Frame) Features {
	n := len(frame)

	var bass, mid, treble float64
	if n > 0 {
		bass = Mean(frame[:n/4])
		mid = Mean(frame[n/4 : 3*n/4])
		treble = Mean(frame[3*n/4:])
	}

	rhythm := math.Max(bass*1.2, mid*0.8)
	if e.beatHistory.Len() >= 4 {
		rhythm *= 1 + beatConsistency(e.beatHistory.Last(4))*0.5
	}

	melody := mid*0.6 + treble*0.8
	if e.prev != nil {
		melody = math.Min(1, melody+0.3*math.Abs(melody-e.prev.Melody))
	}

	harmony := harmonicCoherence(frame)
	dynamics := math.Min(1, math.Sqrt(Variance(frame))*2)
	energy := math.Min(1, RMS(frame)*2)

	tempo := DefaultTempo
	if e.beatHistory.Len() >= 8 {
		tempo = math.Min(tempoMax, tempoMin+Mean(e.beatHistory.Last(8))*120)
	}

	f := Features{
		Bass:     bass,
		Mid:      mid,
		Treble:   treble,
		Rhythm:   rhythm,
		Melody:   melody,
		Harmony:  harmony,
		Dynamics: dynamics,
		Energy:   energy,
		Tempo:    tempo,
		Mood:     classifyMood(energy, harmony, dynamics),
	}

	e.beatHistory.Push(rhythm)
	e.energyHistory.Push(energy)
	prev := f
	e.prev = &prev

	return f
}

// beatConsistency rewards a steady rhythm: 1 at zero spread, 0 once the
// standard deviation reaches 1
func beatConsistency(v []float64) float64 {
	return math.Max(0, 1-math.Sqrt(Variance(v)))
}

// harmonicCoherence splits the frame into 8 equal segments and averages the
// Pearson correlation of the 7 adjacent pairs. Zero-variance segments
// correlate as 0, and a negative average is floored at 0.
func harmonicCoherence(frame audio.Frame) float64 {
	seg := len(frame) / 8
	if seg == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < 7; i++ {
		a := frame[i*seg : (i+1)*seg]
		b := frame[(i+1)*seg : (i+2)*seg]
		sum += Pearson(a, b)
	}
	return math.Max(0, sum/7)
}

// classifyMood walks the mood rules in order; the order is load-bearing
// because later rules can be shadowed by earlier ones
func classifyMood(energy, harmony, dynamics float64) Mood {
	switch {
	case energy < 0.3 && harmony > 0.6:
		return MoodCalm
	case energy > 0.7 && dynamics > 0.5:
		return MoodEnergetic
	case harmony < 0.4 && dynamics > 0.6:
		return MoodDramatic
	case energy < 0.5 && harmony < 0.5:
		return MoodMysterious
	default:
		return MoodJoyful
	}
}
