// ABOUTME: Context classifier deriving higher-level musical situation
// ABOUTME: Beat drops, vocal presence, instrumental density, and genre hints
package analysis

import (
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/audio"
)

// Genre is a coarse stylistic hint, not a trained classification
type Genre string

const (
	GenreElectronic Genre = "electronic"
	GenreAcoustic   Genre = "acoustic"
	GenreClassical  Genre = "classical"
	GenreRock       Genre = "rock"
	GenreAmbient    Genre = "ambient"
	GenreVoice      Genre = "voice"
	// GenreMixed is declared for callers but never produced by Classify
	GenreMixed Genre = "mixed"
)

// Context is the per-tick musical situation derived from the current frame
// and features. It is recomputed fresh every tick and never persisted.
type Context struct {
	BeatDrop            bool
	VocalPresence       bool
	InstrumentalDensity float64
	EmotionalIntensity  float64
	Genre               Genre
}

// Classify derives the music context. prev is the previous tick's features,
// nil on the first tick (which disables beat-drop detection).
func Classify(frame audio.Frame, f Features, prev *Features) Context {
	n := len(frame)

	beatDrop := prev != nil &&
		f.Bass-prev.Bass > 0.3 &&
		f.Energy-prev.Energy > 0.2

	// Fundamental and formant windows, scaled from the reference 128-bin
	// layout: [8,24) and [80,120)
	var vocal bool
	if n > 0 {
		lo := Mean(frame[n*8/128 : n*24/128])
		hi := Mean(frame[n*80/128 : n*120/128])
		vocal = (lo+hi)/2 > 0.4
	}

	var density float64
	if n > 0 {
		active := 0
		for _, v := range frame {
			if v > 0.1 {
				active++
			}
		}
		density = float64(active) / float64(n)
	}

	return Context{
		BeatDrop:            beatDrop,
		VocalPresence:       vocal,
		InstrumentalDensity: density,
		EmotionalIntensity:  (f.Energy + f.Dynamics + f.Harmony) / 3,
		Genre:               classifyGenre(f),
	}
}

// classifyGenre walks the genre rules in order, first match wins
func classifyGenre(f Features) Genre {
	switch {
	case f.Bass > 0.7 && f.Energy > 0.6:
		return GenreElectronic
	case f.Harmony > 0.7 && f.Energy < 0.4:
		return GenreClassical
	case f.Rhythm > 0.6 && f.Bass > 0.5:
		return GenreRock
	case f.Energy < 0.3 && f.Harmony > 0.5:
		return GenreAmbient
	case f.Mid > 0.6 && f.Melody > 0.5:
		return GenreVoice
	default:
		return GenreAcoustic
	}
}
