// ABOUTME: High-level Visualizer API wrapping the analysis engine
// ABOUTME: Builds an audio source, runs the pipeline, and exposes scenes
package soundscape

import (
	"context"
	"fmt"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/audio"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/engine"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/raster"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/render"
)

// Source supplies spectrum frames to the visualizer. Implement it to feed
// your own audio analysis in; each call fills dst with per-bin magnitudes
// in [0, 1].
type Source = audio.Source

// Config holds visualizer configuration
type Config struct {
	// AudioFile is an MP3 file to analyze. Leave empty to use the
	// built-in simulated source (or a custom Source).
	AudioFile string

	// Source supplies spectrum frames directly. Takes precedence over
	// AudioFile when set.
	Source Source

	// Mode is the initial visualization mode (default: "sacred")
	Mode string

	// Bins is the spectrum resolution (default: 128)
	Bins int

	// Intensity scales the visual response, clamped to [0.1, 2.0]
	// (default: 1.0)
	Intensity float64

	// Sensitivity scales the audio input, clamped to [0.1, 2.0]
	// (default: 1.0)
	Sensitivity float64
}

// Visualizer runs the analysis pipeline and renders scenes on demand
type Visualizer struct {
	eng    *engine.Engine
	source audio.Source
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a visualizer with the given configuration
func New(config Config) (*Visualizer, error) {
	if config.Bins == 0 {
		config.Bins = audio.DefaultBins
	}
	if config.Mode == "" {
		config.Mode = render.Modes()[0]
	}

	source := config.Source
	if source == nil {
		if config.AudioFile != "" {
			mp3, err := audio.NewMP3Source(config.AudioFile, config.Bins)
			if err != nil {
				return nil, fmt.Errorf("failed to open audio file: %w", err)
			}
			source = mp3
		} else {
			source = audio.NewSimulatedSource(config.Bins)
		}
	}

	eng, err := engine.New(engine.Config{
		Source:      source,
		Mode:        config.Mode,
		Intensity:   config.Intensity,
		Sensitivity: config.Sensitivity,
	})
	if err != nil {
		source.Close()
		return nil, err
	}

	return &Visualizer{eng: eng, source: source}, nil
}

// Start launches the analysis loop in the background. Call Stop to halt it.
func (v *Visualizer) Start() {
	if v.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.done = make(chan struct{})
	go func() {
		defer close(v.done)
		v.eng.Run(ctx)
	}()
}

// Stop halts the analysis loop and closes the audio source. Safe to call
// more than once.
func (v *Visualizer) Stop() {
	if v.cancel != nil {
		v.cancel()
		<-v.done
		v.cancel = nil
	}
	v.eng.Stop()
	v.source.Close()
}

// Scene renders the latest analysis with the active mode. Returns nil
// before the first analysis tick completes.
func (v *Visualizer) Scene(t, width, height float64) []render.Primitive {
	return v.eng.Scene(t, width, height)
}

// Snapshot returns the latest analysis result, or nil before the first tick
func (v *Visualizer) Snapshot() *engine.Snapshot {
	return v.eng.Snapshot()
}

// SetMode switches the active visualization mode
func (v *Visualizer) SetMode(name string) error {
	return v.eng.SetMode(name)
}

// Mode returns the active visualization mode name
func (v *Visualizer) Mode() string {
	return v.eng.Mode()
}

// Modes lists all available visualization modes in display order
func Modes() []string {
	return render.Modes()
}

// SetIntensity adjusts the visual response gain
func (v *Visualizer) SetIntensity(gain float64) {
	v.eng.SetIntensity(gain)
}

// SetSensitivity adjusts the audio input gain
func (v *Visualizer) SetSensitivity(gain float64) {
	v.eng.SetSensitivity(gain)
}

// SavePNG renders the latest scene to a PNG file. Returns an error before
// the first analysis tick.
func (v *Visualizer) SavePNG(path string, t float64, width, height int) error {
	prims := v.eng.Scene(t, float64(width), float64(height))
	if prims == nil {
		return fmt.Errorf("no scene available yet")
	}
	return raster.WritePNG(path, prims, width, height)
}
