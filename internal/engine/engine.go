// ABOUTME: Pipeline engine running the analysis tick and publishing snapshots
// ABOUTME: Atomic whole-snapshot replacement keeps renders consistent at any cadence
package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/analysis"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/audio"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/palette"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/render"
)

const (
	// DefaultMode is active until a caller switches modes
	DefaultMode = "sacred"

	// Gain bounds for the intensity and sensitivity tunables
	GainMin = 0.1
	GainMax = 2.0
)

// Config holds engine configuration
type Config struct {
	Source      audio.Source
	Mode        string
	Intensity   float64
	Sensitivity float64
	Rand        palette.Rand // nil uses a time-seeded source
}

// Snapshot is one published analysis result. It is immutable: the engine
// replaces the whole object each tick and never mutates a published one.
type Snapshot struct {
	Frame    audio.Frame
	Features analysis.Features
	Context  analysis.Context
	Palette  palette.Palette
	Tick     uint64
}

// Engine owns the feature → context → palette chain. A single goroutine
// runs the analysis tick; renders read the latest snapshot lock-free, at
// their own cadence, without ever delaying analysis.
type Engine struct {
	source    audio.Source
	extractor *analysis.Extractor
	generator *palette.Generator

	mode        atomic.Value // string
	intensity   atomic.Uint64
	sensitivity atomic.Uint64
	snapshot    atomic.Pointer[Snapshot]

	scratch []float64
	ticks   uint64

	stopChan chan struct{}
	stopOnce sync.Once
}

// New creates an engine for the given source
func New(cfg Config) (*Engine, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("engine requires a frame source")
	}
	mode := cfg.Mode
	if mode == "" {
		mode = DefaultMode
	}
	if _, ok := render.Lookup(mode); !ok {
		return nil, fmt.Errorf("unknown visualization mode %q", mode)
	}

	e := &Engine{
		source:    cfg.Source,
		extractor: analysis.NewExtractor(),
		generator: palette.NewGenerator(cfg.Rand),
		scratch:   make([]float64, cfg.Source.Bins()),
		stopChan:  make(chan struct{}),
	}
	e.mode.Store(mode)
	e.SetIntensity(defaultGain(cfg.Intensity))
	e.SetSensitivity(defaultGain(cfg.Sensitivity))
	return e, nil
}

func defaultGain(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// Run drives the analysis tick until the context is cancelled or Stop is
// called. Render calls stay valid after Run returns; they keep serving the
// last snapshot.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(audio.AnalysisIntervalMs * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopChan:
			return
		case <-ticker.C:
			if err := e.tick(); err != nil {
				log.Printf("analysis tick failed: %v", err)
			}
		}
	}
}

// Stop halts the analysis tick. Safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopChan)
	})
}

// tick runs one full analysis pass: frame → features → context → palette,
// strictly in that order, then publishes the result as a fresh snapshot.
func (e *Engine) tick() error {
	if err := e.source.NextFrame(e.scratch); err != nil {
		return err
	}

	frame := audio.Frame(e.scratch).Clone()
	frame.Scale(e.Intensity() * e.Sensitivity())

	prev := e.extractor.Previous()
	features := e.extractor.Analyze(frame)
	mctx := analysis.Classify(frame, features, prev)
	pal := e.generator.Generate(features, mctx)

	e.ticks++
	e.snapshot.Store(&Snapshot{
		Frame:    frame,
		Features: features,
		Context:  mctx,
		Palette:  pal,
		Tick:     e.ticks,
	})
	return nil
}

// Snapshot returns the most recently published analysis result, or nil
// before the first tick
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// Scene renders the latest snapshot with the active mode. Before the first
// tick it returns nil; callers draw nothing for that frame.
func (e *Engine) Scene(t float64, width, height float64) []render.Primitive {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil
	}
	m, _ := render.Lookup(e.Mode())
	return m.Render(render.Input{
		Frame:    snap.Frame,
		Time:     t,
		Features: snap.Features,
		Palette:  snap.Palette,
		Width:    width,
		Height:   height,
	})
}

// SetMode switches the active visualization. Extractor and palette history
// survive the switch untouched.
func (e *Engine) SetMode(name string) error {
	if _, ok := render.Lookup(name); !ok {
		return fmt.Errorf("unknown visualization mode %q", name)
	}
	e.mode.Store(name)
	return nil
}

// Mode returns the active mode name
func (e *Engine) Mode() string {
	return e.mode.Load().(string)
}

// SetIntensity clamps and stores the pre-pipeline amplitude gain
func (e *Engine) SetIntensity(v float64) {
	e.intensity.Store(math.Float64bits(clampGain(v)))
}

// Intensity returns the current amplitude gain
func (e *Engine) Intensity() float64 {
	return math.Float64frombits(e.intensity.Load())
}

// SetSensitivity stores the secondary amplitude gain. It rides on top of
// intensity; the analysis itself never reads it separately.
func (e *Engine) SetSensitivity(v float64) {
	e.sensitivity.Store(math.Float64bits(clampGain(v)))
}

// Sensitivity returns the secondary amplitude gain
func (e *Engine) Sensitivity() float64 {
	return math.Float64frombits(e.sensitivity.Load())
}

// PaletteHistoryLen reports the smoothing history depth. Only meaningful
// from the goroutine driving the ticks.
func (e *Engine) PaletteHistoryLen() int {
	return e.generator.HistoryLen()
}

func clampGain(v float64) float64 {
	if v < GainMin {
		return GainMin
	}
	if v > GainMax {
		return GainMax
	}
	return v
}
