// ABOUTME: Frame source interface for spectrum providers
// ABOUTME: Implemented by the simulated source and the MP3 file source
package audio

// Source delivers spectrum frames at the analysis cadence.
//
// NextFrame fills dst (length Bins()) with the next snapshot. Pacing is the
// caller's job; implementations produce a frame per call without blocking on
// wall-clock time.
type Source interface {
	NextFrame(dst []float64) error
	Bins() int
	Close() error
}
