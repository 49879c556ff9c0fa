// ABOUTME: MP3 file spectrum source
// ABOUTME: Decodes PCM with go-mp3, windows and FFTs it, folds magnitudes into frame bins
package audio

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/mjibson/go-dsp/fft"
)

const (
	mp3FFTSize   = 2048
	mp3BytesPer  = 4 // 16-bit stereo
	mp3MakeupMul = 2.0
)

// MP3Source produces spectrum frames from an MP3 file. Each NextFrame call
// decodes the next 2048-sample chunk, mixes it to mono, applies a Hann
// window, FFTs it, and folds the magnitude spectrum into the configured bin
// count. The file loops when it ends.
type MP3Source struct {
	file    *os.File
	decoder *mp3.Decoder
	bins    int
	window  []float64
	mono    []float64
	pcm     []byte
}

// NewMP3Source opens path and prepares a frame source with the given bin count
func NewMP3Source(path string, bins int) (*MP3Source, error) {
	if bins <= 0 {
		bins = DefaultBins
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}

	d, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	window := make([]float64, mp3FFTSize)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(mp3FFTSize-1)))
	}

	return &MP3Source{
		file:    f,
		decoder: d,
		bins:    bins,
		window:  window,
		mono:    make([]float64, mp3FFTSize),
		pcm:     make([]byte, mp3FFTSize*mp3BytesPer),
	}, nil
}

// Bins returns the spectrum resolution
func (s *MP3Source) Bins() int { return s.bins }

// Close closes the underlying file
func (s *MP3Source) Close() error {
	return s.file.Close()
}

// NextFrame decodes the next chunk and fills dst with binned magnitudes
func (s *MP3Source) NextFrame(dst []float64) error {
	if err := s.readChunk(); err != nil {
		return err
	}

	for i := range s.mono {
		s.mono[i] *= s.window[i]
	}
	coeffs := fft.FFTReal(s.mono)

	half := mp3FFTSize / 2
	n := len(dst)
	if n == 0 {
		return nil
	}
	perBin := half / n
	if perBin < 1 {
		perBin = 1
	}

	for b := 0; b < n; b++ {
		start := b * perBin
		end := start + perBin
		if start >= half {
			dst[b] = 0
			continue
		}
		if end > half {
			end = half
		}
		var sum float64
		for k := start; k < end; k++ {
			sum += cmplx.Abs(coeffs[k]) * 2 / mp3FFTSize
		}
		mag := sum / float64(end-start)
		// Square-root compression keeps quiet content visible
		v := math.Sqrt(mag) * mp3MakeupMul
		if v > 1 {
			v = 1
		}
		dst[b] = v
	}
	return nil
}

// readChunk fills s.mono with the next mixed-down PCM chunk, looping at EOF
func (s *MP3Source) readChunk() error {
	filled := 0
	for filled < len(s.pcm) {
		nr, err := s.decoder.Read(s.pcm[filled:])
		filled += nr
		if err == io.EOF {
			if _, serr := s.decoder.Seek(0, io.SeekStart); serr != nil {
				return fmt.Errorf("failed to rewind mp3: %w", serr)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("mp3 decode error: %w", err)
		}
	}

	for i := range s.mono {
		l := int16(uint16(s.pcm[i*4]) | uint16(s.pcm[i*4+1])<<8)
		r := int16(uint16(s.pcm[i*4+2]) | uint16(s.pcm[i*4+3])<<8)
		s.mono[i] = (float64(l) + float64(r)) / 2 / 32768.0
	}
	return nil
}
