// Package audio plays the game's sound cues through the beep speaker.
package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(48000)

	// resampleQuality trades CPU for fidelity when a file's rate differs
	resampleQuality = 4
)

// Cue is a short sound that can be triggered any number of times.
type Cue interface {
	Play()
}

// Silent is a Cue that plays nothing. It stands in for sounds that failed
// to load or when no audio device is available.
type Silent struct{}

// Play does nothing.
func (Silent) Play() {}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64 // linear gain, 0..1
}

// NewSoundManager creates a new sound manager playing cues at volume
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// LoadCue decodes an mp3 or wav file into memory
func (sm *SoundManager) LoadCue(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound %s: %w", path, err)
	}

	streamer, format, err := decode(filepath.Ext(path), f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
	}

	format.SampleRate = sampleRate
	buf := beep.NewBuffer(format)
	buf.Append(s)

	return &Sample{sm: sm, buf: buf}, nil
}

func decode(ext string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".mp3":
		return mp3.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported sound format %q", ext)
	}
}

func (sm *SoundManager) play(buf *beep.Buffer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}

	// Volume is exponential: gain = Base^Volume
	v := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   math.Log2(sm.volume),
	}

	speaker.Lock()
	sm.mixer.Add(v)
	speaker.Unlock()
}

// Sample is a decoded sound held in memory
type Sample struct {
	sm  *SoundManager
	buf *beep.Buffer
}

// Play mixes a fresh copy of the sample into the output
func (s *Sample) Play() {
	s.sm.play(s.buf)
}

// Len returns the sample length in frames at the output rate
func (s *Sample) Len() int {
	return s.buf.Len()
}
