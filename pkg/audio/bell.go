// Package audio plays the short tone used as boundary feedback.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 880
	toneLength = 60 * time.Millisecond
)

// Bell plays a short sine tone. A Bell whose speaker failed to open, or a
// nil Bell, is silent.
type Bell struct {
	mu    sync.Mutex
	ready bool
}

// NewBell opens the default audio device. Failure is logged and leaves a
// silent Bell; the viewer works without sound.
func NewBell(logger *slog.Logger) *Bell {
	b := &Bell{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, bell disabled", "error", err)
		}
		return b
	}
	b.ready = true
	return b
}

// Ready reports whether the bell can make sound.
func (b *Bell) Ready() bool {
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

// Ring plays the tone without blocking.
func (b *Bell) Ring() {
	if !b.Ready() {
		return
	}
	sine, err := generators.SineTone(sampleRate, toneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLength), sine))
}

// Close releases the audio device.
func (b *Bell) Close() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ready {
		speaker.Close()
		b.ready = false
	}
}
