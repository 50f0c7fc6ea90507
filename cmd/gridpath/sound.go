package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	toneRate     = beep.SampleRate(44100)
	toneHz       = 880
	toneDuration = 120 * time.Millisecond
)

// tone plays a short sine beep when a path is found.
type tone struct {
	ready bool
}

// newTone initialises the speaker. A failure leaves a silent tone, so the
// viewer runs without sound.
func newTone() (*tone, error) {
	if err := speaker.Init(toneRate, toneRate.N(time.Second/10)); err != nil {
		return &tone{}, err
	}

	return &tone{ready: true}, nil
}

func (t *tone) play() {
	if t == nil || !t.ready {
		return
	}
	sine, err := generators.SineTone(toneRate, toneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(toneRate.N(toneDuration), sine))
}

func (t *tone) close() {
	if t != nil && t.ready {
		speaker.Close()
		t.ready = false
	}
}
