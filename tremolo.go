package main

import "math"

// Tremolo modulates amplitude with a unipolar LFO. The rate is folded into
// the phase increment, so rate changes never jump the LFO.
type Tremolo struct {
	sampleRate float64
	phase      float64
}

func NewTremolo(sampleRate float64) *Tremolo {
	return &Tremolo{sampleRate: sampleRate}
}

func (t *Tremolo) Name() string { return "tremolo" }

func (t *Tremolo) Process(buf []float64, bs *blockState) {
	depth := bs.params.TremDepth
	if depth <= 0 {
		return
	}

	inc := bs.params.TremRate / t.sampleRate
	for i := range buf {
		lfo := 1 - depth*(0.5+0.5*math.Sin(2*math.Pi*t.phase))
		buf[i] *= lfo
		_, t.phase = math.Modf(t.phase + inc)
	}
}
