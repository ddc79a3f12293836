package main

import "math"

// RingModulator multiplies the signal by a sine carrier at
// freq + modFreq*100 Hz, giving the classic metallic sum/difference tones.
type RingModulator struct {
	sampleRate float64
	phase      float64
}

func NewRingModulator(sampleRate float64) *RingModulator {
	return &RingModulator{sampleRate: sampleRate}
}

func (r *RingModulator) Name() string { return "ringmod" }

func (r *RingModulator) Process(buf []float64, bs *blockState) {
	mod := bs.params.RingMod
	if mod <= 0 {
		return
	}

	inc := (bs.freq + mod*100) / r.sampleRate
	for i := range buf {
		buf[i] *= math.Sin(2 * math.Pi * r.phase)
		_, r.phase = math.Modf(r.phase + inc)
	}
}
