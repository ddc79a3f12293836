package main

import "math"

// Harmonics layers sine partials 2..6 over the signal at amplitude level/n.
// It tracks the fundamental with its own phase accumulator so the partials
// stay aligned across buffer boundaries.
type Harmonics struct {
	sampleRate float64
	phase      float64
}

func NewHarmonics(sampleRate float64) *Harmonics {
	return &Harmonics{sampleRate: sampleRate}
}

func (h *Harmonics) Name() string { return "harmonics" }

func (h *Harmonics) Process(buf []float64, bs *blockState) {
	level := bs.params.Harmonics
	if level <= 0 {
		return
	}

	inc := bs.freq / h.sampleRate
	for i := range buf {
		var sum float64
		for n := 2; n <= 6; n++ {
			sum += math.Sin(2*math.Pi*float64(n)*h.phase) / float64(n)
		}
		buf[i] += level * sum

		_, h.phase = math.Modf(h.phase + inc)
	}
}
