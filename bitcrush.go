package main

import "math"

// BitCrusher quantizes samples to 2^bits levels. At 16 bits and above the
// grid is finer than the output format, so it passes through untouched.
type BitCrusher struct{}

func (b *BitCrusher) Name() string { return "bitcrush" }

func (b *BitCrusher) Process(buf []float64, bs *blockState) {
	bits := bs.params.Bits
	if bits >= 16 {
		return
	}

	levels := math.Pow(2, float64(bits))
	for i := range buf {
		buf[i] = math.Round(buf[i]*levels) / levels
	}
}
