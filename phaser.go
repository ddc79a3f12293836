package main

import "math"

// phaser comb delay sweeps 2-10 ms; the history ring holds a little more
const phaserMaxDelaySec = 0.012

// Phaser is a feedforward comb over recent input, with the comb delay swept
// by a 0.5 Hz LFO. The input history lives in a ring buffer so the comb
// works across block boundaries.
type Phaser struct {
	sampleRate float64
	lfoPhase   float64
	hist       *ringBuffer
}

func NewPhaser(sampleRate float64) *Phaser {
	return &Phaser{
		sampleRate: sampleRate,
		hist:       newRingBuffer(int(phaserMaxDelaySec * sampleRate)),
	}
}

func (p *Phaser) Name() string { return "phaser" }

func (p *Phaser) Process(buf []float64, bs *blockState) {
	depth := bs.params.Phaser

	// the history keeps filling while bypassed, so engaging the effect
	// combs against real signal instead of stale samples
	if depth <= 0 {
		for _, x := range buf {
			p.hist.Push(x)
		}
		return
	}

	lfo := 0.5 + 0.5*math.Sin(2*math.Pi*p.lfoPhase)
	delay := int((2 + lfo*8) * 0.001 * p.sampleRate)

	for i := range buf {
		x := buf[i]
		delayed := p.hist.Tap(delay)
		p.hist.Push(x)
		buf[i] = x + depth*delayed
	}

	_, p.lfoPhase = math.Modf(p.lfoPhase + 0.5*float64(len(buf))/p.sampleRate)
}
