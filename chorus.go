package main

import "math"

const chorusBufferSec = 0.05

// Chorus reads a modulated tap from a delay line, sweeping the offset
// between 2 and 12 ms with a per-sample LFO, and mixes it 40/60 against the
// dry signal.
type Chorus struct {
	sampleRate float64
	lfoPhase   float64
	delayLine  *ringBuffer
}

func NewChorus(sampleRate float64) *Chorus {
	return &Chorus{
		sampleRate: sampleRate,
		delayLine:  newRingBuffer(int(chorusBufferSec * sampleRate)),
	}
}

func (c *Chorus) Name() string { return "chorus" }

func (c *Chorus) Process(buf []float64, bs *blockState) {
	depth := bs.params.ChorusDepth

	if depth <= 0 {
		for _, x := range buf {
			c.delayLine.Push(x)
		}
		return
	}

	inc := bs.params.ChorusRate / c.sampleRate
	for i := range buf {
		lfo := math.Sin(2 * math.Pi * c.lfoPhase)
		delay := int(0.002*c.sampleRate + depth*0.01*c.sampleRate*(lfo+1)/2)

		x := buf[i]
		delayed := c.delayLine.Tap(delay)
		c.delayLine.Push(x)
		buf[i] = x*0.6 + delayed*0.4

		_, c.lfoPhase = math.Modf(c.lfoPhase + inc)
	}
}
