package main

const (
	delayBufferSec    = 1.0
	delayFeedbackGain = 0.4
)

// Delay is a tape-style echo: the line is fed input plus 0.4 of its own
// output, and the wet tap is crossfaded in by mix. The line keeps running
// while bypassed so echoes pick up from live signal when mix comes back up.
type Delay struct {
	sampleRate float64
	line       *ringBuffer
}

func NewDelay(sampleRate float64) *Delay {
	return &Delay{
		sampleRate: sampleRate,
		line:       newRingBuffer(int(delayBufferSec * sampleRate)),
	}
}

func (d *Delay) Name() string { return "delay" }

func (d *Delay) Process(buf []float64, bs *blockState) {
	mix := bs.params.DelayMix
	delay := int(bs.params.DelayTime * d.sampleRate)

	for i := range buf {
		x := buf[i]
		delayed := d.line.Tap(delay)
		d.line.Push(x + delayed*delayFeedbackGain)

		if mix > 0 {
			buf[i] = x*(1-mix) + delayed*mix
		}
	}
}
