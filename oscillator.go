package main

import (
	"math"
	"math/rand"
)

const numWaveforms = 8

const (
	WaveSawtooth = iota
	WaveTriangle
	WaveSine
	WaveSquare
	WaveRamp
	WavePulse
	WavePWM
	WaveNoise
)

var waveformNames = [numWaveforms]string{
	"SAWTOOTH", "TRIANGLE", "SINE", "SQUARE",
	"RAMP", "PULSE", "PWM", "NOISE",
}

func waveformName(w int) string {
	return waveformNames[wrapWaveform(w)]
}

// pulse duty bias; 0 gives the default 50% duty cycle
const pulseBias = 0.0

// pwm duty LFO rate in Hz
const pwmLFOFreq = 0.5

type Oscillator struct {
	sampleRate float64

	phase    float64 // canonical [0,1), re-wrapped every sample
	pwmPhase float64 // duty cycle LFO, also [0,1)

	rng *rand.Rand
}

func NewOscillator(sampleRate float64, rng *rand.Rand) *Oscillator {
	return &Oscillator{
		sampleRate: sampleRate,
		rng:        rng,
	}
}

func sign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// Next produces one sample of the selected waveform and advances the phase
// accumulator by freq/sampleRate. Wrapping through Modf every sample keeps
// the phase bounded forever, and keeping the accumulator across buffers is
// what makes buffer boundaries click-free.
func (o *Oscillator) Next(freq float64, waveform int) float64 {
	p := o.phase

	_, o.phase = math.Modf(o.phase + freq/o.sampleRate)
	_, o.pwmPhase = math.Modf(o.pwmPhase + pwmLFOFreq/o.sampleRate)

	switch wrapWaveform(waveform) {
	case WaveSawtooth:
		return 2 * (p - math.Floor(0.5+p))
	case WaveTriangle:
		return 2*math.Abs(2*(p-math.Floor(p+0.5))) - 1
	case WaveSine:
		return math.Sin(2 * math.Pi * p)
	case WaveSquare:
		return sign(math.Sin(2 * math.Pi * p))
	case WaveRamp:
		return 2*p - 1
	case WavePulse:
		return sign(math.Sin(2*math.Pi*p) - pulseBias)
	case WavePWM:
		duty := 0.5 + 0.4*math.Sin(2*math.Pi*o.pwmPhase)
		if p < duty {
			return 1
		}
		return -1
	case WaveNoise:
		return o.rng.Float64()*2 - 1
	}

	return 0
}

// Phase reports the current accumulator position, for tests.
func (o *Oscillator) Phase() float64 {
	return o.phase
}

// WaveformShape renders one standalone cycle of a waveform for the scope
// view, without touching the live oscillator state.
func WaveformShape(waveform int, n int, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	o := NewOscillator(float64(n), rng)
	for i := range out {
		out[i] = o.Next(1, waveform)
	}
	return out
}
