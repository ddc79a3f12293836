package main

import (
	"math"
	"math/rand"
	"testing"
)

func TestPhaseStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, freq := range []float64{100, 440, 1234.5, 2000} {
		o := NewOscillator(sampleRate, rng)
		for i := 0; i < 200000; i++ {
			o.Next(freq, WaveSawtooth)
			p := o.Phase()
			if p < 0 || p >= 1 {
				t.Fatalf("freq %f: phase %f out of [0,1) at sample %d", freq, p, i)
			}
		}
	}
}

func TestWaveformOutputRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for w := 0; w < numWaveforms; w++ {
		o := NewOscillator(sampleRate, rng)
		for i := 0; i < 50000; i++ {
			v := o.Next(440, w)
			if v < -1 || v > 1 {
				t.Fatalf("%s: sample %f out of [-1,1]", waveformName(w), v)
			}
		}
	}
}

func TestWaveformIndexWraps(t *testing.T) {
	cases := map[int]int{
		0:  0,
		7:  7,
		8:  0,
		9:  1,
		15: 7,
		-1: 7,
		-8: 0,
	}
	for in, want := range cases {
		if got := wrapWaveform(in); got != want {
			t.Fatalf("wrapWaveform(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSineMatchesClosedForm(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	o := NewOscillator(sampleRate, rng)

	freq := 440.0
	for n := 0; n < 1000; n++ {
		got := o.Next(freq, WaveSine)
		want := math.Sin(2 * math.Pi * freq * float64(n) / sampleRate)
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("sample %d: got %f, want %f", n, got, want)
		}
	}
}

func TestNoiseStatistics(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	o := NewOscillator(sampleRate, rng)

	const n = 100000
	var sum, sumsq float64
	for i := 0; i < n; i++ {
		v := o.Next(440, WaveNoise)
		if v < -1 || v > 1 {
			t.Fatalf("noise sample %f out of [-1,1]", v)
		}
		sum += v
		sumsq += v * v
	}

	mean := sum / n
	if math.Abs(mean) > 0.02 {
		t.Fatalf("noise mean %f too far from 0", mean)
	}

	// uniform [-1,1] has stddev 1/sqrt(3)
	stddev := math.Sqrt(sumsq/n - mean*mean)
	if math.Abs(stddev-1/math.Sqrt(3)) > 0.02 {
		t.Fatalf("noise stddev %f, want ~%f", stddev, 1/math.Sqrt(3))
	}
}

func TestPWMDutyVaries(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	o := NewOscillator(sampleRate, rng)

	// over four seconds the duty LFO covers its full 0.1..0.9 range, so
	// the positive fraction per second should differ noticeably
	var posCounts []float64
	for sec := 0; sec < 4; sec++ {
		var pos int
		for i := 0; i < sampleRate; i++ {
			if o.Next(200, WavePWM) > 0 {
				pos++
			}
		}
		posCounts = append(posCounts, float64(pos)/sampleRate)
	}

	min, max := posCounts[0], posCounts[0]
	for _, c := range posCounts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	if max-min < 0.1 {
		t.Fatalf("pwm duty barely moved: per-second positive fractions %v", posCounts)
	}
}
