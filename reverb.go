package main

// Schroeder-style reverb: four parallel comb filters at mutually prime
// delays so their resonances don't pile up on common frequencies.
var reverbCombDelaysSec = [4]float64{0.029, 0.037, 0.041, 0.043}

const (
	reverbTapGain      = 0.25
	reverbFeedbackGain = 0.5
)

type Reverb struct {
	combs [4]*ringBuffer
}

func NewReverb(sampleRate float64) *Reverb {
	r := &Reverb{}
	for i, d := range reverbCombDelaysSec {
		r.combs[i] = newRingBuffer(int(d * sampleRate))
	}
	return r
}

func (r *Reverb) Name() string { return "reverb" }

func (r *Reverb) Process(buf []float64, bs *blockState) {
	level := bs.params.Reverb

	// combs always run; level only scales the wet sum, so the tail decays
	// naturally through a bypass instead of freezing
	for i := range buf {
		x := buf[i]

		var sum float64
		for _, comb := range r.combs {
			y := comb.Oldest()
			sum += y * reverbTapGain
			comb.Push(x + y*reverbFeedbackGain)
		}

		if level > 0 {
			buf[i] = x + sum*level
		}
	}
}
