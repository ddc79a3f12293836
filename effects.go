package main

// blockState is the per-block context handed to every stage: the published
// parameter snapshot plus the smoothed values the engine derived from it.
type blockState struct {
	params Params
	freq   float64 // smoothed oscillator frequency in Hz
	cutoff float64 // smoothed filter cutoff in [0.1, 1.0]
}

// Effect transforms one mono block in place. Stages keep whatever buffered
// state they need between blocks; at their documented "off" value they must
// leave the block untouched.
type Effect interface {
	Name() string
	Process(buf []float64, bs *blockState)
}

// newEffectsChain builds the fixed processing order. Stages are never
// reordered.
func newEffectsChain(sampleRate float64) []Effect {
	return []Effect{
		NewHarmonics(sampleRate),
		NewRingModulator(sampleRate),
		&Distortion{},
		NewTremolo(sampleRate),
		NewPhaser(sampleRate),
		NewChorus(sampleRate),
		NewDelay(sampleRate),
		NewReverb(sampleRate),
		&BitCrusher{},
		&LowPass{},
	}
}
