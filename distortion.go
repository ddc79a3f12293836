package main

import "math"

// Distortion is a stateless waveshaper: two tanh stages, a wavefolder above
// amount 0.3, harmonic enhancement above 0.5, then a gentle final
// saturation blended against the dry signal.
type Distortion struct{}

func (d *Distortion) Name() string { return "distortion" }

func (d *Distortion) Process(buf []float64, bs *blockState) {
	amount := bs.params.Distortion
	if amount <= 0 {
		return
	}

	gain := 1 + amount*8
	for i := range buf {
		x := buf[i]

		stage1 := math.Tanh(x * gain * 0.8)
		out := math.Tanh(stage1*1.2) * 0.9

		if amount > 0.3 {
			fold := (amount - 0.3) * 1.4
			folded := math.Sin(out * math.Pi * (1 + fold))
			out = out*(1-fold*0.6) + folded*(fold*0.6)
		}

		if amount > 0.5 {
			enhanced := sign(out) * math.Sqrt(math.Abs(out))
			mix := (amount - 0.5) * 0.3
			out = out*(1-mix) + enhanced*mix
		}

		out = math.Tanh(out*1.1) * 0.95

		dry := 0.15 * (1 - amount)
		buf[i] = out*(1-dry) + x*dry
	}
}
