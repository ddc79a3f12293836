package main

// LowPass is the final one-pole filter, y[n] = α·x[n] + (1-α)·y[n-1], with
// α taken directly from the smoothed cutoff. State persists across blocks.
type LowPass struct {
	prev float64
}

func (l *LowPass) Name() string { return "lowpass" }

func (l *LowPass) Process(buf []float64, bs *blockState) {
	alpha := bs.cutoff
	if alpha >= 1 {
		if len(buf) > 0 {
			// track the signal while bypassed so re-engaging doesn't thump
			l.prev = buf[len(buf)-1]
		}
		return
	}

	for i := range buf {
		l.prev = alpha*buf[i] + (1-alpha)*l.prev
		buf[i] = l.prev
	}
}
