package main

// ringBuffer is a fixed-capacity circular buffer for delay-style effects.
// It is never resized after construction; every index passes through the
// modulo below, so reads and writes stay inside [0, capacity) no matter how
// many samples have gone through.
type ringBuffer struct {
	buf []float64
	pos int // next write index
}

func newRingBuffer(capacity int) *ringBuffer {
	if capacity < 2 {
		capacity = 2
	}
	return &ringBuffer{
		buf: make([]float64, capacity),
	}
}

func (r *ringBuffer) Len() int {
	return len(r.buf)
}

// Push writes v at the current position and advances the write index.
func (r *ringBuffer) Push(v float64) {
	r.buf[r.pos] = v
	r.pos = (r.pos + 1) % len(r.buf)
}

// Tap returns the sample pushed delay steps ago. delay is clamped into
// [1, capacity-1], matching how the chorus and delay read before writing.
func (r *ringBuffer) Tap(delay int) float64 {
	if delay < 1 {
		delay = 1
	}
	if delay >= len(r.buf) {
		delay = len(r.buf) - 1
	}
	ix := r.pos - delay
	if ix < 0 {
		ix += len(r.buf)
	}
	return r.buf[ix]
}

// Oldest returns the sample pushed exactly capacity steps ago, the slot the
// next Push will overwrite. Comb filters sized to their delay use this as
// their single tap.
func (r *ringBuffer) Oldest() float64 {
	return r.buf[r.pos]
}
