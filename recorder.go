package main

import "sync"

// Recorder keeps a ring of the most recent engine output for the scope and
// spectrum views. The draw loop reads a copy; it never touches engine state.
type Recorder struct {
	lk       sync.Mutex
	buf      []float64
	position int
}

func NewRecorder(size int) *Recorder {
	return &Recorder{
		buf: make([]float64, size),
	}
}

func (r *Recorder) Append(samples []float64) {
	r.lk.Lock()
	defer r.lk.Unlock()

	for _, v := range samples {
		r.buf[r.position%len(r.buf)] = v
		r.position++
	}
}

// GetSnapshot copies the oldest-first contents into buf and reports how
// many values were written.
func (r *Recorder) GetSnapshot(buf []float64) int {
	r.lk.Lock()
	defer r.lk.Unlock()

	lim := len(buf)
	if len(r.buf) < lim {
		lim = len(r.buf)
	}

	for i := 0; i < lim; i++ {
		ix := (r.position + i) % len(r.buf)
		buf[i] = r.buf[ix]
	}

	return lim
}
