package main

import "time"

// Sweep walks the target frequency up to the top of the range and back
// down, forever. It only writes through the control state, exactly like any
// other control source.
type Sweep struct {
	control  *ControlState
	step     float64
	interval time.Duration
}

func NewSweep(cs *ControlState) *Sweep {
	return &Sweep{
		control:  cs,
		step:     25,
		interval: time.Millisecond * 40,
	}
}

func (s *Sweep) Run() {
	freq := float64(minFreq)
	dir := 1.0
	for range time.Tick(s.interval) {
		freq += dir * s.step
		if freq >= maxFreq {
			freq = maxFreq
			dir = -1
		} else if freq <= minFreq {
			freq = minFreq
			dir = 1
		}
		s.control.SetTargetFreq(freq)
	}
}
