package main

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Params is one immutable snapshot of everything the render path needs.
// Writers copy, mutate, publish; the audio callback only ever loads a
// fully-formed value, so it can never see a torn update.
type Params struct {
	TargetFreq float64
	AxisX      int
	AxisY      int
	Waveform   int

	Harmonics   float64
	RingMod     float64
	Distortion  float64
	TremDepth   float64
	TremRate    float64
	Phaser      float64
	ChorusDepth float64
	ChorusRate  float64
	DelayMix    float64
	DelayTime   float64
	Reverb      float64
	Bits        int
	Cutoff      float64
	Volume      float64
}

func defaultParams() Params {
	return Params{
		TargetFreq: 440,
		AxisX:      512,
		AxisY:      512,
		Waveform:   0,

		Harmonics:   0.3,
		RingMod:     0,
		Distortion:  0,
		TremDepth:   0,
		TremRate:    4.0,
		Phaser:      0,
		ChorusDepth: 0,
		ChorusRate:  2.0,
		DelayMix:    0,
		DelayTime:   0.3,
		Reverb:      0,
		Bits:        12,
		Cutoff:      1.0,
		Volume:      0.35,
	}
}

// TraceEntry is one control update kept for the spectrogram view.
type TraceEntry struct {
	Freq  float64
	AxisX int
	AxisY int
}

const traceLen = 800

type ControlState struct {
	lk  sync.Mutex
	cur atomic.Pointer[Params]

	trace    []TraceEntry
	tracePos int
}

func NewControlState() *ControlState {
	cs := &ControlState{
		trace: make([]TraceEntry, 0, traceLen),
	}
	p := defaultParams()
	cs.cur.Store(&p)
	return cs
}

// Snapshot is safe to call from the audio callback; it never blocks on a
// writer.
func (cs *ControlState) Snapshot() Params {
	return *cs.cur.Load()
}

func (cs *ControlState) update(f func(*Params)) {
	cs.lk.Lock()
	defer cs.lk.Unlock()

	p := *cs.cur.Load()
	f(&p)
	cs.cur.Store(&p)
}

func clampf(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampi(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func wrapWaveform(w int) int {
	return ((w % numWaveforms) + numWaveforms) % numWaveforms
}

// SetTarget applies one valid control line: frequency, joystick axes and
// waveform selector. The Y axis maps onto the filter cutoff, inverted so
// pushing up brightens.
func (cs *ControlState) SetTarget(freq, axisX, axisY, waveform int) {
	cs.update(func(p *Params) {
		p.TargetFreq = clampf(float64(freq), minFreq, maxFreq)
		p.AxisX = axisX
		p.AxisY = axisY
		p.Waveform = wrapWaveform(waveform)
		p.Cutoff = 0.1 + 0.9*clampf(float64(axisY), 0, 1023)/1023
	})

	cs.lk.Lock()
	if len(cs.trace) < traceLen {
		cs.trace = append(cs.trace, TraceEntry{float64(freq), axisX, axisY})
	} else {
		cs.trace[cs.tracePos%traceLen] = TraceEntry{float64(freq), axisX, axisY}
	}
	cs.tracePos++
	cs.lk.Unlock()
}

func (cs *ControlState) SetTargetFreq(freq float64) {
	cs.update(func(p *Params) {
		p.TargetFreq = clampf(freq, minFreq, maxFreq)
	})
}

func (cs *ControlState) SetWaveform(w int) {
	cs.update(func(p *Params) {
		p.Waveform = wrapWaveform(w)
	})
}

func (cs *ControlState) SetCutoff(c float64) {
	cs.update(func(p *Params) {
		p.Cutoff = clampf(c, 0.1, 1.0)
	})
}

func (cs *ControlState) Reset() {
	cs.update(func(p *Params) {
		def := defaultParams()
		def.TargetFreq = p.TargetFreq
		def.AxisX = p.AxisX
		def.AxisY = p.AxisY
		def.Waveform = p.Waveform
		*p = def
	})
}

// Trace returns the most recent control updates, oldest first.
func (cs *ControlState) Trace() []TraceEntry {
	cs.lk.Lock()
	defer cs.lk.Unlock()

	out := make([]TraceEntry, 0, len(cs.trace))
	if len(cs.trace) < traceLen {
		out = append(out, cs.trace...)
		return out
	}
	for i := 0; i < traceLen; i++ {
		out = append(out, cs.trace[(cs.tracePos+i)%traceLen])
	}
	return out
}

// AdjustKey applies one keyboard effect command. Uppercase steps the
// parameter up, lowercase steps it down, always clamped to the documented
// range. Returns a status line for display, or ok=false if the key is not
// bound.
func (cs *ControlState) AdjustKey(key byte, upper bool) (string, bool) {
	dir := -1.0
	if upper {
		dir = 1.0
	}

	var status string
	ok := true
	cs.update(func(p *Params) {
		switch key {
		case 'h':
			p.Harmonics = clampf(p.Harmonics+dir*0.1, 0, 1)
			status = fmt.Sprintf("Harmonics: %.2f", p.Harmonics)
		case 'd':
			p.Distortion = clampf(p.Distortion+dir*0.1, 0, 1)
			status = fmt.Sprintf("Distortion: %.2f", p.Distortion)
		case 'c':
			p.ChorusDepth = clampf(p.ChorusDepth+dir*0.1, 0, 1)
			status = fmt.Sprintf("Chorus Depth: %.2f", p.ChorusDepth)
		case 'r':
			p.ChorusRate = clampf(p.ChorusRate+dir*0.5, 0.1, 10)
			status = fmt.Sprintf("Chorus Rate: %.2f Hz", p.ChorusRate)
		case 'b':
			p.Bits = clampi(p.Bits+int(dir), 4, 16)
			status = fmt.Sprintf("Bit Depth: %d-bit", p.Bits)
		case 'l':
			p.Cutoff = clampf(p.Cutoff+dir*0.1, 0.1, 1)
			status = fmt.Sprintf("Filter Cutoff: %.2f", p.Cutoff)
		case 'e':
			p.Reverb = clampf(p.Reverb+dir*0.1, 0, 1)
			status = fmt.Sprintf("Reverb: %.2f", p.Reverb)
		case 'y':
			p.DelayMix = clampf(p.DelayMix+dir*0.1, 0, 0.8)
			status = fmt.Sprintf("Delay Mix: %.2f", p.DelayMix)
		case 't':
			p.DelayTime = clampf(p.DelayTime+dir*0.05, 0.05, 1)
			status = fmt.Sprintf("Delay Time: %.2fs", p.DelayTime)
		case 'm':
			p.RingMod = clampf(p.RingMod+dir*0.5, 0, 10)
			status = fmt.Sprintf("Ring Mod: %.2f", p.RingMod)
		case 'o':
			p.TremDepth = clampf(p.TremDepth+dir*0.1, 0, 1)
			status = fmt.Sprintf("Tremolo Depth: %.2f", p.TremDepth)
		case 'p':
			p.TremRate = clampf(p.TremRate+dir*1.0, 0.5, 20)
			status = fmt.Sprintf("Tremolo Rate: %.1f Hz", p.TremRate)
		case 'a':
			p.Phaser = clampf(p.Phaser+dir*0.1, 0, 1)
			status = fmt.Sprintf("Phaser: %.2f", p.Phaser)
		case 'v':
			p.Volume = clampf(p.Volume+dir*0.05, 0.05, 0.8)
			status = fmt.Sprintf("Volume: %.2f", p.Volume)
		default:
			ok = false
		}
	})

	return status, ok
}

// SetParam sets a named parameter from the console, clamped to its range.
func (cs *ControlState) SetParam(name string, val float64) error {
	known := true
	cs.update(func(p *Params) {
		switch name {
		case "frequency", "freq":
			p.TargetFreq = clampf(val, minFreq, maxFreq)
		case "waveform":
			p.Waveform = wrapWaveform(int(val))
		case "harmonics":
			p.Harmonics = clampf(val, 0, 1)
		case "distortion":
			p.Distortion = clampf(val, 0, 1)
		case "chorus":
			p.ChorusDepth = clampf(val, 0, 1)
		case "chorusrate":
			p.ChorusRate = clampf(val, 0.1, 10)
		case "bits":
			p.Bits = clampi(int(val), 4, 16)
		case "cutoff", "filter":
			p.Cutoff = clampf(val, 0.1, 1)
		case "reverb":
			p.Reverb = clampf(val, 0, 1)
		case "delaymix":
			p.DelayMix = clampf(val, 0, 0.8)
		case "delaytime":
			p.DelayTime = clampf(val, 0.05, 1)
		case "ringmod":
			p.RingMod = clampf(val, 0, 10)
		case "tremolo":
			p.TremDepth = clampf(val, 0, 1)
		case "tremolorate":
			p.TremRate = clampf(val, 0.5, 20)
		case "phaser":
			p.Phaser = clampf(val, 0, 1)
		case "volume":
			p.Volume = clampf(val, 0.05, 0.8)
		default:
			known = false
		}
	})

	if !known {
		return fmt.Errorf("unknown parameter %q", name)
	}
	return nil
}
