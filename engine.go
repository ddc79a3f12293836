package main

import (
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
	"time"
)

const (
	minFreq = 100
	maxFreq = 2000
)

// frequency smoother coefficient, applied once per sample; reaches ~63% of
// a target step in about 20 samples
const freqSmoothing = 0.95

// cutoff smoother coefficient, applied once per block
const cutoffSmoothing = 0.9

// Engine is the render context. The speaker pulls one block at a time
// through Stream; each block snapshots the control state, advances the
// smoothers, runs the oscillator and the effects chain, then normalizes and
// clamps. Nothing in here takes a lock or allocates after warmup.
type Engine struct {
	control *ControlState
	osc     *Oscillator
	chain   []Effect

	currentFreq  float64
	filterCutoff float64

	block []float64

	recorder *Recorder

	freqBits atomic.Uint64
	stopped  atomic.Bool
}

func NewEngine(cs *ControlState) *Engine {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewEngineWithSource(cs, rng)
}

// NewEngineWithSource takes the noise source explicitly so tests can seed it.
func NewEngineWithSource(cs *ControlState, rng *rand.Rand) *Engine {
	e := &Engine{
		control:      cs,
		osc:          NewOscillator(sampleRate, rng),
		chain:        newEffectsChain(sampleRate),
		currentFreq:  cs.Snapshot().TargetFreq,
		filterCutoff: cs.Snapshot().Cutoff,
	}
	e.freqBits.Store(math.Float64bits(e.currentFreq))
	return e
}

func (e *Engine) SetRecorder(r *Recorder) {
	e.recorder = r
}

// CurrentFreq reports the smoothed frequency for the display thread.
func (e *Engine) CurrentFreq() float64 {
	return math.Float64frombits(e.freqBits.Load())
}

// Stop makes the next Stream call report end-of-stream, letting the speaker
// drain cleanly after the current block.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}

func (e *Engine) Stream(samples [][2]float64) (int, bool) {
	if e.stopped.Load() {
		return 0, false
	}

	// a fault in the block computation must never reach the device
	// thread; the block becomes silence and the next one carries on
	defer func() {
		if r := recover(); r != nil {
			for i := range samples {
				samples[i][0] = 0
				samples[i][1] = 0
			}
			fmt.Println("render fault, substituting silence:", r)
		}
	}()

	e.renderBlock(samples)
	return len(samples), true
}

func (e *Engine) renderBlock(samples [][2]float64) {
	p := e.control.Snapshot()

	e.filterCutoff = e.filterCutoff*cutoffSmoothing + p.Cutoff*(1-cutoffSmoothing)

	if cap(e.block) < len(samples) {
		e.block = make([]float64, len(samples))
	}
	block := e.block[:len(samples)]

	target := clampf(p.TargetFreq, minFreq, maxFreq)
	for i := range block {
		e.currentFreq = e.currentFreq*freqSmoothing + target*(1-freqSmoothing)
		block[i] = e.osc.Next(e.currentFreq, p.Waveform)
	}
	e.freqBits.Store(math.Float64bits(e.currentFreq))

	bs := &blockState{
		params: p,
		freq:   e.currentFreq,
		cutoff: e.filterCutoff,
	}
	for _, fx := range e.chain {
		fx.Process(block, bs)
	}

	var peak float64
	for _, v := range block {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	vol := clampf(p.Volume, 0.05, 0.8)
	for i, v := range block {
		if peak > 0 {
			v /= peak
		}
		v *= vol
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		block[i] = v
		samples[i][0] = v
		samples[i][1] = v
	}

	if e.recorder != nil {
		e.recorder.Append(block)
	}
}

func (e *Engine) Err() error {
	return nil
}
