package main

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func testEngine(t *testing.T, cs *ControlState) *Engine {
	t.Helper()
	return NewEngineWithSource(cs, rand.New(rand.NewSource(42)))
}

func TestSmootherConvergence(t *testing.T) {
	cs := NewControlState()
	cs.SetTargetFreq(100)
	eng := testEngine(t, cs)

	cs.SetTargetFreq(2000)

	samples := make([][2]float64, 20)
	if n, ok := eng.Stream(samples); n != 20 || !ok {
		t.Fatalf("stream returned %d, %v", n, ok)
	}

	moved := (eng.CurrentFreq() - 100) / 1900
	if moved < 0.60 || moved > 0.68 {
		t.Fatalf("after 20 samples moved %.1f%% of the way, want ~63%%", moved*100)
	}
}

func TestSweepTraceIsSmooth(t *testing.T) {
	cs := NewControlState()
	cs.SetTargetFreq(100)
	eng := testEngine(t, cs)

	var targets []float64
	for f := 100.0; f <= 2000; f += 50 {
		targets = append(targets, f)
	}
	for f := 2000.0; f >= 100; f -= 50 {
		targets = append(targets, f)
	}

	samples := make([][2]float64, 256)
	prev := eng.CurrentFreq()
	for _, target := range targets {
		cs.SetTargetFreq(target)
		eng.Stream(samples)

		f := eng.CurrentFreq()
		if f < minFreq || f > maxFreq || math.IsNaN(f) {
			t.Fatalf("frequency %f escaped [%d,%d]", f, minFreq, maxFreq)
		}

		// exponential smoothing can never overshoot the remaining gap
		if math.Abs(f-prev) > math.Abs(target-prev)+1e-9 {
			t.Fatalf("jump from %f to %f overshoots target %f", prev, f, target)
		}
		prev = f
	}

	// after the down sweep the trace has to be heading back at the floor
	if prev > 300 {
		t.Fatalf("frequency %f never came back down", prev)
	}
}

func TestRenderNormalizedToVolume(t *testing.T) {
	cs := NewControlState()
	eng := testEngine(t, cs)

	samples := make([][2]float64, blockSize)
	var peak float64
	for blockN := 0; blockN < 10; blockN++ {
		eng.Stream(samples)
		peak = 0
		for _, s := range samples {
			if a := math.Abs(s[0]); a > peak {
				peak = a
			}
		}
	}

	// every block is peak-normalized, then scaled by the default volume
	if math.Abs(peak-0.35) > 1e-6 {
		t.Fatalf("block peak %f, want 0.35", peak)
	}
}

func TestRenderStaysClamped(t *testing.T) {
	cs := NewControlState()
	cs.SetParam("distortion", 1)
	cs.SetParam("harmonics", 1)
	cs.SetParam("reverb", 1)
	cs.SetParam("delaymix", 0.8)
	cs.SetParam("ringmod", 10)
	cs.SetParam("volume", 0.8)

	eng := testEngine(t, cs)

	samples := make([][2]float64, blockSize)
	for blockN := 0; blockN < 40; blockN++ {
		eng.Stream(samples)
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || math.IsNaN(s[0]) {
				t.Fatalf("block %d sample %d out of range: %f", blockN, i, s[0])
			}
			if s[0] != s[1] {
				t.Fatalf("channels diverge at %d: %f vs %f", i, s[0], s[1])
			}
		}
	}
}

type faultyEffect struct{}

func (f *faultyEffect) Name() string { return "faulty" }

func (f *faultyEffect) Process(buf []float64, bs *blockState) {
	panic("boom")
}

func TestRenderFaultSubstitutesSilence(t *testing.T) {
	cs := NewControlState()
	eng := testEngine(t, cs)
	eng.chain = append(eng.chain, &faultyEffect{})

	samples := make([][2]float64, blockSize)
	for i := range samples {
		samples[i][0] = 0.5
		samples[i][1] = 0.5
	}

	n, ok := eng.Stream(samples)
	if n != blockSize || !ok {
		t.Fatalf("faulting stream returned %d, %v", n, ok)
	}
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d not silenced: %v", i, s)
		}
	}
}

func TestStopEndsStream(t *testing.T) {
	cs := NewControlState()
	eng := testEngine(t, cs)

	samples := make([][2]float64, blockSize)
	if _, ok := eng.Stream(samples); !ok {
		t.Fatal("engine stopped before Stop")
	}

	eng.Stop()
	if n, ok := eng.Stream(samples); n != 0 || ok {
		t.Fatalf("after Stop, stream returned %d, %v", n, ok)
	}
}

func TestRecorderSeesOutput(t *testing.T) {
	cs := NewControlState()
	eng := testEngine(t, cs)
	rec := NewRecorder(4096)
	eng.SetRecorder(rec)

	samples := make([][2]float64, blockSize)
	for i := 0; i < 8; i++ {
		eng.Stream(samples)
	}

	snap := make([]float64, 2048)
	if n := rec.GetSnapshot(snap); n != 2048 {
		t.Fatalf("snapshot returned %d values", n)
	}

	var nonzero bool
	for _, v := range snap {
		if v < -1 || v > 1 {
			t.Fatalf("recorded sample %f out of range", v)
		}
		if v != 0 {
			nonzero = true
		}
	}
	if !nonzero {
		t.Fatal("recorder captured only silence")
	}
}

func TestRenderToWav(t *testing.T) {
	cs := NewControlState()
	cs.SetParam("chorus", 0.5)
	cs.SetParam("reverb", 0.3)
	eng := testEngine(t, cs)

	path := filepath.Join(t.TempDir(), "output.wav")
	fi, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fi.Close()

	sr := beep.SampleRate(sampleRate)
	if err := wav.Encode(fi, beep.Take(sr.N(time.Second/2), eng), beep.Format{
		SampleRate:  sr,
		NumChannels: 1,
		Precision:   2,
	}); err != nil {
		t.Fatal(err)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() < int64(sampleRate/2) {
		t.Fatalf("wav file suspiciously small: %d bytes", st.Size())
	}
}
