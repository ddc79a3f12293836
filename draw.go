package main

import (
	"fmt"
	"math/cmplx"
	"math/rand"
	"time"

	"github.com/maddyblue/go-dsp/fft"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenWidth  = 1000
	screenHeight = 600
)

// draw runs the workstation window: oscilloscope and spectrum of the live
// output, the frequency trace from the control board, the effects rack
// bars, and the keyboard-equivalent effect commands. It only reads
// published copies of engine state.
func draw(cs *ControlState, eng *Engine, rec *Recorder) error {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("OSCILLOSCOPE-9000 /// SYNTH WORKSTATION",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		screenWidth, screenHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer renderer.Destroy()

	dataPoints := make([]float64, 2048)
	shapeRng := rand.New(rand.NewSource(time.Now().UnixNano()))

	running := true
	fullscreen := false
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if event.Type != sdl.KEYDOWN {
					continue
				}

				sym := event.Keysym.Sym
				switch {
				case sym == sdl.K_ESCAPE:
					running = false
				case sym == sdl.K_SPACE:
					cs.Reset()
					fmt.Println(">>> ALL EFFECTS RESET <<<")
				case sym == sdl.K_f:
					fullscreen = !fullscreen
					var flags uint32
					if fullscreen {
						flags = sdl.WINDOW_FULLSCREEN_DESKTOP
					}
					window.SetFullscreen(flags)
				case sym >= sdl.K_1 && sym <= sdl.K_8:
					w := int(sym - sdl.K_1)
					cs.SetWaveform(w)
					fmt.Println("Waveform:", waveformName(w))
				case sym >= sdl.K_a && sym <= sdl.K_z:
					upper := event.Keysym.Mod&sdl.KMOD_SHIFT != 0
					if status, ok := cs.AdjustKey(byte(sym), upper); ok {
						fmt.Println(status)
					}
				}
			}
		}

		rec.GetSnapshot(dataPoints)

		fftResult := fft.FFTReal(dataPoints)

		magnitudeSpectrum := make([]float64, len(fftResult)/2+1)
		for i, c := range fftResult[:len(magnitudeSpectrum)] {
			magnitudeSpectrum[i] = cmplx.Abs(c) / float64(len(dataPoints))
		}

		renderer.SetDrawColor(0, 0, 0, 255)
		renderer.Clear()

		// frequency trace from the control board, top panel
		trace := cs.Trace()
		freqs := make([]float64, len(trace))
		for i, te := range trace {
			freqs[i] = te.Freq
		}
		graphData(renderer, freqs, 50, 30, 600, 180, minFreq, maxFreq)

		p := cs.Snapshot()

		// one idealized cycle of the selected waveform
		graphData(renderer, WaveformShape(p.Waveform, 256, shapeRng), 700, 30, 250, 180, -1, 1)

		// live output scope and magnitude spectrum
		graphData(renderer, dataPoints[:500], 50, 240, 600, 160, -1, 1)
		graphData(renderer, magnitudeSpectrum[:200], 50, 420, 600, 160, 0, 0.5)

		drawEffectsRack(renderer, p, 700, 240)

		renderer.Present()
		sdl.Delay(30)
	}

	return nil
}

func graphData(renderer *sdl.Renderer, dataPoints []float64, x, y, width, height int32, minval, maxval float64) {
	renderer.SetDrawColor(0, 68, 0, 255)
	renderer.DrawLine(x, y+height/2, x+width, y+height/2)
	renderer.DrawLine(x, y, x, y+height)

	if len(dataPoints) < 2 {
		return
	}

	spread := maxval - minval
	renderer.SetDrawColor(0, 255, 0, 255)
	for i := 0; i < len(dataPoints)-1; i++ {
		x1 := x + int32(float64(i)*float64(width)/float64(len(dataPoints)-1))
		y1 := y + height - int32((dataPoints[i]-minval)/spread*float64(height))
		x2 := x + int32(float64(i+1)*float64(width)/float64(len(dataPoints)-1))
		y2 := y + height - int32((dataPoints[i+1]-minval)/spread*float64(height))
		renderer.DrawLine(x1, y1, x2, y2)
	}
}

// drawEffectsRack renders one horizontal bar per effect parameter,
// normalized to its range.
func drawEffectsRack(renderer *sdl.Renderer, p Params, x, y int32) {
	bars := []struct {
		val, max float64
		r, g, b  uint8
	}{
		{p.Harmonics, 1, 255, 191, 0},
		{p.Distortion, 1, 255, 191, 0},
		{p.ChorusDepth, 1, 255, 191, 0},
		{p.ChorusRate, 10, 255, 191, 0},
		{p.Reverb, 1, 0, 255, 255},
		{p.DelayMix, 0.8, 0, 255, 255},
		{p.DelayTime, 1, 0, 255, 255},
		{p.RingMod, 10, 255, 0, 255},
		{p.TremDepth, 1, 255, 0, 255},
		{p.TremRate, 20, 255, 0, 255},
		{p.Phaser, 1, 255, 0, 255},
		{float64(p.Bits), 16, 255, 51, 51},
		{p.Cutoff, 1, 255, 51, 51},
		{p.Volume, 0.8, 0, 255, 0},
	}

	const barWidth, barHeight, pad = 200, 14, 8
	for i, bar := range bars {
		by := y + int32(i)*(barHeight+pad)

		renderer.SetDrawColor(0, 68, 0, 255)
		renderer.DrawRect(&sdl.Rect{X: x, Y: by, W: barWidth, H: barHeight})

		fill := int32(bar.val / bar.max * barWidth)
		if fill > 0 {
			renderer.SetDrawColor(bar.r, bar.g, bar.b, 255)
			renderer.FillRect(&sdl.Rect{X: x, Y: by, W: fill, H: barHeight})
		}
	}
}
