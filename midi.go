package main

import (
	"fmt"
	"math"

	"github.com/rakyll/portmidi"
)

// MidiControl is an optional second control source: note-on events retune
// the oscillator, and any CC knob drives the filter cutoff.
type MidiControl struct {
	stream  *portmidi.Stream
	control *ControlState
}

func OpenMidiControl(id portmidi.DeviceID, cs *ControlState) (*MidiControl, error) {
	in, err := portmidi.NewInputStream(id, 1024)
	if err != nil {
		return nil, err
	}

	mc := &MidiControl{
		stream:  in,
		control: cs,
	}

	go mc.run()

	return mc, nil
}

func noteToFreq(note int64) float64 {
	return 440 * math.Pow(2, (float64(note)-69)/12)
}

func (mc *MidiControl) run() {
	for {
		events, err := mc.stream.Read(1024)
		if err != nil {
			fmt.Println("midi read ended:", err)
			return
		}

		for _, event := range events {
			switch event.Status {
			case 0x90:
				mc.control.SetTargetFreq(noteToFreq(int64(event.Data1)))
			case 0x80:
				// note-off: the drone keeps sounding at the last pitch
			case 0xb0:
				// twisty knobs
				mc.control.SetCutoff(0.1 + 0.9*float64(event.Data2)/127)
			}
		}
	}
}

func (mc *MidiControl) Shutdown() {
	mc.stream.Close()
}
