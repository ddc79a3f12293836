package main

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rakyll/portmidi"
)

const (
	sampleRate = 44100
	blockSize  = 1024
)

func main() {
	var mode, portOverride string
	for _, arg := range os.Args[1:] {
		switch arg {
		case "test", "sweep":
			mode = arg
		default:
			portOverride = arg
		}
	}

	cs := NewControlState()
	eng := NewEngine(cs)
	rec := NewRecorder(10000)
	eng.SetRecorder(rec)

	portName := portOverride
	if portName == "" {
		name, err := findControlPort()
		if err != nil {
			fmt.Println("no control board:", err)
			fmt.Println("running with keyboard control only")
		}
		portName = name
	}
	if portName != "" {
		sc, err := OpenSerialControl(portName, cs)
		if err != nil {
			fmt.Println("failed to open control board:", err)
			os.Exit(1)
		}
		defer sc.Close()
	}

	portmidi.Initialize()
	defer portmidi.Terminate()
	if mc, err := OpenMidiControl(portmidi.DefaultInputDeviceID(), cs); err == nil {
		defer mc.Shutdown()
	}

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, blockSize); err != nil {
		fmt.Println("failed to initialize audio device:", err)
		os.Exit(1)
	}
	defer speaker.Close()

	speaker.Play(beep.Seq(eng, beep.Callback(func() {
		fmt.Println("DONE")
	})))

	switch mode {
	case "test":
		go NewSweep(cs).Run()
		runConsole(cs, eng)
	case "sweep":
		go NewSweep(cs).Run()
		if err := draw(cs, eng, rec); err != nil {
			fmt.Println("display error:", err)
			os.Exit(1)
		}
	default:
		if err := draw(cs, eng, rec); err != nil {
			fmt.Println("display error:", err)
			os.Exit(1)
		}
	}

	eng.Stop()
}
