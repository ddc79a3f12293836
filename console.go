package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
)

var consoleParams = []string{
	"frequency", "waveform", "harmonics", "distortion", "chorus",
	"chorusrate", "bits", "cutoff", "reverb", "delaymix", "delaytime",
	"ringmod", "tremolo", "tremolorate", "phaser", "volume",
}

// runConsole drives the interactive command prompt until quit. Commands:
//
//	set <param> <value>
//	status
//	reset
//	quit
func runConsole(cs *ControlState, eng *Engine) {
	completer := func(d prompt.Document) []prompt.Suggest {
		var out []prompt.Suggest
		for _, p := range consoleParams {
			out = append(out, prompt.Suggest{Text: p})
		}
		return prompt.FilterHasPrefix(out, d.GetWordBeforeCursor(), true)
	}

	for {
		t := prompt.Input("> ", completer)
		if err := processCmd(cs, eng, t); err != nil {
			if err == errConsoleQuit {
				return
			}
			fmt.Println("ERROR:", err)
		}
	}
}

var errConsoleQuit = fmt.Errorf("quit")

func processCmd(cs *ControlState, eng *Engine, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "quit", "exit":
		return errConsoleQuit
	case "reset":
		cs.Reset()
		fmt.Println(">>> ALL EFFECTS RESET <<<")
		return nil
	case "status":
		printStatus(cs.Snapshot(), eng)
		return nil
	case "set":
		if len(fields) != 3 {
			return fmt.Errorf("usage: set <param> <value>")
		}
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("bad value %q: %w", fields[2], err)
		}
		return cs.SetParam(fields[1], val)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func printStatus(p Params, eng *Engine) {
	fmt.Printf("waveform:    %s\n", waveformName(p.Waveform))
	fmt.Printf("target freq: %.1f Hz", p.TargetFreq)
	if eng != nil {
		fmt.Printf("  (current %.1f Hz)", eng.CurrentFreq())
	}
	fmt.Println()
	fmt.Printf("harmonics %.2f  distortion %.2f  ringmod %.2f\n",
		p.Harmonics, p.Distortion, p.RingMod)
	fmt.Printf("tremolo %.2f @ %.1f Hz  phaser %.2f\n",
		p.TremDepth, p.TremRate, p.Phaser)
	fmt.Printf("chorus %.2f @ %.1f Hz  delay %.2f @ %.2fs  reverb %.2f\n",
		p.ChorusDepth, p.ChorusRate, p.DelayMix, p.DelayTime, p.Reverb)
	fmt.Printf("bits %d  cutoff %.2f  volume %.2f\n",
		p.Bits, p.Cutoff, p.Volume)
}
