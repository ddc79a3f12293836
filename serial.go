package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

const controlBaudRate = 115200

// parseControlLine parses one `frequency,axisX,axisY,waveform` line.
// Anything that doesn't look exactly like that is rejected.
func parseControlLine(line string) (freq, axisX, axisY, waveform int, ok bool) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < 4 {
		return 0, 0, 0, 0, false
	}

	vals := make([]int, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0, 0, 0, 0, false
		}
		vals[i] = v
	}

	return vals[0], vals[1], vals[2], vals[3], true
}

// findControlPort looks for something that smells like the control board.
func findControlPort() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", fmt.Errorf("enumerating serial ports: %w", err)
	}

	for _, port := range ports {
		desc := port.Product
		if strings.Contains(desc, "Arduino") || strings.Contains(desc, "CH340") || port.IsUSB {
			fmt.Println("found control board on:", port.Name)
			return port.Name, nil
		}
	}

	if len(ports) > 0 {
		fmt.Println("available ports:")
		for _, port := range ports {
			fmt.Printf("  %s: %s\n", port.Name, port.Product)
		}
	}

	return "", fmt.Errorf("no control board detected")
}

// SerialControl reads control lines from the board and applies each valid
// one to the shared state in arrival order; the last line wins. Malformed
// lines are dropped without comment.
type SerialControl struct {
	port    serial.Port
	control *ControlState
}

func OpenSerialControl(portName string, cs *ControlState) (*SerialControl, error) {
	port, err := serial.Open(portName, &serial.Mode{BaudRate: controlBaudRate})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", portName, err)
	}

	sc := &SerialControl{
		port:    port,
		control: cs,
	}

	go sc.run()

	return sc, nil
}

func (sc *SerialControl) run() {
	scanner := bufio.NewScanner(sc.port)
	for scanner.Scan() {
		freq, x, y, w, ok := parseControlLine(scanner.Text())
		if !ok {
			continue
		}
		sc.control.SetTarget(freq, x, y, w)
	}

	if err := scanner.Err(); err != nil {
		fmt.Println("serial read ended:", err)
	}
}

func (sc *SerialControl) Close() error {
	return sc.port.Close()
}
