package input

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// From linux/input-event-codes.h
const (
	evKey  = 0x01
	keyEsc = 1
)

// evdev codes name the physical key of a qwerty layout
var codeSymbols = map[uint16]Symbol{
	2: '1', 3: '2', 4: '3', 5: '4', 6: '5', 7: '6', 8: '7', 9: '8', 10: '9', 11: '0',
	16: 'q', 17: 'w', 18: 'e', 19: 'r', 20: 't', 21: 'y', 22: 'u', 23: 'i', 24: 'o', 25: 'p',
	30: 'a', 31: 's', 32: 'd', 33: 'f', 34: 'g', 35: 'h', 36: 'j', 37: 'k', 38: 'l',
	44: 'z', 45: 'x', 46: 'c', 47: 'v', 48: 'b', 49: 'n', 50: 'm',
	57: ' ',
}

// struct input_event on 64 bit linux
type keyEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// EvdevSource reads a keyboard device such as /dev/input/event3 directly,
// which unlike a terminal reports key releases. Needs read access to the device.
type EvdevSource struct {
	Device string

	file *os.File
}

func (s *EvdevSource) Start(events chan<- Event) error {
	file, err := os.Open(s.Device)
	if err != nil {
		return fmt.Errorf("unable to open %v: %w", s.Device, err)
	}
	s.file = file
	go func() {
		if err := readEvents(file, events); nil != err && !errors.Is(err, os.ErrClosed) {
			log.Println(err, "unable to read keyboard input")
		}
	}()
	return nil
}

func readEvents(r io.Reader, events chan<- Event) error {
	var ev keyEvent
	for {
		if err := binary.Read(r, binary.LittleEndian, &ev); nil != err {
			return err
		}
		// Value 2 is autorepeat
		if ev.Type != evKey || ev.Value > 1 {
			continue
		}
		if ev.Code == keyEsc {
			if ev.Value == 1 {
				events <- Event{Quit: true}
			}
			continue
		}
		sym, ok := codeSymbols[ev.Code]
		if !ok {
			continue
		}
		events <- Event{Symbol: sym, Pressed: ev.Value == 1}
	}
}

func (s *EvdevSource) Close() error {
	if nil == s.file {
		return nil
	}
	return s.file.Close()
}

func (s *EvdevSource) Releases() bool {
	return true
}
