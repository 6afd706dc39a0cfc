package input

import (
	"fmt"

	"github.com/eiannone/keyboard"
)

// TerminalSource reads keys from the controlling terminal. Terminals do not
// report key releases, so lanes have to be released by the caller.
type TerminalSource struct{}

func (s *TerminalSource) Start(events chan<- Event) error {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	go func() {
		for key := range keys {
			if nil != key.Err {
				continue
			}
			events <- translateKey(key)
		}
	}()
	return nil
}

func translateKey(key keyboard.KeyEvent) Event {
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Quit: true}
	case keyboard.KeySpace:
		return Event{Symbol: ' ', Pressed: true}
	}
	return Event{Symbol: Symbol(key.Rune), Pressed: true}
}

func (s *TerminalSource) Close() error {
	return keyboard.Close()
}

func (s *TerminalSource) Releases() bool {
	return false
}
