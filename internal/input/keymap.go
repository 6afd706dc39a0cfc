package input

import (
	"fmt"
	"unicode"
)

// DefaultKeys binds the home row of an azerty keyboard, one key per lane
const DefaultKeys = "azertyuiop"

// Keymap maps a key to the lane it activates
type Keymap map[Symbol]int

// NewKeymap binds the first lanes keys in order. Extra keys are ignored so
// the map never points past the track.
func NewKeymap(keys string, lanes int) (Keymap, error) {
	runes := []rune(keys)
	if lanes < 1 {
		return nil, fmt.Errorf("keymap needs at least one lane, got %v", lanes)
	}
	if len(runes) < lanes {
		return nil, fmt.Errorf("%v keys given for %v lanes", len(runes), lanes)
	}

	k := make(Keymap, lanes)
	for i, r := range runes[:lanes] {
		s := Symbol(unicode.ToLower(r))
		if lane, ok := k[s]; ok {
			return nil, fmt.Errorf("key %q bound to both lane %v and %v", r, lane, i)
		}
		k[s] = i
	}
	return k, nil
}

func (k Keymap) Lane(s Symbol) (int, bool) {
	lane, ok := k[Symbol(unicode.ToLower(rune(s)))]
	return lane, ok
}
