package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/caeli/internal/game"
)

// The demo track and a run over it at the default speed. Every note spends
// roughly ticks [n*20000-4000, n*20000-2000) inside the window, n being
// its starting position.
const (
	layout = `{
	"sections": 9,
	"notes": [
		{"begin": 0, "width": 1, "position": 1.0},
		{"begin": 2, "width": 2, "position": 3.0},
		{"begin": 4, "width": 1, "position": 1.5}
	]
}`
	activations = `[
	{"section": 0, "tick": 100},
	{"section": 0, "tick": 17000},
	{"section": 4, "tick": 27000},
	{"section": 5, "tick": 27000},
	{"section": 2, "tick": 57000},
	{"section": 3, "tick": 57000},
	{"section": 8, "tick": 60000}
]`
)

// ExpectedHits is the number of hits in Activations
const ExpectedHits = 4

func GetLayout() (game.Layout, error) {
	var l game.Layout
	err := json.Unmarshal([]byte(layout), &l)
	return l, err
}

func GetActivations() ([]game.Activation, error) {
	var a []game.Activation
	err := json.Unmarshal([]byte(activations), &a)
	return a, err
}
