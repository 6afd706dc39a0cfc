package journal

import "git.lost.host/meutraa/caeli/internal/game"

type Journal interface {
	Init() error
	Deinit()

	// Save the activations of a finished session
	Save(layout game.Layout, speed float64, activations []game.Activation) error

	// Load every stored session played on this layout
	Load(layout game.Layout) ([]History, error)

	// Replay a stored session and report its hits
	Replay(layout game.Layout, history *History) ([]game.Hit, error)
}

type History struct {
	ID          int64
	Sum         string
	Speed       float64
	Activations []game.Activation
}
