package parser

import "git.lost.host/meutraa/caeli/internal/game"

type Parser interface {
	Parse(specs []string) ([]game.NoteSpec, error)
}
