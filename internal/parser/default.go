package parser

import (
	"fmt"
	"strconv"
	"strings"

	"git.lost.host/meutraa/caeli/internal/game"
)

// DefaultParser reads notes written as begin:width:position, e.g. "2:2:3.0"
type DefaultParser struct{}

func (p *DefaultParser) parseNote(spec string) (game.NoteSpec, error) {
	var note game.NoteSpec
	fields := strings.Split(strings.TrimSpace(spec), ":")
	if len(fields) != 3 {
		return note, fmt.Errorf("note %q: expected begin:width:position", spec)
	}

	begin, err := strconv.Atoi(fields[0])
	if nil != err {
		return note, fmt.Errorf("note %q: begin: %w", spec, err)
	}
	width, err := strconv.Atoi(fields[1])
	if nil != err {
		return note, fmt.Errorf("note %q: width: %w", spec, err)
	}
	position, err := strconv.ParseFloat(fields[2], 64)
	if nil != err {
		return note, fmt.Errorf("note %q: position: %w", spec, err)
	}

	if begin < 0 || width < 1 {
		return note, fmt.Errorf("note %q: %w", spec, game.ErrInvalidNote)
	}

	note.Begin = begin
	note.Width = width
	note.Position = position
	return note, nil
}

func (p *DefaultParser) Parse(specs []string) ([]game.NoteSpec, error) {
	notes := make([]game.NoteSpec, 0, len(specs))
	for _, spec := range specs {
		note, err := p.parseNote(spec)
		if nil != err {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}
