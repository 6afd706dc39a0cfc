package game

import "errors"

var (
	ErrNoSections        = errors.New("track needs at least one section")
	ErrSectionOutOfRange = errors.New("section out of range")
	ErrInvalidNote       = errors.New("invalid note span")
	ErrNoteOutOfTrack    = errors.New("note does not fit in track")
)
