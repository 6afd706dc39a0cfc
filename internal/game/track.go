package game

import "fmt"

// Track is a fixed row of lanes, each of which is either activated or not.
// Indexing a lane outside [0, SectionCount()) is a programming error and panics.
type Track struct {
	activated []bool
}

func NewTrack(sections int) *Track {
	if sections < 1 {
		panic(fmt.Errorf("%w: got %d", ErrNoSections, sections))
	}
	return &Track{activated: make([]bool, sections)}
}

func (t *Track) SectionCount() int {
	return len(t.activated)
}

func (t *Track) Activate(section int) {
	t.check(section)
	t.activated[section] = true
}

func (t *Track) Deactivate(section int) {
	t.check(section)
	t.activated[section] = false
}

func (t *Track) IsActivated(section int) bool {
	t.check(section)
	return t.activated[section]
}

func (t *Track) check(section int) {
	if section < 0 || section >= len(t.activated) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrSectionOutOfRange, section, len(t.activated)))
	}
}
