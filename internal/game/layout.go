package game

// NoteSpec describes a note before it is placed on a track
type NoteSpec struct {
	Begin    int     `json:"begin"`
	Width    int     `json:"width"`
	Position float64 `json:"position"`
}

// Layout is everything needed to start a session
type Layout struct {
	Sections int        `json:"sections"`
	Notes    []NoteSpec `json:"notes"`
}

// DefaultLayout is the nine lane demo track with three notes
func DefaultLayout() Layout {
	return Layout{
		Sections: 9,
		Notes: []NoteSpec{
			{Begin: 0, Width: 1, Position: 1.0},
			{Begin: 2, Width: 2, Position: 3.0},
			{Begin: 4, Width: 1, Position: 1.5},
		},
	}
}

// Session builds a fresh track and notes from the layout. Panics if the
// layout has no sections or a note has an invalid span.
func (l Layout) Session(opts ...Option) (*Session, error) {
	notes := make([]*Note, len(l.Notes))
	for i, n := range l.Notes {
		notes[i] = NewNote(n.Begin, n.Width, n.Position)
	}
	return NewSession(NewTrack(l.Sections), notes, opts...)
}
