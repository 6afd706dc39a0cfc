package game

import "fmt"

// Session owns the track and the notes scrolling over it, and is the only
// thing that correlates the two. It is not safe for concurrent use, the
// frame loop is expected to be its single owner.
type Session struct {
	track  *Track
	notes  []*Note
	speed  float64
	window Window
	tick   uint64
}

type Option func(*Session)

func WithSpeed(speed float64) Option {
	return func(s *Session) {
		s.speed = speed
	}
}

func WithWindow(window Window) Option {
	return func(s *Session) {
		s.window = window
	}
}

// NewSession checks every note fits inside the track
func NewSession(track *Track, notes []*Note, opts ...Option) (*Session, error) {
	for i, n := range notes {
		if n.BeginSection()+n.Width() > track.SectionCount() {
			return nil, fmt.Errorf("%w: note %v spans [%v, %v) but track has %v sections",
				ErrNoteOutOfTrack, i, n.BeginSection(), n.BeginSection()+n.Width(), track.SectionCount())
		}
	}
	s := &Session{
		track:  track,
		notes:  notes,
		speed:  TrackSpeed,
		window: DefaultWindow(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) Track() *Track {
	return s.track
}

func (s *Session) Notes() []*Note {
	return s.notes
}

func (s *Session) Speed() float64 {
	return s.speed
}

func (s *Session) Window() Window {
	return s.window
}

// TickCount is the number of ticks run so far
func (s *Session) TickCount() uint64 {
	return s.tick
}

// Tick scrolls every note down by the session speed
func (s *Session) Tick() {
	for _, note := range s.notes {
		note.SetPosition(note.Position() - s.speed)
	}
	s.tick++
}

// Activate marks the lane active and returns every note it intercepts.
// Notes are not consumed, so activating again while a note is still inside
// the window reports it again.
func (s *Session) Activate(section int) []Hit {
	s.track.Activate(section)

	var hits []Hit
	for i, note := range s.notes {
		if !note.Covers(section) || !s.window.Contains(note.Position()) {
			continue
		}
		hits = append(hits, Hit{
			Tick:    s.tick,
			Section: section,
			Index:   i,
			Note:    note,
			Offset:  s.window.Offset(note.Position()),
		})
	}
	return hits
}

func (s *Session) Deactivate(section int) {
	s.track.Deactivate(section)
}
