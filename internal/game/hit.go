package game

import "fmt"

// Hit is reported for every note intercepted by a lane activation
type Hit struct {
	Tick    uint64
	Section int
	Index   int // Index of the note in the session
	Note    *Note
	Offset  float64 // Screen space position of the note when hit
}

func (h Hit) String() string {
	return fmt.Sprintf("tick %v lane %v note %v [%v, %v) at %.4f",
		h.Tick, h.Section, h.Index, h.Note.BeginSection(), h.Note.BeginSection()+h.Note.Width(), h.Offset)
}

// Activation is a single lane activation at a given tick
type Activation struct {
	Section int    `json:"section"`
	Tick    uint64 `json:"tick"`
}
