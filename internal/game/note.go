package game

import "fmt"

type Note struct {
	begin    int     // The first lane covered
	width    int     // Number of contiguous lanes covered
	position float64 // Scroll coordinate, decreases every tick
}

func NewNote(begin, width int, position float64) *Note {
	if begin < 0 || width < 1 {
		panic(fmt.Errorf("%w: begin %d, width %d", ErrInvalidNote, begin, width))
	}
	return &Note{begin: begin, width: width, position: position}
}

func (n *Note) BeginSection() int {
	return n.begin
}

func (n *Note) Width() int {
	return n.width
}

func (n *Note) Position() float64 {
	return n.position
}

func (n *Note) SetPosition(position float64) {
	n.position = position
}

// Covers reports whether section lies in [begin, begin+width)
func (n *Note) Covers(section int) bool {
	return section >= n.begin && section < n.begin+n.width
}
