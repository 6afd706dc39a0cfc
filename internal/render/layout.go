package render

import (
	"math"

	"git.lost.host/meutraa/caeli/internal/game"
)

// Layout maps the normalized screen, [-1, 1] on both axes with y pointing
// up, onto a grid of terminal cells split into equal lanes.
type Layout struct {
	Rows, Cols int
	Sections   int
}

// Row of the cell containing height y
func (l Layout) Row(y float64) int {
	top := game.ScreenOriginY + game.ScreenHeight
	return int(math.Round((top - y) / game.ScreenHeight * float64(l.Rows-1)))
}

func (l Layout) Visible(row int) bool {
	return row >= 0 && row < l.Rows
}

// Lane returns the columns [begin, end) of a section
func (l Layout) Lane(section int) (int, int) {
	return section * l.Cols / l.Sections, (section + 1) * l.Cols / l.Sections
}

// Span returns the columns [begin, end) covered by a note
func (l Layout) Span(n *game.Note) (int, int) {
	begin, _ := l.Lane(n.BeginSection())
	_, end := l.Lane(n.BeginSection() + n.Width() - 1)
	return begin, end
}
