package render

import (
	"git.lost.host/meutraa/caeli/internal/game"
	"git.lost.host/meutraa/caeli/internal/theme"
)

// View is the read only state a scene is drawn from
type View interface {
	Track() *game.Track
	Notes() []*game.Note
}

func NewLayout(c Canvas, sections int) Layout {
	rows, cols := c.Size()
	return Layout{Rows: rows, Cols: cols, Sections: sections}
}

// DrawSession draws the lanes, then the notes, then the hit line on top
func DrawSession(c Canvas, th theme.Theme, v View) {
	track := v.Track()
	l := NewLayout(c, track.SectionCount())

	sectionAt := make([]int, l.Cols) // section under each column
	for i := 0; i < track.SectionCount(); i++ {
		bg := th.LaneColor(track.IsActivated(i))
		begin, end := l.Lane(i)
		for col := begin; col < end; col++ {
			sectionAt[col] = i
			for row := 0; row < l.Rows; row++ {
				if col == begin {
					c.Fill(row, col, th.SeparatorSymbol(), th.SeparatorColor(), bg)
				} else {
					c.Fill(row, col, " ", bg, bg)
				}
			}
		}
	}

	for _, note := range v.Notes() {
		bottom := game.ScreenOriginY + note.Position()
		top, last := l.Row(bottom+game.NoteHeight), l.Row(bottom)
		begin, end := l.Span(note)
		for row := top; row <= last; row++ {
			if !l.Visible(row) {
				continue
			}
			for col := begin; col < end; col++ {
				bg := th.LaneColor(track.IsActivated(sectionAt[col]))
				c.Fill(row, col, th.NoteSymbol(), th.NoteColor(), bg)
			}
		}
	}

	row := l.Row(game.HitLine)
	for col := 0; col < l.Cols; col++ {
		bg := th.LaneColor(track.IsActivated(sectionAt[col]))
		c.Fill(row, col, th.BaselineSymbol(), th.BaselineColor(), bg)
	}
}

// HitPosition is the cell where a hit on a section is shown
func HitPosition(l Layout, section int) (int, int) {
	begin, end := l.Lane(section)
	return l.Row(game.HitLine) + 1, (begin + end) / 2
}
