package theme

import "image/color"

type Theme interface {
	LaneColor(active bool) color.RGBA
	SeparatorColor() color.RGBA
	NoteColor() color.RGBA
	BaselineColor() color.RGBA
	HitColor() color.RGBA

	SeparatorSymbol() string
	NoteSymbol() string
	BaselineSymbol() string
	HitSymbol() string
}
