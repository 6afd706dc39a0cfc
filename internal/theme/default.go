package theme

import "image/color"

type DefaultTheme struct{}

var (
	activeLane   = color.RGBA{128, 128, 128, 255} // 0.5 grey
	inactiveLane = color.RGBA{51, 51, 51, 255}    // 0.2 grey
	separator    = color.RGBA{255, 255, 255, 255}
	note         = color.RGBA{255, 0, 0, 255}
	baseline     = color.RGBA{255, 255, 0, 255}
	hit          = color.RGBA{0, 236, 128, 255}
)

const (
	separatorSym = "│"
	noteSym      = "█"
	baselineSym  = "─"
	hitSym       = "◆"
)

func (t *DefaultTheme) LaneColor(active bool) color.RGBA {
	if active {
		return activeLane
	}
	return inactiveLane
}

func (t *DefaultTheme) SeparatorColor() color.RGBA { return separator }
func (t *DefaultTheme) NoteColor() color.RGBA      { return note }
func (t *DefaultTheme) BaselineColor() color.RGBA  { return baseline }
func (t *DefaultTheme) HitColor() color.RGBA       { return hit }

func (t *DefaultTheme) SeparatorSymbol() string { return separatorSym }
func (t *DefaultTheme) NoteSymbol() string      { return noteSym }
func (t *DefaultTheme) BaselineSymbol() string  { return baselineSym }
func (t *DefaultTheme) HitSymbol() string       { return hitSym }
