package game

const (
	// TrackSpeed is how far every note scrolls per tick
	TrackSpeed = 0.00005

	// The normalized screen spans [-1, 1] on both axes
	ScreenHeight  = 2.0
	ScreenOriginY = -1.0

	// The hit line is drawn at this absolute height
	HitLine   = -0.8
	HitBottom = -0.9

	// Rendered height of a note
	NoteHeight = 0.1
)

// Window is the band around the hit line in which an activation counts.
// A note's position is shifted by Origin into screen space and must then
// lie in the closed interval [Bottom, Top].
type Window struct {
	Origin float64
	Top    float64
	Bottom float64
}

func DefaultWindow() Window {
	return Window{Origin: ScreenOriginY, Top: HitLine, Bottom: HitBottom}
}

// Offset maps a note position into screen space
func (w Window) Offset(position float64) float64 {
	return position + w.Origin
}

func (w Window) Contains(position float64) bool {
	offset := w.Offset(position)
	return offset <= w.Top && offset >= w.Bottom
}
