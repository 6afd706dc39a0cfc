package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Canvas
	Init() error
	Deinit() error
	AddDecoration(row, col int, content string, fg color.RGBA, frames int)
	RenderLoop(period time.Duration, frame func(n uint64) bool)
}

// Canvas is a grid of terminal cells, row 0 at the top
type Canvas interface {
	Size() (rows, cols int)
	Clear()
	Fill(row, col int, content string, fg, bg color.RGBA)
}
