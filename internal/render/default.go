package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

type cell struct {
	content string
	fg, bg  color.RGBA // Zero alpha is the terminal default
}

var blank = cell{content: " "}

// DefaultRenderer draws into a back buffer and only writes the cells that
// changed since the previous frame.
type DefaultRenderer struct {
	out          io.Writer
	fd           int
	restoreState *term.State
	rows, cols   int
	front, back  []cell
	buffer       strings.Builder
	decorations  []*decoration
}

type decoration struct {
	row, col int
	content  string
	fg       color.RGBA
	frames   int // remaining frames until removed
}

// NewRenderer draws to out without touching the terminal state
func NewRenderer(out io.Writer, rows, cols int) *DefaultRenderer {
	r := &DefaultRenderer{out: out, fd: -1}
	r.resize(rows, cols)
	return r
}

func (r *DefaultRenderer) resize(rows, cols int) {
	r.rows, r.cols = rows, cols
	r.front = make([]cell, rows*cols)
	r.back = make([]cell, rows*cols)
	r.Clear()
}

func (r *DefaultRenderer) Init() error {
	fd := int(os.Stdout.Fd())
	cols, rows, err := term.GetSize(fd)
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	state, err := term.MakeRaw(fd)
	if nil != err {
		return fmt.Errorf("unable to make terminal raw: %w", err)
	}
	r.fd = fd
	r.restoreState = state
	r.out = os.Stdout
	r.resize(rows, cols)

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out, "%s%s%s",
		"\033[0m",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

func (r *DefaultRenderer) Size() (int, int) {
	return r.rows, r.cols
}

func (r *DefaultRenderer) Clear() {
	for i := range r.back {
		r.back[i] = blank
	}
}

// Fill writes content to a cell, anything off screen is dropped
func (r *DefaultRenderer) Fill(row, col int, content string, fg, bg color.RGBA) {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return
	}
	r.back[row*r.cols+col] = cell{content: content, fg: fg, bg: bg}
}

func (r *DefaultRenderer) AddDecoration(row, col int, content string, fg color.RGBA, frames int) {
	r.decorations = append(r.decorations, &decoration{
		row:     row,
		col:     col,
		content: content,
		fg:      fg,
		frames:  frames,
	})
}

// tickDecorations draws the live decorations over the frame, keeping the
// background of whatever is underneath
func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.frames <= 0 {
			continue
		}
		if d.row >= 0 && d.row < r.rows && d.col >= 0 && d.col < r.cols {
			under := r.back[d.row*r.cols+d.col]
			r.Fill(d.row, d.col, d.content, d.fg, under.bg)
		}
		d.frames--
		nd = append(nd, d)
	}
	r.decorations = nd
}

func (r *DefaultRenderer) RenderLoop(period time.Duration, frame func(n uint64) bool) {
	cont := true
	for n := uint64(0); cont; n++ {
		now := time.Now()
		deadline := now.Add(period)

		cont = frame(n)

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func writeColor(b *strings.Builder, c color.RGBA, ground string, reset string) {
	if c.A == 0 {
		b.WriteString(reset)
		return
	}
	b.WriteString(ground)
	b.WriteString(";2;")
	b.WriteString(strconv.FormatInt(int64(c.R), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.G), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.B), 10))
}

func (r *DefaultRenderer) flush() {
	cursor := -1
	var fg, bg color.RGBA
	styled := false
	for i, c := range r.back {
		if r.front[i] == c {
			continue
		}
		if cursor != i {
			r.buffer.WriteString("\033[")
			r.buffer.WriteString(strconv.Itoa(i/r.cols + 1))
			r.buffer.WriteString(";")
			r.buffer.WriteString(strconv.Itoa(i%r.cols + 1))
			r.buffer.WriteString("H")
		}
		if !styled || c.fg != fg || c.bg != bg {
			r.buffer.WriteString("\033[")
			writeColor(&r.buffer, c.fg, "38", "39")
			r.buffer.WriteString(";")
			writeColor(&r.buffer, c.bg, "48", "49")
			r.buffer.WriteString("m")
			fg, bg, styled = c.fg, c.bg, true
		}
		r.buffer.WriteString(c.content)
		r.front[i] = c
		cursor = i + 1
	}
	if r.buffer.Len() == 0 {
		return
	}
	io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
}
