package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Style is the cell style used when drawing into a Frame.
type Style = tcell.Style

// StyleDefault is the terminal's default style.
var StyleDefault = tcell.StyleDefault

// Frame is the drawing surface handed to Screen.Draw.
//
// Coordinates are relative to the frame: (0, 0) is its top-left corner.
// Writes outside the frame are clipped. A Frame is only valid for the
// duration of the Draw call it was passed to.
type Frame struct {
	screen tcell.Screen
	area   Rect // absolute area on screen
}

func newFrame(screen tcell.Screen) *Frame {
	w, h := screen.Size()
	return &Frame{screen: screen, area: NewRect(0, 0, w, h)}
}

// Area returns the frame's drawable area in frame coordinates.
func (f *Frame) Area() Rect {
	return NewRect(0, 0, f.area.Width, f.area.Height)
}

// Size returns the frame's width and height in cells.
func (f *Frame) Size() (width, height int) {
	return f.area.Width, f.area.Height
}

// SetCell writes a single rune at (x, y).
func (f *Frame) SetCell(x, y int, r rune, style Style) {
	if !f.Area().Contains(x, y) {
		return
	}
	f.screen.SetContent(f.area.X+x, f.area.Y+y, r, nil, style)
}

// Cell returns the rune and style at (x, y). Cells outside the frame read as
// a blank with the default style.
func (f *Frame) Cell(x, y int) (rune, Style) {
	if !f.Area().Contains(x, y) {
		return ' ', StyleDefault
	}
	r, _, style, _ := f.screen.GetContent(f.area.X+x, f.area.Y+y)
	return r, style
}

// Print writes s starting at (x, y) on a single row, honoring wide runes.
// Output stops at the right edge of the frame. It returns the number of
// columns written.
func (f *Frame) Print(x, y int, s string, style Style) int {
	if y < 0 || y >= f.area.Height {
		return 0
	}
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > f.area.Width {
			break
		}
		if x >= 0 {
			f.screen.SetContent(f.area.X+x, f.area.Y+y, r, nil, style)
		}
		x += w
	}
	return max(0, x-max(start, 0))
}

// PrintCentered writes s horizontally centered on row y.
func (f *Frame) PrintCentered(y int, s string, style Style) int {
	x := (f.area.Width - runewidth.StringWidth(s)) / 2
	return f.Print(max(0, x), y, s, style)
}

// Fill sets every cell of the frame to r.
func (f *Frame) Fill(r rune, style Style) {
	for y := 0; y < f.area.Height; y++ {
		for x := 0; x < f.area.Width; x++ {
			f.screen.SetContent(f.area.X+x, f.area.Y+y, r, nil, style)
		}
	}
}

// Sub returns a frame restricted to r, given in this frame's coordinates.
// The result is clipped to this frame.
func (f *Frame) Sub(r Rect) *Frame {
	clipped := r.Intersect(f.Area())
	return &Frame{
		screen: f.screen,
		area:   clipped.Translate(f.area.X, f.area.Y),
	}
}
