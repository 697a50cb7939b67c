package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composed terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// Canvas is a cell compositor flushed to a tcell screen once per frame
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// NewCanvas creates a canvas with the specified dimensions
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
	} else {
		c.cells = c.cells[:size]
	}
	c.width = width
	c.height = height
	c.Clear(RgbBackground)
}

// Clear fills every cell with a blank on bg using exponential copy
func (c *Canvas) Clear(bg RGB) {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = Cell{Rune: ' ', Fg: RgbStatusBar, Bg: bg}
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
}

// Bounds returns width and height
func (c *Canvas) Bounds() (int, int) {
	return c.width, c.height
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the cell at x, y or a zero cell out of bounds
func (c *Canvas) Get(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// SetWithBg writes an opaque cell
func (c *Canvas) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetFgOnly writes rune and foreground, keeping the background
func (c *Canvas) SetFgOnly(x, y int, r rune, fg RGB) {
	if !c.inBounds(x, y) {
		return
	}
	dst := &c.cells[y*c.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetBgOnly updates the background, keeping rune and foreground
func (c *Canvas) SetBgOnly(x, y int, bg RGB) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x].Bg = bg
}

// BlendBg tints the background toward src
func (c *Canvas) BlendBg(x, y int, src RGB, alpha float64) {
	if !c.inBounds(x, y) {
		return
	}
	dst := &c.cells[y*c.width+x]
	dst.Bg = dst.Bg.Blend(src, alpha)
}

// Text writes s left to right starting at x, clipped to the canvas
// Returns the column after the last rune written
func (c *Canvas) Text(x, y int, s string, fg, bg RGB, bold bool) int {
	for _, r := range s {
		if c.inBounds(x, y) {
			c.cells[y*c.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, Bold: bold}
		}
		x++
	}
	return x
}

// Row returns the runes of line y as a string, for tests and debug dumps
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	out := make([]rune, c.width)
	for x := 0; x < c.width; x++ {
		out[x] = c.cells[y*c.width+x].Rune
	}
	return string(out)
}

// Flush writes every cell to the screen and shows it
func (c *Canvas) Flush(screen tcell.Screen) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			style := tcell.StyleDefault.Foreground(cell.Fg.Tcell()).Background(cell.Bg.Tcell()).Bold(cell.Bold)
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	screen.Show()
}
