package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/sketchdeck/internal/sketch"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	blank = rune(0x2800)

	// CellWidth and CellHeight are the logical pixels one character cell
	// covers; a Braille dot is therefore DotSize x DotSize pixels.
	CellWidth  = 8
	CellHeight = 16
	DotSize    = 4

	// Colours fainter than this leave the cell untouched.
	minAlpha = 0.08
)

// cell is one character position: a Braille pattern or a text rune, drawn
// in fg over bg.
type cell struct {
	dots rune
	text rune
	fg   colorful.Color
	bg   colorful.Color
}

func (c cell) glyph() rune {
	if c.text != 0 {
		return c.text
	}
	return c.dots
}

// Canvas is a Braille surface. Renderers draw in logical pixels; every
// primitive is rasterised onto the 2x4 dot grid of the cells it covers.
type Canvas struct {
	sketch.Pen

	Width, Height int
	Grid          [][]cell

	frames int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Pen: sketch.DefaultPen()}
	c.resize(w, h)
	return c
}

func (c *Canvas) resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == c.Width && h == c.Height && c.Grid != nil {
		return
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]cell, h)
	for i := range c.Grid {
		c.Grid[i] = make([]cell, w)
	}
	c.Clear()
}

// Begin sizes the grid to cover a canvas of width x height logical pixels
// and resets the pen.
func (c *Canvas) Begin(width, height float64) sketch.Surface {
	cols := int(math.Ceil(width / CellWidth))
	rows := int(math.Ceil(height / CellHeight))
	c.resize(cols, rows)
	c.Pen.Reset()
	return c
}

func (c *Canvas) End() { c.frames++ }

// Frames returns how many frames have been presented.
func (c *Canvas) Frames() int { return c.frames }

// Clear resets the canvas
func (c *Canvas) Clear() {
	bg := colorful.Color{}
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = cell{dots: blank, fg: bg, bg: bg}
		}
	}
}

func (c *Canvas) Background(col color.Color) {
	bg, _ := sketch.Split(col)
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = cell{dots: blank, fg: bg, bg: bg}
		}
	}
}

func (c *Canvas) Gradient(top, bottom color.Color) {
	t, _ := sketch.Split(top)
	b, _ := sketch.Split(bottom)
	for i := range c.Grid {
		f := 0.0
		if c.Height > 1 {
			f = float64(i) / float64(c.Height-1)
		}
		bg := t.BlendLab(b, f).Clamped()
		for j := range c.Grid[i] {
			c.Grid[i][j] = cell{dots: blank, fg: bg, bg: bg}
		}
	}
}

// Set lights the dot at (x, y) in dot coordinates with col blended over
// the cell background.
func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || y < 0 {
		return
	}
	row, column := y/4, x/2
	if column >= c.Width || row >= c.Height {
		return
	}
	fg, a := sketch.Split(col)
	if a < minAlpha {
		return
	}
	cl := &c.Grid[row][column]
	cl.dots |= rune(pixelMap[y%4][x%2])
	cl.fg = cl.bg.BlendRgb(fg, a).Clamped()
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	row, column := y/4, x/2
	if column >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][column].dots &^= rune(pixelMap[y%4][x%2])
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2].dots&rune(pixelMap[y%4][x%2]) != 0
}

// Colors returns the foreground and background of cell (col, row).
func (c *Canvas) Colors(col, row int) (colorful.Color, colorful.Color) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return colorful.Color{}, colorful.Color{}
	}
	cl := c.Grid[row][col]
	return cl.fg, cl.bg
}

func dot(v float64) int { return int(math.Floor(v / DotSize)) }

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	if !c.Stroking() {
		return
	}
	c.drawLine(dot(x1), dot(y1), dot(x2), dot(y2), c.StrokeColor)
}

// drawLine draws a line using Bresenham's algorithm
func (c *Canvas) drawLine(x0, y0, x1, y1 int, col color.Color) {
	// Clip absurd spans so off-canvas geometry stays cheap.
	lim := 4 * (c.Width*2 + c.Height*4 + 16)
	if absInt(x1-x0) > lim || absInt(y1-y0) > lim {
		return
	}
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) Point(x, y float64) {
	if c.Stroking() {
		c.Set(dot(x), dot(y), c.StrokeColor)
	}
}

func (c *Canvas) Rect(x, y, w, h float64) {
	x0, y0 := dot(x), dot(y)
	x1, y1 := dot(x+w), dot(y+h)
	if c.Filling() {
		for dy := max(y0, 0); dy <= min(y1, c.Height*4-1); dy++ {
			for dx := max(x0, 0); dx <= min(x1, c.Width*2-1); dx++ {
				c.Set(dx, dy, c.FillColor)
			}
		}
	}
	if c.Stroking() {
		c.drawLine(x0, y0, x1, y0, c.StrokeColor)
		c.drawLine(x1, y0, x1, y1, c.StrokeColor)
		c.drawLine(x1, y1, x0, y1, c.StrokeColor)
		c.drawLine(x0, y1, x0, y0, c.StrokeColor)
	}
}

func (c *Canvas) Ellipse(cx, cy, w, h float64) {
	rx, ry := w/2/DotSize, h/2/DotSize
	ox, oy := cx/DotSize, cy/DotSize
	if c.Filling() {
		for dy := max(int(math.Floor(oy-ry)), 0); dy <= min(int(math.Ceil(oy+ry)), c.Height*4-1); dy++ {
			for dx := max(int(math.Floor(ox-rx)), 0); dx <= min(int(math.Ceil(ox+rx)), c.Width*2-1); dx++ {
				if inside(float64(dx)+0.5-ox, float64(dy)+0.5-oy, rx, ry) {
					c.Set(dx, dy, c.FillColor)
				}
			}
		}
		if rx < 1 && ry < 1 {
			c.Set(int(ox), int(oy), c.FillColor)
		}
	}
	if c.Stroking() {
		steps := max(int(2*math.Pi*math.Max(rx, ry)), 8)
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			c.Set(int(math.Floor(ox+rx*math.Cos(a))), int(math.Floor(oy+ry*math.Sin(a))), c.StrokeColor)
		}
	}
}

func inside(dx, dy, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	return (dx*dx)/(rx*rx)+(dy*dy)/(ry*ry) <= 1
}

// Text writes s into the cell row holding the baseline y. Each rune takes
// one cell regardless of the text size.
func (c *Canvas) Text(s string, x, y float64, align sketch.Align) {
	if !c.Filling() {
		return
	}
	fg, a := sketch.Split(c.FillColor)
	if a < minAlpha {
		return
	}
	switch align {
	case sketch.AlignCenter:
		x -= c.TextWidth(s) / 2
	case sketch.AlignRight:
		x -= c.TextWidth(s)
	}
	row := int(math.Floor((y - 1) / CellHeight))
	if row < 0 || row >= c.Height {
		return
	}
	col := int(math.Floor(x / CellWidth))
	for _, r := range s {
		if col >= 0 && col < c.Width {
			cl := &c.Grid[row][col]
			cl.text = r
			cl.fg = cl.bg.BlendRgb(fg, a).Clamped()
		}
		col++
	}
}

func (c *Canvas) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * CellWidth
}

// Overlay replaces a run of cells when the canvas is rendered, leaving the
// grid itself untouched.
type Overlay struct {
	Row, Col int
	Text     string
	FG, BG   colorful.Color
}

// Row renders grid row i as styled text, applying any overlays that land
// on it.
func (c *Canvas) Row(i int, overlays ...Overlay) string {
	if i < 0 || i >= c.Height {
		return ""
	}
	cells := c.Grid[i]
	copied := false
	for _, o := range overlays {
		if o.Row != i {
			continue
		}
		if !copied {
			cells = append([]cell(nil), c.Grid[i]...)
			copied = true
		}
		col := o.Col
		for _, r := range o.Text {
			if col >= 0 && col < len(cells) {
				cells[col] = cell{dots: blank, text: r, fg: o.FG, bg: o.BG}
			}
			col++
		}
	}

	var b strings.Builder
	start := 0
	for j := 1; j <= len(cells); j++ {
		if j < len(cells) && cells[j].fg == cells[start].fg && cells[j].bg == cells[start].bg {
			continue
		}
		var run strings.Builder
		for _, cl := range cells[start:j] {
			run.WriteRune(cl.glyph())
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(cells[start].fg.Hex())).
			Background(lipgloss.Color(cells[start].bg.Hex())).
			Render(run.String()))
		start = j
	}
	return b.String()
}

// Plain returns the glyphs of row i without styling.
func (c *Canvas) Plain(i int) string {
	if i < 0 || i >= c.Height {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.Grid[i] {
		b.WriteRune(cl.glyph())
	}
	return b.String()
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i := range c.Grid {
		b.WriteString(c.Row(i))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
