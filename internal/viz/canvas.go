package viz

import (
	"strings"
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

const brailleBlank = 0x2800

// Canvas is a character grid addressed in sub-pixels, two per column and
// four per row.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = []rune(strings.Repeat(string(rune(brailleBlank)), w))
	}
	return c
}

// PixelsX and PixelsY are the canvas size in sub-pixels.
func (c *Canvas) PixelsX() int { return c.Width * 2 }
func (c *Canvas) PixelsY() int { return c.Height * 4 }

// Set lights sub-pixel (x, y); y grows downwards. Out-of-range points are
// dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.PixelsX() || y >= c.PixelsY() {
		return
	}
	c.Grid[y/4][x/2] |= rune(pixelMap[y%4][x%2])
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
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
		c.Set(x0, y0)
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

// PlotUnit traces fn over every sub-pixel column. fn maps a column's
// position in [0, 1] to a value in [0, 1], drawn bottom to top.
func (c *Canvas) PlotUnit(fn func(t float64) float64) {
	w, h := c.PixelsX(), c.PixelsY()
	if w < 2 || h < 1 {
		return
	}
	toY := func(v float64) int {
		v = max(0, min(1, v))
		return h - 1 - int(v*float64(h-1)+0.5)
	}

	prev := toY(fn(0))
	for x := 1; x < w; x++ {
		y := toY(fn(float64(x) / float64(w-1)))
		c.DrawLine(x-1, prev, x, y)
		prev = y
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
