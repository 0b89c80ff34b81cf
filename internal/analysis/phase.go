package analysis

import (
	"strings"

	"github.com/san-kum/fuzzpong/internal/pong"
)

type Point struct{ X, Y float64 }

// Portrait pairs each tick's horizontal offset with the move requested in
// response.
func Portrait(frames []pong.Frame, side pong.Side) []Point {
	pts := make([]Point, 0, len(frames))
	for _, f := range frames {
		p := f.Paddle(side)
		pts = append(pts, Point{X: p.Dx, Y: p.Command})
	}
	return pts
}

// Scatter draws points on a width x height character canvas with axes
// where they cross the visible area.
func Scatter(points []Point, width, height int) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	minY -= rangeY * 0.05
	rangeX *= 1.1
	rangeY *= 1.1

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	toCol := func(x float64) int { return int((x - minX) / rangeX * float64(width-1)) }
	toRow := func(y float64) int { return height - 1 - int((y-minY)/rangeY*float64(height-1)) }

	if col := toCol(0); col >= 0 && col < width {
		for row := range canvas {
			canvas[row][col] = '│'
		}
	}
	if row := toRow(0); row >= 0 && row < height {
		for col := range canvas[row] {
			if canvas[row][col] == '│' {
				canvas[row][col] = '┼'
			} else {
				canvas[row][col] = '─'
			}
		}
	}

	for _, p := range points {
		row, col := toRow(p.Y), toCol(p.X)
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
