package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
)

// Block characters used by Render.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Point is a 2D coordinate in world space.
type Point struct {
	X, Y float64
}

// Viewport is the rectangle of world space shown on screen.
// World y points up; terminal rows grow down.
type Viewport struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the viewport width in world units.
func (v Viewport) Width() float64 { return v.MaxX - v.MinX }

// Height returns the viewport height in world units.
func (v Viewport) Height() float64 { return v.MaxY - v.MinY }

// Canvas is a monochrome pixel buffer with 2x vertical resolution using
// half-block characters. It maps world coordinates onto terminal cells.
type Canvas struct {
	view       Viewport
	termWidth  int
	termHeight int
	subHeight  int    // termHeight * 2
	pixels     []bool // [y * termWidth + x]
	scaleX     float64
	scaleY     float64

	scaledBuf       []Point
	intersectionBuf []float64
}

// NewCanvas creates a canvas of the given terminal size showing view.
func NewCanvas(termWidth, termHeight int, view Viewport) *Canvas {
	c := &Canvas{view: view}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subHeight = termHeight * 2
		c.pixels = make([]bool, c.subHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.view.Width()
	c.scaleY = float64(c.subHeight) / c.view.Height()
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// toPixel converts world coordinates to fractional pixel coordinates.
func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	return (x - c.view.MinX) * c.scaleX, (c.view.MaxY - y) * c.scaleY
}

// WorldToCell converts world coordinates to a 1-based terminal cell.
func (c *Canvas) WorldToCell(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return int(math.Floor(px)) + 1, int(math.Floor(py))/2 + 1
}

// Pixel reports whether the sub-pixel at (x, y) is set. Out of range is false.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// DrawLine draws a world-space line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	fx1, fy1 := c.toPixel(p1.X, p1.Y)
	fx2, fy2 := c.toPixel(p2.X, p2.Y)
	x1, y1 := int(math.Floor(fx1)), int(math.Floor(fy1))
	x2, y2 := int(math.Floor(fx2)), int(math.Floor(fy2))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillPolygon fills a world-space polygon and draws its outline, so thin
// shapes stay visible at low resolution.
func (c *Canvas) FillPolygon(points []Point) {
	if len(points) < 3 {
		return
	}

	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		x, y := c.toPixel(p.X, p.Y)
		scaled[i] = Point{X: x, Y: y}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := max(int(math.Floor(intersections[i])), 0)
			xEnd := min(int(math.Floor(intersections[i+1])), c.termWidth-1)
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// Render writes every non-empty cell to w as positioned half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	var numBuf [20]byte
	out := make([]byte, 0, c.termWidth*c.termHeight)

	for row := 0; row < c.termHeight; row++ {
		top := row * 2 * c.termWidth
		bottom := top + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			var ch rune
			switch t, b := c.pixels[top+col], c.pixels[bottom+col]; {
			case t && b:
				ch = BlockFull
			case t:
				ch = BlockUpperHalf
			case b:
				ch = BlockLowerHalf
			default:
				continue
			}

			out = append(out, "\033["...)
			out = append(out, strconv.AppendInt(numBuf[:0], int64(row+1), 10)...)
			out = append(out, ';')
			out = append(out, strconv.AppendInt(numBuf[:0], int64(col+1), 10)...)
			out = append(out, 'H')
			out = append(out, string(ch)...)
		}
	}

	_, err := w.Write(out)
	return err
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
