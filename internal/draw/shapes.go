package draw

import (
	"math"

	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// circleSegments is the vertex count used to approximate circles.
const circleSegments = 32

// DrawCircle draws a circle centered on (cx, cy). width 0 fills it,
// otherwise width concentric outlines are drawn inward from radius.
func (c *Canvas) DrawCircle(cx, cy, radius float64, color Color, width int) {
	if radius <= 0 {
		return
	}
	if width <= 0 {
		c.DrawPolygon(c.circlePoints(cx, cy, radius), color, true)
		// Circles smaller than a pixel still leave a mark.
		c.Set(cx, cy, color)
		return
	}
	for i := 0; i < width && radius-float64(i) > 0; i++ {
		c.DrawPolygon(c.circlePoints(cx, cy, radius-float64(i)), color, false)
	}
}

func (c *Canvas) circlePoints(cx, cy, radius float64) []Point {
	points := c.BorrowPoints(circleSegments)
	for i := range points {
		angle := float64(i) * 2 * math.Pi / circleSegments
		points[i] = Point{
			X: cx + math.Cos(angle)*radius,
			Y: cy + math.Sin(angle)*radius,
		}
	}
	return points
}

// FillRect fills a logical rectangle.
func (c *Canvas) FillRect(r physics.Rect, color Color) {
	c.FillMask(r, func(u, v float64) Color { return color })
}

// FillMask paints every pixel covered by r with the color sample returns for
// the pixel center, given as normalized coordinates u, v in [0, 1).
// ColorNone leaves the pixel untouched.
func (c *Canvas) FillMask(r physics.Rect, sample func(u, v float64) Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Floor(r.Left() * c.scaleX))
	x1 := int(math.Ceil(r.Right() * c.scaleX))
	y0 := int(math.Floor(r.Top() * c.scaleY))
	y1 := int(math.Ceil(r.Bottom() * c.scaleY))

	// Keep tiny objects visible on coarse terminals.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	pw := float64(x1 - x0)
	ph := float64(y1 - y0)
	for y := max(y0, 0); y < min(y1, c.subPixelHeight); y++ {
		v := (float64(y-y0) + 0.5) / ph
		for x := max(x0, 0); x < min(x1, c.termWidth); x++ {
			u := (float64(x-x0) + 0.5) / pw
			if color := sample(u, v); color != ColorNone {
				c.pixels[y*c.termWidth+x] = color
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
