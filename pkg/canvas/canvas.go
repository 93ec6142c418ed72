// Package canvas provides the framebuffer the raytracer draws into, along
// with the coordinate mappings between centered pixel space, top-left screen
// space, and the continuous viewport plane.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is a fixed-size pixel grid with a background color. Screen
// coordinates have their origin at the top-left with Y increasing downward;
// centered coordinates have their origin at the canvas middle with Y
// increasing upward.
type Canvas struct {
	width      int
	height     int
	background color.RGBA
	viewport   Viewport
	img        *image.RGBA
}

// New creates a canvas of the given dimensions, cleared to black.
// Width and height must be positive; that is the caller's responsibility.
func New(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	c.Clear(color.RGBA{A: 255})
	return c
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Background returns the color written by the last Clear
func (c *Canvas) Background() color.RGBA { return c.background }

// Image returns the underlying pixel buffer for presenting or encoding
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills every pixel with the given color and records it as the
// background color.
func (c *Canvas) Clear(col color.RGBA) {
	c.background = col
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// InBounds reports whether (x, y) is a valid screen coordinate.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// InBoundsCentered reports whether the centered coordinate (x, y) maps to a
// valid screen coordinate. It applies the same mapping as PutPixelCentered
// and then checks screen bounds, so the two can never disagree, odd
// dimensions included.
func (c *Canvas) InBoundsCentered(x, y int) bool {
	sx, sy := c.toScreen(x, y)
	return c.InBounds(sx, sy)
}

// toScreen converts centered coordinates (origin at canvas middle, Y up) to
// screen coordinates (origin top-left, Y down).
func (c *Canvas) toScreen(x, y int) (int, int) {
	return c.width/2 + x, c.height/2 - y
}

// PutPixel writes a pixel at screen coordinates. Writes outside the canvas
// are silently ignored.
func (c *Canvas) PutPixel(x, y int, col color.RGBA) {
	if c.InBounds(x, y) {
		c.img.SetRGBA(x, y, col)
	}
}

// PutPixelCentered writes a pixel at centered coordinates, flipping Y to
// reach screen space. Out-of-range writes are silently ignored.
func (c *Canvas) PutPixelCentered(x, y int, col color.RGBA) {
	sx, sy := c.toScreen(x, y)
	c.PutPixel(sx, sy, col)
}

// CenteredRange returns the inclusive centered-coordinate range [minX, maxX]
// x [minY, maxY] that covers exactly the canvas pixels.
func (c *Canvas) CenteredRange() (minX, maxX, minY, maxY int) {
	minX = -(c.width / 2)
	maxX = c.width - 1 - c.width/2
	minY = c.height/2 - (c.height - 1)
	maxY = c.height / 2
	return minX, maxX, minY, maxY
}
