package canvas

import (
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestCanvas_PutPixel_Bounds(t *testing.T) {
	c := New(4, 3)
	c.Clear(white)

	c.PutPixel(0, 0, red)
	c.PutPixel(3, 2, red)
	if got := c.Image().RGBAAt(0, 0); got != red {
		t.Errorf("Expected red at (0,0), got %v", got)
	}
	if got := c.Image().RGBAAt(3, 2); got != red {
		t.Errorf("Expected red at (3,2), got %v", got)
	}

	// Out-of-bounds writes are dropped, not errors
	c.PutPixel(-1, 0, red)
	c.PutPixel(4, 0, red)
	c.PutPixel(0, 3, red)
	for x := 1; x < 4; x++ {
		if got := c.Image().RGBAAt(x, 0); got != white {
			t.Errorf("Expected untouched pixel at (%d,0), got %v", x, got)
		}
	}
}

func TestCanvas_PutPixelCentered_Mapping(t *testing.T) {
	c := New(800, 600)
	c.Clear(white)

	tests := []struct {
		name    string
		x, y    int
		screenX int
		screenY int
	}{
		{"center", 0, 0, 400, 300},
		{"right", 10, 0, 410, 300},
		{"up maps to smaller screen y", 0, 10, 400, 290},
		{"down maps to larger screen y", 0, -10, 400, 310},
		{"top edge", 0, 300, 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Clear(white)
			c.PutPixelCentered(tt.x, tt.y, red)
			if got := c.Image().RGBAAt(tt.screenX, tt.screenY); got != red {
				t.Errorf("Expected red at screen (%d,%d), got %v", tt.screenX, tt.screenY, got)
			}
		})
	}
}

// The centered predicate must agree exactly with the screen mapping for both
// even and odd dimensions: a centered coordinate passes the predicate if and
// only if the mapped screen coordinate passes the screen predicate.
func TestCanvas_InBoundsCentered_AgreesWithMapping(t *testing.T) {
	dims := []struct{ w, h int }{{8, 6}, {7, 5}, {1, 1}, {2, 3}}

	for _, d := range dims {
		c := New(d.w, d.h)
		for x := -d.w - 2; x <= d.w+2; x++ {
			for y := -d.h - 2; y <= d.h+2; y++ {
				sx := d.w/2 + x
				sy := d.h/2 - y
				if got, want := c.InBoundsCentered(x, y), c.InBounds(sx, sy); got != want {
					t.Errorf("%dx%d: predicate mismatch at centered (%d,%d): predicate=%t mapped=%t",
						d.w, d.h, x, y, got, want)
				}
			}
		}
	}
}

func TestCanvas_CenteredRange_CoversAllPixels(t *testing.T) {
	for _, d := range []struct{ w, h int }{{8, 6}, {7, 5}, {800, 600}} {
		c := New(d.w, d.h)
		minX, maxX, minY, maxY := c.CenteredRange()

		count := 0
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				if !c.InBoundsCentered(x, y) {
					t.Fatalf("%dx%d: (%d,%d) inside range but out of bounds", d.w, d.h, x, y)
				}
				count++
			}
		}
		if count != d.w*d.h {
			t.Errorf("%dx%d: range covers %d pixels, expected %d", d.w, d.h, count, d.w*d.h)
		}

		// One step outside the range on every side is out of bounds
		if c.InBoundsCentered(minX-1, 0) || c.InBoundsCentered(maxX+1, 0) ||
			c.InBoundsCentered(0, minY-1) || c.InBoundsCentered(0, maxY+1) {
			t.Errorf("%dx%d: coordinates just outside range should be out of bounds", d.w, d.h)
		}
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := New(4, 4)
	c.Clear(white)

	if c.Background() != white {
		t.Errorf("Expected white background, got %v", c.Background())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := c.Image().RGBAAt(x, y); got != white {
				t.Errorf("Expected white at (%d,%d), got %v", x, y, got)
			}
		}
	}
}

func TestCanvas_ToViewport(t *testing.T) {
	c := New(800, 600)
	c.SetViewport(Viewport{Width: 1, Height: 1, Distance: 1})

	tests := []struct {
		name   string
		x, y   int
		dx, dy float64
	}{
		{"center pixel points straight ahead", 0, 0, 0, 0},
		{"right edge", 400, 0, 0.5, 0},
		{"upper half keeps positive y", 0, 300, 0, 0.5},
		{"lower half keeps negative y", 0, -300, 0, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := c.ToViewport(tt.x, tt.y)
			if dir.X != tt.dx || dir.Y != tt.dy || dir.Z != 1 {
				t.Errorf("Expected (%v, %v, 1), got %v", tt.dx, tt.dy, dir)
			}
		})
	}
}
