package canvas

import "github.com/scratchgfx/raytracer/pkg/vec"

// Viewport describes the projection plane rays are cast through: a Width x
// Height rectangle at Distance in front of the camera. All three values must
// be positive; validation is the caller's responsibility at construction.
type Viewport struct {
	Width    float64
	Height   float64
	Distance float64
}

// SetViewport sets the projection plane used by ToViewport. Called once
// before tracing begins.
func (c *Canvas) SetViewport(vp Viewport) {
	c.viewport = vp
}

// Viewport returns the current projection plane parameters
func (c *Canvas) Viewport() Viewport { return c.viewport }

// ToViewport converts a centered pixel coordinate to the direction vector
// from the camera through that pixel on the projection plane. Centered pixel
// space is already Y-up, so no sign flip happens here; the only Y flip is in
// the centered-to-screen write mapping. The result is not normalized.
func (c *Canvas) ToViewport(x, y int) vec.Vec3 {
	return vec.Vec3{
		X: float64(x) * c.viewport.Width / float64(c.width),
		Y: float64(y) * c.viewport.Height / float64(c.height),
		Z: c.viewport.Distance,
	}
}
