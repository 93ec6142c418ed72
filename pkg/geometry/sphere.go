// Package geometry provides the scene primitives the raytracer intersects
// rays against. The only primitive is the sphere, which has a closed-form
// ray intersection via the quadratic formula.
package geometry

import (
	"image/color"
	"math"

	"github.com/scratchgfx/raytracer/pkg/vec"
)

// Sphere is a flat-colored sphere, immutable after construction.
type Sphere struct {
	Center vec.Vec3
	Radius float64
	Color  color.RGBA
}

// NewSphere creates a new sphere. Radius must be positive; validation is the
// caller's responsibility at scene construction.
func NewSphere(center vec.Vec3, radius float64, col color.RGBA) Sphere {
	return Sphere{Center: center, Radius: radius, Color: col}
}

// Intersect returns the two parameters t where the ray P(t) = O + t*D meets
// the sphere surface |P - C|^2 = r^2. Substituting P(t) gives the quadratic
// a*t^2 + b*t + c = 0 with a = D.D, b = 2*(O-C).D, c = (O-C).(O-C) - r^2.
//
// If the discriminant is negative there is no real intersection and both
// returned values are +Inf, so min-comparisons downstream discard them
// naturally. Otherwise both roots are returned with no ordering guarantee;
// callers must consider both. A zero-length direction is a caller contract
// violation and yields NaN.
func (s Sphere) Intersect(ray vec.Ray) (float64, float64) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return math.Inf(1), math.Inf(1)
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b + sqrtD) / (2 * a)
	t2 := (-b - sqrtD) / (2 * a)
	return t1, t2
}
