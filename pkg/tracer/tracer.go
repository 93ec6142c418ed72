// Package tracer implements the ray casting core: for each ray it finds the
// nearest sphere intersection within a parametric range and reports that
// sphere's color, falling back to a background color on a miss.
package tracer

import (
	"image/color"
	"math"

	"github.com/scratchgfx/raytracer/pkg/geometry"
	"github.com/scratchgfx/raytracer/pkg/vec"
)

// BackgroundSource supplies the color returned when a ray hits nothing.
// The tracer gets this capability instead of general canvas access so the
// trace path stays free of framebuffer side effects.
type BackgroundSource interface {
	Background() color.RGBA
}

// Raytracer scans a fixed, ordered sphere list per ray. The list is
// established at construction and never mutated, so traces are safe to run
// concurrently.
type Raytracer struct {
	spheres    []geometry.Sphere
	background BackgroundSource
}

// New creates a raytracer over the given spheres. The slice is not copied;
// callers must not mutate it after construction.
func New(spheres []geometry.Sphere, background BackgroundSource) *Raytracer {
	return &Raytracer{spheres: spheres, background: background}
}

// TraceRay returns the color of the nearest sphere the ray hits with
// parameter t in the open interval (tMin, tMax), or the background color if
// none qualifies. Both intersection roots of every sphere are considered;
// the scan is a deliberate brute-force O(spheres) loop, and the strict
// closest-t comparison makes the first sphere in scene order win exact ties.
func (rt *Raytracer) TraceRay(origin, direction vec.Vec3, tMin, tMax float64) color.RGBA {
	ray := vec.NewRay(origin, direction)

	closestT := math.Inf(1)
	closestSphere := -1

	for i := range rt.spheres {
		t1, t2 := rt.spheres[i].Intersect(ray)
		if tMin < t1 && t1 < tMax && t1 < closestT {
			closestT = t1
			closestSphere = i
		}
		if tMin < t2 && t2 < tMax && t2 < closestT {
			closestT = t2
			closestSphere = i
		}
	}

	if closestSphere < 0 {
		return rt.background.Background()
	}
	return rt.spheres[closestSphere].Color
}
