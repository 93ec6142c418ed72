// Package scene holds the objects the raytracer renders. Scene contents are
// data: nothing in the tracing algorithm depends on what is in the list.
package scene

import (
	"image/color"

	"github.com/scratchgfx/raytracer/pkg/geometry"
	"github.com/scratchgfx/raytracer/pkg/vec"
)

// Scene is an ordered collection of spheres plus the background color shown
// where no sphere is hit. It is constructed once and read-only afterwards;
// iteration order is the tie-break when two intersections coincide exactly.
type Scene struct {
	Spheres    []geometry.Sphere
	Background color.RGBA
}

// NewScene creates a scene from the given spheres and background color.
func NewScene(background color.RGBA, spheres ...geometry.Sphere) *Scene {
	return &Scene{Spheres: spheres, Background: background}
}

// NewDefaultScene creates the reference scene: three unit spheres ahead of
// the camera, a large yellow sphere acting as the ground, and a black sphere
// above the visible field. White background.
func NewDefaultScene() *Scene {
	return NewScene(
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
		geometry.NewSphere(vec.NewVec3(0, -1, 3), 1, color.RGBA{R: 255, A: 255}),
		geometry.NewSphere(vec.NewVec3(-2, 0, 4), 1, color.RGBA{G: 255, A: 255}),
		geometry.NewSphere(vec.NewVec3(2, 0, 4), 1, color.RGBA{B: 255, A: 255}),
		geometry.NewSphere(vec.NewVec3(0, -5001, 0), 5000, color.RGBA{R: 255, G: 255, A: 255}),
		geometry.NewSphere(vec.NewVec3(0, 2, 3), 1, color.RGBA{A: 255}),
	)
}
