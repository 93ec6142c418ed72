// Package postprocess contains image-space steps applied after tracing.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled render down to width x height using
// CatmullRom filtering. Rendered frames are fully opaque, so no alpha
// premultiplication is needed. Returns the input unchanged when it already
// has the target size.
func Downsample(img *image.RGBA, width, height int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
