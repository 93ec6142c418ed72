// Package display presents a finished canvas in a desktop window. It is a
// thin wrapper over ebiten; nothing here touches the tracing core.
package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying the image and blocks until the user closes
// it or presses Escape.
func Show(img *image.RGBA, title string) error {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(60)

	return ebiten.RunGame(&viewer{img: img, width: w, height: h})
}

// viewer implements ebiten.Game over a static frame.
type viewer struct {
	img    *image.RGBA
	width  int
	height int
	frame  *ebiten.Image
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame == nil {
		v.frame = ebiten.NewImage(v.width, v.height)
		v.frame.WritePixels(v.img.Pix)
	}
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
