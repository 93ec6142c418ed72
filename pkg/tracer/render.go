package tracer

import (
	"runtime"
	"sync"

	"github.com/scratchgfx/raytracer/pkg/canvas"
	"github.com/scratchgfx/raytracer/pkg/vec"
)

// RenderFrame casts one ray per canvas pixel from the given camera origin
// and writes the traced color back through the centered write path. Rays are
// restricted to the parametric range (tMin, tMax).
//
// Rows of the pixel grid are partitioned across worker goroutines. Every
// pixel trace is independent and each worker owns disjoint rows of the
// framebuffer, so no locking is needed. workers <= 0 uses one worker per CPU.
func (rt *Raytracer) RenderFrame(cv *canvas.Canvas, origin vec.Vec3, tMin, tMax float64, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	minX, maxX, minY, maxY := cv.CenteredRange()

	rows := make(chan int, maxY-minY+1)
	for y := maxY; y >= minY; y-- {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := minX; x <= maxX; x++ {
					direction := cv.ToViewport(x, y)
					col := rt.TraceRay(origin, direction, tMin, tMax)
					cv.PutPixelCentered(x, y, col)
				}
			}
		}()
	}
	wg.Wait()
}
