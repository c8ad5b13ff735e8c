package raytracer

import (
	"runtime"

	"github.com/alitto/pond/v2"

	"Raybeam/internal/logger"
	"Raybeam/internal/raymath"
)

// DefaultParallelismFactor is the multiple of runtime.NumCPU() used to size
// the render worker pool. A factor above 1 keeps the pool busy while
// individual row-slices finish at different rates.
var DefaultParallelismFactor = 3

// Render fills cam.Framebuffer by shooting a primary ray per pixel,
// shading its nearest hit (or falling back to scene.Background), and
// writing the result as BGRA. The framebuffer is partitioned into
// contiguous row-slices, one per pool worker, each written by exactly one
// goroutine so no synchronization beyond the final join is required.
func Render(scene *Scene, cam *Camera) {
	RenderWithFactor(scene, cam, DefaultParallelismFactor)
}

// RenderWithFactor is Render with an explicit parallelism factor in place
// of DefaultParallelismFactor, for callers that need to tune worker count
// per call (e.g. a batch renderer sharing a machine with other load).
func RenderWithFactor(scene *Scene, cam *Camera, factor int) {
	workers := factor * runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > cam.Rows {
		workers = cam.Rows
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	rowsPerWorker := (cam.Rows + workers - 1) / workers
	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > cam.Rows {
			endRow = cam.Rows
		}
		if startRow >= endRow {
			continue
		}
		start, end := startRow, endRow
		pool.Submit(func() {
			renderRows(scene, cam, start, end)
		})
	}

	logger.Log.Debugw("render dispatched", "workers", workers, "rows", cam.Rows, "cols", cam.Cols)
}

func renderRows(scene *Scene, cam *Camera, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < cam.Cols; col++ {
			r := cam.PrimaryRay(row, col)
			color := scene.Background
			if hit, ok := scene.IntersectNearest(r, nil); ok {
				viewDir := r.Direction.Neg().Normalize()
				color = shade(scene, hit, viewDir)
			}
			writePixel(cam.Framebuffer, cam.Cols, row, col, color)
		}
	}
}

// writePixel converts color (components in [0,1]) to a BGRA byte quad at
// (row, col) in a row-major cols-wide buffer.
func writePixel(buf []byte, cols, row, col int, color raymath.Vec3) {
	offset := (row*cols + col) * 4
	c := color.Clamp(0, 1)
	buf[offset+0] = byte(c.Z * 255)
	buf[offset+1] = byte(c.Y * 255)
	buf[offset+2] = byte(c.X * 255)
	buf[offset+3] = 255
}
