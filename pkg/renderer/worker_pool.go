package renderer

import (
	"context"
	"image"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// numWorkers resolves the configured worker count
func (rt *Raytracer) numWorkers() int {
	if rt.config.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return rt.config.NumWorkers
}

// Render traces every pixel into sink, spreading tiles across parallel
// workers. Tiles are disjoint, so the sink sees each pixel exactly once.
// When ctx is cancelled no further tiles are started and ctx.Err() is
// returned; pixels already written stay in the sink.
func (rt *Raytracer) Render(ctx context.Context, sink PixelSink) (RenderStats, error) {
	startTime := time.Now()
	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize)
	workers := rt.numWorkers()

	rt.logger.Printf("Rendering %dx%d: %d tiles on %d workers...\n",
		rt.width, rt.height, len(tiles), workers)

	counts := make([]RayCounts, len(tiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			counts[i] = rt.renderBounds(tile.Bounds, sink)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		Tiles:       len(tiles),
		Workers:     workers,
		Elapsed:     time.Since(startTime),
	}
	for _, c := range counts {
		stats.RayCounts = stats.RayCounts.Add(c)
	}

	rt.logger.Printf("Render completed in %v (%d rays)\n", stats.Elapsed, stats.Total())
	return stats, nil
}

// RenderSerial traces every pixel into sink on the calling goroutine in
// row-major order
func (rt *Raytracer) RenderSerial(sink PixelSink) RenderStats {
	startTime := time.Now()
	counts := rt.renderBounds(image.Rect(0, 0, rt.width, rt.height), sink)

	stats := RenderStats{
		RayCounts:   counts,
		TotalPixels: rt.width * rt.height,
		Tiles:       1,
		Workers:     1,
		Elapsed:     time.Since(startTime),
	}

	rt.logger.Printf("Render completed in %v (%d rays)\n", stats.Elapsed, stats.Total())
	return stats
}
