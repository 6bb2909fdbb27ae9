// Command rtview renders a scene into a window, showing tiles as workers
// finish them. Esc quits and S saves the current image as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/display"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/fogleman/gg"
)

func main() {
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	sceneType := flag.String("scene", "default", "Scene name")
	scale := flag.Int("scale", 1, "Window pixels per image pixel")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	outputRoot := flag.String("output", "output", "Root directory for saved images")
	flag.Parse()

	if err := run(*width, *height, *sceneType, *scale, *workers, *outputRoot); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run(width, height int, sceneType string, scale, workers int, outputRoot string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}

	selectedScene, err := scene.Lookup(sceneType)
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}

	fb := display.NewFramebuffer(width, height)
	rt := renderer.NewRaytracer(selectedScene, width, height)
	config := renderer.DefaultRaytracerConfig()
	config.NumWorkers = workers
	rt.SetConfig(config)
	rt.SetLogger(log.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		stats, err := rt.Render(ctx, fb)
		if err != nil {
			log.Printf("Render stopped: %v", err)
			return
		}
		log.Printf("Rays: %d primary, %d shadow, %d reflection",
			stats.PrimaryRays, stats.ShadowRays, stats.ReflectionRays)
	}()

	save := func(img image.Image) error {
		dir := filepath.Join(outputRoot, filepath.Base(sceneType))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
		if err := gg.SavePNG(filename, img); err != nil {
			return err
		}
		log.Printf("Saved %s", filename)
		return nil
	}

	return runWindow(fb, "rtview: "+sceneType, max(scale, 1), save)
}
