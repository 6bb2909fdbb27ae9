package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/fogleman/gg"
)

// Config holds the command line options
type Config struct {
	Width     int
	Height    int
	SceneType string
	OutputDir string
	Workers   int
	TileSize  int
	Serial    bool
}

func main() {
	config := Config{}
	flag.IntVar(&config.Width, "width", 800, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 600, "Image height in pixels")
	flag.StringVar(&config.SceneType, "scene", "default", "Scene name (see -help)")
	flag.StringVar(&config.OutputDir, "output", "output", "Root directory for rendered images")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.IntVar(&config.TileSize, "tile", 32, "Tile size in pixels")
	flag.BoolVar(&config.Serial, "serial", false, "Render on a single goroutine in row-major order")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if err := run(config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
}

func run(config Config) error {
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", config.Width, config.Height)
	}

	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, err := createScene(config.SceneType)
	if err != nil {
		return err
	}

	outputDir := createOutputDir(config.OutputDir, config.SceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	raytracer := renderer.NewRaytracer(selectedScene, config.Width, config.Height)
	raytracer.SetConfig(renderer.RaytracerConfig{
		TileSize:   config.TileSize,
		NumWorkers: config.Workers,
	})
	raytracer.SetLogger(renderer.NewDefaultLogger())

	canvas := renderer.NewCanvas(config.Width, config.Height)

	var stats renderer.RenderStats
	if config.Serial {
		stats = raytracer.RenderSerial(canvas)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		stats, err = raytracer.Render(ctx, canvas)
		if err != nil {
			return fmt.Errorf("render interrupted: %w", err)
		}
	}

	fmt.Printf("Rays: %d primary, %d shadow, %d reflection\n",
		stats.PrimaryRays, stats.ShadowRays, stats.ReflectionRays)
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(canvas.Image()))

	filename := outputFilename(outputDir, time.Now())
	if err := gg.SavePNG(filename, canvas.Image()); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the named built-in scene
func createScene(sceneType string) (*scene.Scene, error) {
	s, err := scene.Lookup(sceneType)
	if err != nil {
		return nil, fmt.Errorf("creating scene: %w", err)
	}
	fmt.Printf("Using %s scene...\n", sceneType)
	return s, nil
}

// createOutputDir returns the directory renders of sceneType are written to
func createOutputDir(root, sceneType string) string {
	return filepath.Join(root, filepath.Base(sceneType))
}

// outputFilename returns the timestamped PNG path inside dir
func outputFilename(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}
