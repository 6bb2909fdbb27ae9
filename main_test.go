package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"transform scene", "transform", false},
		{"mirrors scene", "mirrors", false},
		{"empty scene", "empty", false},

		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.GetCamera() == nil {
				t.Errorf("Scene '%s' has no camera", tt.sceneType)
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		root      string
		sceneType string
		expected  string
	}{
		{"default scene", "output", "default", filepath.Join("output", "default")},
		{"custom root", "renders", "mirrors", filepath.Join("renders", "mirrors")},
		{"path-like name is flattened", "output", "../escape", filepath.Join("output", "escape")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createOutputDir(tt.root, tt.sceneType); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestOutputFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := outputFilename("out", now)
	expected := filepath.Join("out", "render_20240309_140507.png")
	if got != expected {
		t.Errorf("Expected '%s', got '%s'", expected, got)
	}
}

func TestRun_WritesPNG(t *testing.T) {
	root := t.TempDir()
	config := Config{
		Width:     16,
		Height:    12,
		SceneType: "default",
		OutputDir: root,
		Workers:   2,
		TileSize:  8,
	}

	if err := run(config); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(root, "default", "render_*.png"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("Expected one rendered PNG, got %v (err %v)", matches, err)
	}

	file, err := os.Open(matches[0])
	if err != nil {
		t.Fatalf("Opening output: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decoding output: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
		t.Errorf("Expected 16x12 image, got %v", img.Bounds())
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		errMsg string
	}{
		{"zero width", Config{Width: 0, Height: 10, SceneType: "default"}, "invalid image size"},
		{"unknown scene", Config{Width: 10, Height: 10, SceneType: "nope", OutputDir: t.TempDir()}, "unknown scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.config)
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing '%s', got %v", tt.errMsg, err)
			}
		})
	}
}
