package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Lookup
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type builtinScene struct {
	info    SceneInfo
	factory func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:    SceneInfo{ID: "default", DisplayName: "Default", Description: "Checkerboard floor, two shiny spheres, four colored lights"},
		factory: NewDefaultScene,
	},
	"transform": {
		info:    SceneInfo{ID: "transform", DisplayName: "Transformed Primitives", Description: "Ellipsoids and a floor placed with object-space transforms"},
		factory: NewTransformScene,
	},
	"mirrors": {
		info:    SceneInfo{ID: "mirrors", DisplayName: "Facing Mirrors", Description: "Sphere between two mirrors, limited by recursion depth"},
		factory: NewMirrorScene,
	},
	"empty": {
		info:    SceneInfo{ID: "empty", DisplayName: "Empty", Description: "No shapes or lights; renders the background"},
		factory: NewEmptyScene,
	},
}

// Lookup builds the built-in scene with the given name
func Lookup(name string) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", name)
	}
	return builtin.factory(), nil
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, builtin := range builtinScenes {
		scenes = append(scenes, builtin.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}
