package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Transformed  bool                   `json:"transformed"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"`
	Material     map[string]interface{} `json:"material,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// handleInspect reports what the primary ray through one pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	x, err := parseIntParam(r.URL.Query(), "x", 0, 0, req.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(r.URL.Query(), "y", 0, 0, req.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rt, err := newRaytracer(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	info := rt.InspectPixel(x, y)
	response := InspectResponse{
		Hit:   info.Hit,
		Color: [3]float64{info.Color.R, info.Color.G, info.Color.B},
	}

	if info.Hit {
		response.Point = vecArray(info.Point)
		response.Normal = vecArray(info.Normal)
		response.Distance = info.Distance
		response.GeometryType, response.Transformed, response.Properties = extractGeometryInfo(info.Shape)
		response.Material = extractSurfaceInfo(info.Shape.Surface(), info.Point)
	}

	writeJSON(w, http.StatusOK, response)
}

// extractGeometryInfo describes a shape's type and parameters
func extractGeometryInfo(shape geometry.Shape) (string, bool, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch s := shape.(type) {
	case *geometry.Sphere:
		if s.Transform == nil {
			properties["center"] = vecArray(s.Center)
			properties["radius"] = s.Radius
		}
		return "sphere", s.Transform != nil, properties

	case *geometry.Plane:
		if s.Transform == nil {
			properties["normal"] = vecArray(s.Norm)
			properties["offset"] = s.Offset
		}
		return "plane", s.Transform != nil, properties
	}

	return "unknown", false, properties
}

// extractSurfaceInfo evaluates a surface's pattern functions at point
func extractSurfaceInfo(surface *material.Surface, point core.Vec3) map[string]interface{} {
	diffuse := surface.Diffuse(point)
	specular := surface.Specular(point)
	return map[string]interface{}{
		"diffuse":   [3]float64{diffuse.R, diffuse.G, diffuse.B},
		"specular":  [3]float64{specular.R, specular.G, specular.B},
		"reflect":   surface.Reflect(point),
		"shininess": surface.Shininess,
	}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
