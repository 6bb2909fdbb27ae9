package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/display"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ProgressUpdate is sent via SSE while a render is running and once when it ends
type ProgressUpdate struct {
	Progress   float64 `json:"progress"`  // Fraction of pixels written
	ImageData  string  `json:"imageData"` // Base64 encoded PNG
	Stats      *Stats  `json:"stats,omitempty"`
	IsComplete bool    `json:"isComplete"`
	ElapsedMs  int64   `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int   `json:"totalPixels"`
	PrimaryRays    int64 `json:"primaryRays"`
	ShadowRays     int64 `json:"shadowRays"`
	ReflectionRays int64 `json:"reflectionRays"`
	Tiles          int   `json:"tiles"`
	Workers        int   `json:"workers"`
}

func newStats(rs renderer.RenderStats) *Stats {
	return &Stats{
		TotalPixels:    rs.TotalPixels,
		PrimaryRays:    rs.PrimaryRays,
		ShadowRays:     rs.ShadowRays,
		ReflectionRays: rs.ReflectionRays,
		Tiles:          rs.Tiles,
		Workers:        rs.Workers,
	}
}

type renderResult struct {
	stats renderer.RenderStats
	err   error
}

// newRaytracer builds the scene and raytracer for a request
func newRaytracer(req *RenderRequest) (*renderer.Raytracer, error) {
	sceneObj, err := scene.Lookup(req.Scene)
	if err != nil {
		return nil, err
	}

	rt := renderer.NewRaytracer(sceneObj, req.Width, req.Height)
	rt.SetConfig(renderer.RaytracerConfig{TileSize: req.TileSize, NumWorkers: req.Workers})
	return rt, nil
}

// handleRender renders in the background and streams snapshots via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	rt, err := newRaytracer(req)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	// Use request context to detect client disconnection
	ctx := r.Context()

	consoleChan := make(chan ConsoleMessage, 32)
	rt.SetLogger(NewWebLogger(req.Scene, consoleChan))

	fb := display.NewFramebuffer(req.Width, req.Height)
	done := make(chan renderResult, 1)
	startTime := time.Now()

	go func() {
		stats, err := rt.Render(ctx, fb)
		done <- renderResult{stats: stats, err: err}
	}()

	ticker := time.NewTicker(s.progressInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)

		case <-ticker.C:
			if err := s.sendProgress(w, fb, nil, time.Since(startTime)); err != nil {
				log.Printf("Error sending progress: %v", err)
			}

		case res := <-done:
			s.drainConsole(w, consoleChan)
			if res.err != nil {
				s.sendSSEError(w, fmt.Sprintf("Render error: %v", res.err))
				return
			}
			if err := s.sendProgress(w, fb, newStats(res.stats), time.Since(startTime)); err != nil {
				log.Printf("Error sending final image: %v", err)
				return
			}
			s.sendSSEEvent(w, "complete", "Rendering completed")
			return
		}
	}
}

// handleRenderPNG renders synchronously and responds with a PNG
func (s *Server) handleRenderPNG(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	rt, err := newRaytracer(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	canvas := renderer.NewCanvas(req.Width, req.Height)
	if _, err := rt.Render(r.Context(), canvas); err != nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.Image()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Encoding error: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Write(buf.Bytes())
}

// sendProgress encodes the current framebuffer and sends it as a progress event
func (s *Server) sendProgress(w http.ResponseWriter, fb *display.Framebuffer, stats *Stats, elapsed time.Duration) error {
	imageData, err := imageToBase64PNG(fb.Image())
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	update := ProgressUpdate{
		Progress:   fb.Progress(),
		ImageData:  imageData,
		Stats:      stats,
		IsComplete: stats != nil,
		ElapsedMs:  elapsed.Milliseconds(),
	}

	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "progress", string(data))
}

func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error encoding console message: %v", err)
		return
	}
	s.sendSSEEvent(w, "console", string(data))
}

// drainConsole forwards console messages already queued
func (s *Server) drainConsole(w http.ResponseWriter, consoleChan <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		default:
			return
		}
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
