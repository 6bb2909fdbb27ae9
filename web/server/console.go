package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ConsoleMessage is a renderer log line forwarded to the browser
type ConsoleMessage struct {
	Render    string    `json:"render"` // Scene being rendered
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by forwarding messages to a console channel
type WebLogger struct {
	render      string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger for one render. A nil channel only logs locally.
func NewWebLogger(render string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{render: render, consoleChan: consoleChan}
}

// Printf implements core.Logger. Sends never block; messages are dropped
// when the channel is full.
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	log.Printf("[%s] %s", wl.render, message)

	if wl.consoleChan == nil {
		return
	}

	select {
	case wl.consoleChan <- ConsoleMessage{
		Render:    wl.render,
		Message:   message,
		Timestamp: time.Now(),
		Level:     messageLevel(message),
	}:
	default:
	}
}

// messageLevel classifies a message by its leading word
func messageLevel(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.HasPrefix(lower, "error"):
		return "error"
	case strings.HasPrefix(lower, "warning"):
		return "warning"
	default:
		return "info"
	}
}
