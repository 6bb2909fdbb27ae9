package server

import (
	"testing"
	"time"
)

func TestWebLogger_ForwardsMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("default", messageChan)

	logger.Printf("Rendering %dx%d\n", 40, 30)

	select {
	case msg := <-messageChan:
		if msg.Message != "Rendering 40x30" {
			t.Errorf("Expected trimmed message, got '%s'", msg.Message)
		}
		if msg.Render != "default" {
			t.Errorf("Expected render 'default', got '%s'", msg.Render)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	default:
		t.Error("Expected a queued console message")
	}
}

func TestWebLogger_DoesNotBlock(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("mirrors", messageChan)

	// Only the first fits; the rest are dropped
	logger.Printf("Message 1\n")
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	if len(messageChan) != 1 {
		t.Fatalf("Expected 1 queued message, got %d", len(messageChan))
	}
	if msg := <-messageChan; msg.Message != "Message 1" {
		t.Errorf("Expected first message kept, got '%s'", msg.Message)
	}

	// A nil channel only logs locally
	NewWebLogger("empty", nil).Printf("Test message with nil channel\n")
}

func TestMessageLevel(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"Render completed in 3ms", "info"},
		{"Error: render interrupted", "error"},
		{"warning: large image", "warning"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := messageLevel(tt.message); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}
