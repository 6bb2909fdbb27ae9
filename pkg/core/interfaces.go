package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// DiscardLogger drops every message; useful in tests and benchmarks
type DiscardLogger struct{}

func (DiscardLogger) Printf(format string, args ...interface{}) {}
