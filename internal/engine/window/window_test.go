package window

import (
	"errors"
	"testing"
)

func TestNewUnknownBackend(t *testing.T) {
	w, err := New(Config{Title: "test", Width: 800, Height: 600, Backend: "vulkan"})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
	if w != nil {
		t.Error("expected nil window for unknown backend")
	}
}
