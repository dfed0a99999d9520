package oracle

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewClient_DefaultModel(t *testing.T) {
	client := NewClient("key", "", slog.Default())
	if client.model != "gemini-1.5-pro" {
		t.Fatalf("unexpected default model: %q", client.model)
	}
}

func TestClient_GenerateWithoutKey(t *testing.T) {
	client := NewClient("", "gemini-1.5-pro", slog.Default())
	if _, err := client.Generate(context.Background(), "orders"); err == nil {
		t.Fatal("expected error without API key")
	}
	// init error is sticky
	if _, err := client.Generate(context.Background(), "orders"); err == nil {
		t.Fatal("expected same error on second call")
	}
}
