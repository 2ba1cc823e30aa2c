package models

import (
	"strings"
	"testing"
)

func TestNewProductName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := NewProductName("  Tomatoes ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "Tomatoes" {
			t.Fatalf("expected %q, got %q", "Tomatoes", n.String())
		}
	})

	t.Run("valid 255 characters", func(t *testing.T) {
		s := strings.Repeat("x", 255)
		if _, err := NewProductName(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		if _, err := NewProductName(""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("whitespace only returns error", func(t *testing.T) {
		if _, err := NewProductName("   "); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("256 characters returns error", func(t *testing.T) {
		if _, err := NewProductName(strings.Repeat("x", 256)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestProductName_Matches(t *testing.T) {
	n := ProductName("Green Chili")
	for _, other := range []string{"Green Chili", "green chili", " GREEN CHILI "} {
		if !n.Matches(other) {
			t.Errorf("expected %q to match %q", n, other)
		}
	}
	if n.Matches("Green Chilli") {
		t.Error("expected different spelling not to match")
	}
}
