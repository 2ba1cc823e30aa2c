package models

import (
	"reflect"
	"testing"
)

func TestCategoryChoice(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		c := ExistingCategory(" Dairy ")
		if c.Name() != "Dairy" || c.IsNew() {
			t.Fatalf("unexpected choice: %+v", c)
		}
		if err := c.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("new", func(t *testing.T) {
		c := NewCategory("Pickles")
		if c.Name() != "Pickles" || !c.IsNew() {
			t.Fatalf("unexpected choice: %+v", c)
		}
	})

	t.Run("blank is invalid", func(t *testing.T) {
		if err := NewCategory("  ").Validate(); err == nil {
			t.Fatal("expected error for blank category")
		}
	})

	t.Run("all is reserved", func(t *testing.T) {
		if err := ExistingCategory("All").Validate(); err == nil {
			t.Fatal("expected error for reserved category")
		}
	})
}

func TestVocabulary(t *testing.T) {
	got := Vocabulary([]string{"Vegetables", "Spices", "Vegetables", " ", "Dairy"})
	want := []string{"all", "Vegetables", "Spices", "Dairy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := Vocabulary(nil); !reflect.DeepEqual(got, []string{"all"}) {
		t.Fatalf("expected only the pseudo-category, got %v", got)
	}
}
