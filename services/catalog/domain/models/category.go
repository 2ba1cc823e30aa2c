package models

import (
	"errors"
	"strings"
)

// CategoryAll is the pseudo-category that matches every product. It is
// prepended to the live vocabulary and never stored.
const CategoryAll = "all"

// CategoryChoice is how a product write picks its category: either an entry
// already in the vocabulary or a new one that is appended before the write.
type CategoryChoice struct {
	name  string
	isNew bool
}

// ExistingCategory selects a category that is already part of the vocabulary.
func ExistingCategory(name string) CategoryChoice {
	return CategoryChoice{name: strings.TrimSpace(name)}
}

// NewCategory adds name to the vocabulary and selects it.
func NewCategory(name string) CategoryChoice {
	return CategoryChoice{name: strings.TrimSpace(name), isNew: true}
}

// Name returns the chosen category name.
func (c CategoryChoice) Name() string { return c.name }

// IsNew reports whether the choice appends to the vocabulary.
func (c CategoryChoice) IsNew() bool { return c.isNew }

// Validate rejects blank names and the reserved "all" pseudo-category.
func (c CategoryChoice) Validate() error {
	if c.name == "" {
		return errors.New("category must not be empty")
	}
	if strings.EqualFold(c.name, CategoryAll) {
		return errors.New(`category "all" is reserved`)
	}
	return nil
}

// Vocabulary returns the category list shown to clients: "all" followed by
// the distinct stored names in their original order.
func Vocabulary(stored []string) []string {
	out := make([]string, 0, len(stored)+1)
	out = append(out, CategoryAll)
	seen := make(map[string]struct{}, len(stored))
	for _, s := range stored {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
