package ledger

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Veraticus/dompet/internal/model"
)

// Categories returns a copy of the live category set.
func (s *Store) Categories() []string {
	return slices.Clone(s.categories)
}

// HasCategory reports whether name is in the live set.
func (s *Store) HasCategory(name string) bool {
	return model.ContainsCategory(s.categories, name)
}

// AddCategory appends name to the set. Blank names and names already
// present are ignored and reported as false.
func (s *Store) AddCategory(ctx context.Context, name string) (bool, error) {
	name = model.NormalizeCategoryName(name)
	if name == "" || s.HasCategory(name) {
		return false, nil
	}

	s.categories = append(s.categories, name)
	if err := s.saveCategories(ctx); err != nil {
		return true, err
	}

	slog.Info("added category", "name", name)
	return true, nil
}

// DeleteCategory removes name from the set. Transactions tagged with it are
// left as they are.
func (s *Store) DeleteCategory(ctx context.Context, name string) (bool, error) {
	before := len(s.categories)
	s.categories = slices.DeleteFunc(s.categories, func(c string) bool {
		return c == name
	})
	if len(s.categories) == before {
		return false, nil
	}

	if err := s.saveCategories(ctx); err != nil {
		return true, err
	}

	slog.Info("deleted category", "name", name)
	return true, nil
}
