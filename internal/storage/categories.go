package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/dompet/internal/common"
	"github.com/Veraticus/dompet/internal/model"
)

// LoadCategories reads the persisted category set. A missing or corrupt
// document yields the built-in defaults.
func LoadCategories(ctx context.Context, kv KV) []string {
	raw, ok, err := kv.Get(ctx, CategoriesKey)
	if err != nil {
		common.LogWarn(err, "failed to read categories, using defaults", common.Fields{"key": CategoriesKey})
		return model.DefaultCategories()
	}
	if !ok || len(raw) == 0 {
		return model.DefaultCategories()
	}

	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		common.LogWarn(err, "stored categories are corrupt, using defaults", common.Fields{"key": CategoriesKey})
		return model.DefaultCategories()
	}
	if categories == nil {
		categories = []string{}
	}

	common.LogDebug("loaded categories", common.Fields{"key": CategoriesKey, "count": len(categories)})
	return categories
}

// SaveCategories overwrites the stored category set.
func SaveCategories(ctx context.Context, kv KV, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	if err := kv.Put(ctx, CategoriesKey, raw); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}
