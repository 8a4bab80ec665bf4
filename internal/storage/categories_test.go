package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/dompet/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()

	want := []string{"Kopi", "kopi", "Bensin"}
	require.NoError(t, SaveCategories(ctx, kv, want))
	assert.Equal(t, want, LoadCategories(ctx, kv))
}

func TestLoadCategories_Defaults(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, model.DefaultCategories(), LoadCategories(ctx, NewMemoryStorage()))

	kv := NewMemoryStorage()
	require.NoError(t, kv.Put(ctx, CategoriesKey, []byte(`{"oops":`)))
	assert.Equal(t, model.DefaultCategories(), LoadCategories(ctx, kv))

	assert.Equal(t, model.DefaultCategories(), LoadCategories(ctx, failingKV{}))
}

func TestLoadCategories_EmptySetIsKept(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	require.NoError(t, SaveCategories(ctx, kv, []string{}))

	got := LoadCategories(ctx, kv)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
