package ledger_test

import (
	"context"
	"testing"

	"github.com/Veraticus/dompet/internal/model"
	"github.com/Veraticus/dompet/internal/storage"
	"github.com/Veraticus/dompet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategory(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewStore(t)
	before := len(f.Store.Categories())

	added, err := f.Store.AddCategory(ctx, "  Liburan  ")
	require.NoError(t, err)
	assert.True(t, added)

	cats := f.Store.Categories()
	require.Len(t, cats, before+1)
	assert.Equal(t, "Liburan", cats[len(cats)-1])
	assert.Contains(t, storage.LoadCategories(ctx, f.KV), "Liburan")
}

func TestAddCategory_Ignored(t *testing.T) {
	for _, name := range []string{"", "   ", "Tarik Tunai"} {
		t.Run(name, func(t *testing.T) {
			f := testutil.NewStore(t)

			added, err := f.Store.AddCategory(context.Background(), name)
			require.NoError(t, err)
			assert.False(t, added)
			assert.Equal(t, model.DefaultCategories(), f.Store.Categories())
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewStore(t, testutil.Expense("a", "2024-03-01", 1000, "Tarik Tunai"))

	deleted, err := f.Store.DeleteCategory(ctx, "Tarik Tunai")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, f.Store.HasCategory("Tarik Tunai"))
	assert.NotContains(t, storage.LoadCategories(ctx, f.KV), "Tarik Tunai")

	got, ok := f.Store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Tarik Tunai", got.Category, "transactions keep their label")

	deleted, err = f.Store.DeleteCategory(ctx, "Tarik Tunai")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	f := testutil.NewStore(t)

	cats := f.Store.Categories()
	cats[0] = "mutated"
	assert.NotEqual(t, "mutated", f.Store.Categories()[0])
}
