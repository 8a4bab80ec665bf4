package ledger_test

import (
	"context"
	"testing"

	"github.com/Veraticus/dompet/internal/ledger"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/Veraticus/dompet/internal/storage"
	"github.com/Veraticus/dompet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseFields(amount int64, category string) model.TransactionFields {
	return model.TransactionFields{
		Type:        model.TypeExpense,
		Amount:      amount,
		Description: "Kopi susu",
		Category:    category,
		Date:        model.MustParseDate("2024-03-15"),
	}
}

func TestOpen_NilStorage(t *testing.T) {
	_, err := ledger.Open(context.Background(), nil)
	assert.Error(t, err)
}

func TestOpen_EmptyMediumUsesDefaults(t *testing.T) {
	f := testutil.NewStore(t)

	assert.Equal(t, 0, f.Store.Len())
	assert.NotNil(t, f.Store.Transactions())
	assert.Equal(t, model.DefaultCategories(), f.Store.Categories())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewStore(t, testutil.Expense("old", "2024-03-01", 10000, "Makanan & Minuman"))

	txn, err := f.Store.Create(ctx, expenseFields(18000, "Nongki / Cafe"))
	require.NoError(t, err)

	assert.Equal(t, "t-1", txn.ID)
	require.NotNil(t, txn.CreatedAt)
	assert.Equal(t, testutil.FixedNow, *txn.CreatedAt)
	assert.Equal(t, 2, f.Store.Len())

	list := f.Store.Transactions()
	assert.Equal(t, txn.ID, list[0].ID, "new records go to the front")
	assert.Equal(t, "old", list[1].ID)

	got, ok := f.Store.Get(txn.ID)
	require.True(t, ok)
	assert.Equal(t, int64(18000), got.Amount)
	assert.Equal(t, "Nongki / Cafe", got.Category)

	persisted := storage.LoadTransactions(ctx, f.KV)
	require.Len(t, persisted, 2)
	assert.Equal(t, txn.ID, persisted[0].ID)
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.TransactionFields)
		wantErr error
	}{
		{
			name:    "zero amount",
			mutate:  func(f *model.TransactionFields) { f.Amount = 0 },
			wantErr: model.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(f *model.TransactionFields) { f.Amount = -5 },
			wantErr: model.ErrInvalidAmount,
		},
		{
			name:    "blank description",
			mutate:  func(f *model.TransactionFields) { f.Description = "   " },
			wantErr: model.ErrEmptyDescription,
		},
		{
			name:    "missing date",
			mutate:  func(f *model.TransactionFields) { f.Date = model.Date{} },
			wantErr: model.ErrMissingDate,
		},
		{
			name:    "unknown category",
			mutate:  func(f *model.TransactionFields) { f.Category = "Liburan" },
			wantErr: model.ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testutil.NewStore(t)
			fields := expenseFields(1000, "Tarik Tunai")
			tt.mutate(&fields)

			_, err := f.Store.Create(context.Background(), fields)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, f.Store.Len())

			_, found, getErr := f.KV.Get(context.Background(), storage.TransactionsKey)
			require.NoError(t, getErr)
			assert.False(t, found, "nothing should be persisted")
		})
	}
}

func TestCreate_IncomeCategory(t *testing.T) {
	f := testutil.NewStore(t)

	txn, err := f.Store.Create(context.Background(), model.TransactionFields{
		Type:        model.TypeIncome,
		Amount:      5000000,
		Description: "Gaji Maret",
		Category:    "Gaji",
		Date:        model.MustParseDate("2024-03-01"),
	})
	require.NoError(t, err)
	assert.True(t, txn.IsIncome())

	_, err = f.Store.Create(context.Background(), expenseFields(1000, "Gaji"))
	assert.ErrorIs(t, err, model.ErrUnknownCategory, "expenses only use the live set")
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewStore(t)

	created, err := f.Store.Create(ctx, expenseFields(18000, "Nongki / Cafe"))
	require.NoError(t, err)

	ok, err := f.Store.Update(ctx, created.ID, model.TransactionFields{
		Type:        model.TypeExpense,
		Amount:      25000,
		Description: "  Kopi dan roti  ",
		Category:    "Makanan & Minuman",
		Date:        model.MustParseDate("2024-03-14"),
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, found := f.Store.Get(created.ID)
	require.True(t, found)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.Equal(t, int64(25000), got.Amount)
	assert.Equal(t, "Kopi dan roti", got.Description)
	assert.Equal(t, "2024-03-14", got.Date.String())

	persisted := storage.LoadTransactions(ctx, f.KV)
	require.Len(t, persisted, 1)
	assert.Equal(t, int64(25000), persisted[0].Amount)
}

func TestUpdate_NotFound(t *testing.T) {
	f := testutil.NewStore(t, testutil.Expense("a", "2024-03-01", 1000, "Tarik Tunai"))
	before := f.Store.Transactions()

	ok, err := f.Store.Update(context.Background(), "missing", expenseFields(9999, "Tarik Tunai"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, f.Store.Transactions())
}

func TestUpdate_InvalidLeavesRecord(t *testing.T) {
	f := testutil.NewStore(t, testutil.Expense("a", "2024-03-01", 1000, "Tarik Tunai"))

	ok, err := f.Store.Update(context.Background(), "a", expenseFields(0, "Tarik Tunai"))
	require.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.False(t, ok)

	got, _ := f.Store.Get("a")
	assert.Equal(t, int64(1000), got.Amount)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewStore(t,
		testutil.Expense("a", "2024-03-01", 1000, "Tarik Tunai"),
		testutil.Expense("b", "2024-03-02", 2000, "Tarik Tunai"),
	)

	ok, err := f.Store.Remove(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, f.Store.Len())
	_, found := f.Store.Get("a")
	assert.False(t, found)

	ok, err = f.Store.Remove(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Len(t, storage.LoadTransactions(ctx, f.KV), 1)
}

func TestAppendImported(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewStore(t, testutil.Expense("a", "2024-03-01", 1000, "Tarik Tunai"))

	imported := []model.Transaction{
		testutil.Expense("", "2024-03-02", 2000, "Belanja Barang"),
		testutil.Expense("a", "2024-03-03", 3000, "Belanja Barang"),
		testutil.Income("x", "2024-03-04", 4000, "Lainnya"),
	}

	n, err := f.Store.AppendImported(ctx, imported)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list := f.Store.Transactions()
	require.Len(t, list, 4)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, int64(2000), list[1].Amount)
	assert.Equal(t, int64(3000), list[2].Amount)
	assert.Equal(t, "x", list[3].ID)

	ids := map[string]bool{}
	for _, txn := range list {
		assert.NotEmpty(t, txn.ID)
		assert.False(t, ids[txn.ID], "duplicate id %s", txn.ID)
		ids[txn.ID] = true
	}

	assert.Len(t, storage.LoadTransactions(ctx, f.KV), 4)
}

func TestAppendImported_Empty(t *testing.T) {
	f := testutil.NewStore(t)

	n, err := f.Store.AppendImported(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewStore(t, testutil.Expense("a", "2024-03-01", 1000, "Tarik Tunai"))

	_, err := f.Store.AddCategory(ctx, "Liburan")
	require.NoError(t, err)

	require.NoError(t, f.Store.Reset(ctx))
	assert.Equal(t, 0, f.Store.Len())
	assert.Equal(t, model.DefaultCategories(), f.Store.Categories())

	assert.Empty(t, storage.LoadTransactions(ctx, f.KV))
	assert.Equal(t, model.DefaultCategories(), storage.LoadCategories(ctx, f.KV))
}

func TestReopenSeesChanges(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewStore(t)

	created, err := f.Store.Create(ctx, expenseFields(18000, "Tarik Tunai"))
	require.NoError(t, err)
	_, err = f.Store.AddCategory(ctx, "Liburan")
	require.NoError(t, err)

	reopened, err := ledger.Open(ctx, f.KV)
	require.NoError(t, err)

	got, ok := reopened.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.Amount, got.Amount)
	assert.True(t, reopened.HasCategory("Liburan"))
}
