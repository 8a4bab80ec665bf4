// Package testutil provides fixtures shared by the dompet test suites.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/dompet/internal/ledger"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/Veraticus/dompet/internal/storage"
)

// FixedNow is the reference instant most tests run at: Friday 15 March 2024,
// 10:00 UTC.
var FixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// Clock returns a function that always reports now.
func Clock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// SequentialIDs returns an ID generator producing prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Expense builds an expense record dated day (YYYY-MM-DD).
func Expense(id, day string, amount int64, category string) model.Transaction {
	return model.Transaction{
		ID:          id,
		Type:        model.TypeExpense,
		Amount:      amount,
		Description: "expense " + id,
		Category:    category,
		Date:        model.MustParseDate(day),
	}
}

// Income builds an income record dated day (YYYY-MM-DD).
func Income(id, day string, amount int64, category string) model.Transaction {
	return model.Transaction{
		ID:          id,
		Type:        model.TypeIncome,
		Amount:      amount,
		Description: "income " + id,
		Category:    category,
		Date:        model.MustParseDate(day),
	}
}

// StoreFixture bundles a ledger with the memory medium behind it.
type StoreFixture struct {
	Store *ledger.Store
	KV    *storage.MemoryStorage
}

// NewStore opens a ledger over a fresh MemoryStorage with a fixed clock and
// sequential IDs, seeded with the given transactions.
func NewStore(t *testing.T, seed ...model.Transaction) StoreFixture {
	t.Helper()
	ctx := context.Background()
	kv := storage.NewMemoryStorage()

	if len(seed) > 0 {
		if err := storage.SaveTransactions(ctx, kv, seed); err != nil {
			t.Fatalf("failed to seed transactions: %v", err)
		}
	}

	store, err := ledger.Open(ctx, kv,
		ledger.WithClock(Clock(FixedNow)),
		ledger.WithIDGenerator(SequentialIDs("t")),
	)
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}

	return StoreFixture{Store: store, KV: kv}
}
