// Package ledger owns the in-memory transaction list and category set and
// persists every mutation to a storage.KV.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Veraticus/dompet/internal/common"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/Veraticus/dompet/internal/storage"
	"github.com/google/uuid"
)

// Store is the record store. It is not safe for concurrent use; callers
// process one interaction at a time.
type Store struct {
	kv           storage.KV
	now          func() time.Time
	newID        func() string
	transactions []model.Transaction
	categories   []string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides how new transaction IDs are made.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}

// Open loads both persisted lists from kv. Missing or corrupt documents
// fall back to empty transactions and default categories.
func Open(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("ledger: nil storage")
	}

	s := &Store{
		kv:    kv,
		now:   time.Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.transactions = storage.LoadTransactions(ctx, kv)
	s.categories = storage.LoadCategories(ctx, kv)

	slog.Debug("opened ledger",
		"transactions", len(s.transactions),
		"categories", len(s.categories))
	return s, nil
}

// Transactions returns a copy of the transaction list, most recent manual
// entries first.
func (s *Store) Transactions() []model.Transaction {
	return slices.Clone(s.transactions)
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return len(s.transactions)
}

// Get looks up a transaction by ID.
func (s *Store) Get(id string) (model.Transaction, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Transaction{}, false
	}
	return s.transactions[i], true
}

// Create validates fields, assigns an ID and creation time, puts the new
// record at the front of the list and persists. Invalid fields leave the
// store untouched.
func (s *Store) Create(ctx context.Context, fields model.TransactionFields) (model.Transaction, error) {
	if err := fields.Validate(); err != nil {
		return model.Transaction{}, err
	}
	if !s.acceptsCategory(fields.Type, fields.Category) {
		return model.Transaction{}, fmt.Errorf("%w: %q", model.ErrUnknownCategory, fields.Category)
	}

	created := s.now().UTC()
	txn := model.Transaction{
		ID:        s.uniqueID(),
		CreatedAt: &created,
	}.Apply(fields)

	s.transactions = slices.Insert(s.transactions, 0, txn)
	if err := s.saveTransactions(ctx); err != nil {
		return txn, err
	}

	slog.Info("created transaction",
		"id", txn.ID,
		"type", txn.Type,
		"amount", txn.Amount,
		"category", txn.Category)
	return txn, nil
}

// Update replaces the editable fields of the transaction with the given ID.
// It reports false without mutating anything when the ID is unknown.
func (s *Store) Update(ctx context.Context, id string, fields model.TransactionFields) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	if err := fields.Validate(); err != nil {
		return false, err
	}

	s.transactions[i] = s.transactions[i].Apply(fields)
	if err := s.saveTransactions(ctx); err != nil {
		return true, err
	}

	slog.Info("updated transaction", "id", id)
	return true, nil
}

// Remove deletes the transaction with the given ID.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	s.transactions = slices.Delete(s.transactions, i, i+1)
	if err := s.saveTransactions(ctx); err != nil {
		return true, err
	}

	slog.Info("removed transaction", "id", id)
	return true, nil
}

// AppendImported adds imported records after the existing ones, in the
// given order, and persists them as one batch. Records without an ID (or
// with one already taken) get a fresh one.
func (s *Store) AppendImported(ctx context.Context, records []model.Transaction) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	for _, r := range records {
		if r.ID == "" || s.indexOf(r.ID) >= 0 {
			r.ID = s.uniqueID()
		}
		s.transactions = append(s.transactions, r)
	}

	if err := s.saveTransactions(ctx); err != nil {
		return len(records), err
	}

	common.LogInfo("appended imported transactions", common.Fields{"count": len(records), "total": len(s.transactions)})
	return len(records), nil
}

// Reset clears all transactions, restores the default categories and
// persists both.
func (s *Store) Reset(ctx context.Context) error {
	s.transactions = []model.Transaction{}
	s.categories = model.DefaultCategories()

	if err := s.saveTransactions(ctx); err != nil {
		return err
	}
	if err := s.saveCategories(ctx); err != nil {
		return err
	}

	slog.Info("reset ledger to defaults")
	return nil
}

// acceptsCategory reports whether a new record of type t may use category.
// Income may also pick from the fixed income choices.
func (s *Store) acceptsCategory(t model.TransactionType, category string) bool {
	if s.HasCategory(category) {
		return true
	}
	return t == model.TypeIncome && model.ContainsCategory(model.IncomeCategories(), category)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.transactions, func(t model.Transaction) bool {
		return t.ID == id
	})
}

func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store) saveTransactions(ctx context.Context) error {
	return storage.SaveTransactions(ctx, s.kv, s.transactions)
}

func (s *Store) saveCategories(ctx context.Context) error {
	return storage.SaveCategories(ctx, s.kv, s.categories)
}
