package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/dompet/internal/common"
	"github.com/Veraticus/dompet/internal/config"
	"github.com/Veraticus/dompet/internal/ledger"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/Veraticus/dompet/internal/storage"
	"github.com/shopspring/decimal"
)

// openLedger opens the configured storage backend and loads the ledger
// from it. The returned cleanup closes the backend.
func (a *app) openLedger(ctx context.Context) (*ledger.Store, func(), error) {
	kv, cleanup, err := a.openStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	store, err := ledger.Open(ctx, kv, ledger.WithClock(a.now))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return store, cleanup, nil
}

func (a *app) openStorage(ctx context.Context) (storage.KV, func(), error) {
	switch a.cfg.StorageBackend {
	case config.BackendMemory:
		slog.Warn("using in-memory storage; changes are discarded on exit")
		return storage.NewMemoryStorage(), func() {}, nil
	default:
		db, err := storage.NewSQLiteStorage(a.cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				common.LogError(err, "failed to close database", common.Fields{"path": a.cfg.DatabasePath})
			}
		}
		return db, cleanup, nil
	}
}

// parseAmountArg reads a whole rupiah amount such as "50000", "50.000" or
// "Rp 50.000". Dots and commas are thousand separators.
func parseAmountArg(s string) (int64, error) {
	cleaned := strings.NewReplacer("Rp", "", "rp", "", " ", "", ".", "", ",", "", "_", "").Replace(s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, common.NewUserError(fmt.Sprintf("amount %q is not a number", s), model.ErrInvalidAmount)
	}
	amount := d.IntPart()
	if amount <= 0 {
		return 0, common.NewUserError("amount must be greater than zero", model.ErrInvalidAmount)
	}
	return amount, nil
}

// parseDateArg parses YYYY-MM-DD, defaulting to today when s is empty.
func (a *app) parseDateArg(s string) (model.Date, error) {
	if s == "" || s == "today" {
		return model.DateOf(a.now()), nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, common.NewUserError("date must look like 2024-03-15", err)
	}
	return d, nil
}

// validationError turns a model validation failure into a message for
// the user.
func validationError(err error) error {
	return common.NewUserError(fmt.Sprintf("transaction not saved: %v", err), err)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID accepts a full ID or a unique prefix, as shown by history.
func resolveID(store *ledger.Store, idOrPrefix string) (string, error) {
	if strings.TrimSpace(idOrPrefix) == "" {
		return "", common.NewUserError("transaction id must not be empty", common.ErrNotFound)
	}
	if _, ok := store.Get(idOrPrefix); ok {
		return idOrPrefix, nil
	}

	var matches []string
	for _, t := range store.Transactions() {
		if strings.HasPrefix(t.ID, idOrPrefix) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", common.NewUserError(fmt.Sprintf("no transaction with id %q", idOrPrefix), common.ErrNotFound)
	default:
		return "", common.NewUserError(fmt.Sprintf("id %q matches %d transactions; use more characters", idOrPrefix, len(matches)), common.ErrNotFound)
	}
}
