package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/dompet/internal/common"
	"github.com/Veraticus/dompet/internal/model"
)

// LoadTransactions reads the persisted transaction list. It fails open: a
// missing, unreadable or corrupt document yields an empty list.
func LoadTransactions(ctx context.Context, kv KV) []model.Transaction {
	raw, ok, err := kv.Get(ctx, TransactionsKey)
	if err != nil {
		common.LogWarn(err, "failed to read transactions, starting empty", common.Fields{"key": TransactionsKey})
		return []model.Transaction{}
	}
	if !ok || len(raw) == 0 {
		return []model.Transaction{}
	}

	var transactions []model.Transaction
	if err := json.Unmarshal(raw, &transactions); err != nil {
		common.LogWarn(err, "stored transactions are corrupt, starting empty", common.Fields{"key": TransactionsKey})
		return []model.Transaction{}
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}

	common.LogDebug("loaded transactions", common.Fields{"key": TransactionsKey, "count": len(transactions)})
	return transactions
}

// SaveTransactions serializes the full list and overwrites the stored one.
func SaveTransactions(ctx context.Context, kv KV, transactions []model.Transaction) error {
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	raw, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := kv.Put(ctx, TransactionsKey, raw); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}
