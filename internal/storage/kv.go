// Package storage provides the data persistence layer for the dompet application.
//
// Persisted state is a small set of independent key-value records, each
// holding a whole JSON document that is overwritten on every save.
package storage

import "context"

// Keys of the persisted documents.
const (
	TransactionsKey = "transactions.v1"
	CategoriesKey   = "categories.v1"
)

// KV is a key-value medium holding whole documents.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
