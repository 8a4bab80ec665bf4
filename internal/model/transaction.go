// Package model defines the core data structures for the dompet application.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	// TypeIncome represents money received.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money spent.
	TypeExpense TransactionType = "expense"
)

// Validation errors.
var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrMissingDate       = errors.New("date is required")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrUnknownCategory   = errors.New("category is not in the category list")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseTransactionType converts user input to a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Transaction is a single income or expense record. Amount is in whole
// currency units.
type Transaction struct {
	Date        Date            `json:"date"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      int64           `json:"amount"`
}

// IsIncome reports whether the transaction is income.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense reports whether the transaction is an expense. Anything that is
// not income counts as expense when folding totals.
func (t Transaction) IsExpense() bool {
	return t.Type != TypeIncome
}

// Fields returns the editable part of the transaction.
func (t Transaction) Fields() TransactionFields {
	return TransactionFields{
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date,
	}
}

// Apply returns a copy of t with the editable fields replaced. ID and
// CreatedAt are kept.
func (t Transaction) Apply(f TransactionFields) Transaction {
	t.Type = f.Type
	t.Amount = f.Amount
	t.Description = strings.TrimSpace(f.Description)
	t.Category = f.Category
	t.Date = f.Date
	return t
}

// TransactionFields holds the user-supplied values for creating or editing
// a transaction.
type TransactionFields struct {
	Date        Date
	Type        TransactionType
	Description string
	Category    string
	Amount      int64
}

// Validate checks amount, description, date and type.
func (f TransactionFields) Validate() error {
	if f.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(f.Description) == "" {
		return ErrEmptyDescription
	}
	if f.Date.IsZero() {
		return ErrMissingDate
	}
	if !f.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, f.Type)
	}
	return nil
}
