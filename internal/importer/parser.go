// Package importer turns bank statement exports into unsaved transactions.
//
// The expected layout is a delimited text file with one header line and at
// least ten columns per row: the posting date in column 2, the description
// in column 6, debit in column 8 and credit in column 9 (zero-based).
package importer

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Veraticus/dompet/internal/classify"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	minFields   = 10
	dateField   = 2
	descField   = 6
	debitField  = 8
	creditField = 9
	dateLength  = 10
)

// Result summarizes one parse.
type Result struct {
	Transactions   []model.Transaction
	Rows           int
	Imported       int
	SkippedShort   int
	SkippedZero    int
	SkippedBadDate int
}

// Skipped returns the number of data rows that produced no transaction.
func (r Result) Skipped() int {
	return r.SkippedShort + r.SkippedZero + r.SkippedBadDate
}

// Parser converts statement text into transactions.
type Parser struct {
	classifier *classify.Classifier
	now        func() time.Time
	newID      func() string
}

// Option configures a Parser.
type Option func(*Parser)

// WithClassifier overrides the category classifier.
func WithClassifier(c *classify.Classifier) Option {
	return func(p *Parser) {
		p.classifier = c
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// WithIDGenerator overrides how record IDs are made.
func WithIDGenerator(newID func() string) Option {
	return func(p *Parser) {
		p.newID = newID
	}
}

// NewParser creates a Parser using the default classifier.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		classifier: classify.New(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns the transactions found in raw. Malformed rows are skipped.
func (p *Parser) Parse(raw string) []model.Transaction {
	return p.ParseWithStats(raw).Transactions
}

// ParseReader reads r fully and parses it.
func (p *Parser) ParseReader(r io.Reader) ([]model.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}
	return p.Parse(string(data)), nil
}

// ParseWithStats parses raw and reports what was skipped.
func (p *Parser) ParseWithStats(raw string) Result {
	res := Result{Transactions: []model.Transaction{}}

	lines := splitLines(raw)
	if len(lines) == 0 {
		return res
	}

	delim := ","
	if strings.Contains(lines[0], ";") {
		delim = ";"
	}

	created := p.now().UTC()
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res.Rows++

		fields := strings.Split(line, delim)
		if len(fields) < minFields {
			res.SkippedShort++
			slog.Debug("skipping short row", "line", i+2, "fields", len(fields))
			continue
		}

		debit := parseAmount(fields[debitField])
		credit := parseAmount(fields[creditField])

		var typ model.TransactionType
		var amount int64
		switch {
		case debit > 0:
			typ, amount = model.TypeExpense, debit
		case credit > 0:
			typ, amount = model.TypeIncome, credit
		default:
			res.SkippedZero++
			continue
		}

		date, err := parseDate(fields[dateField])
		if err != nil {
			res.SkippedBadDate++
			slog.Debug("skipping row with bad date", "line", i+2, "error", err)
			continue
		}

		description := strings.TrimSpace(stripQuotes(fields[descField]))
		createdAt := created
		res.Transactions = append(res.Transactions, model.Transaction{
			ID:          p.newID(),
			Type:        typ,
			Amount:      amount,
			Description: description,
			Category:    p.classifier.Classify(description),
			Date:        date,
			CreatedAt:   &createdAt,
		})
	}

	res.Imported = len(res.Transactions)
	return res
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

func parseDate(field string) (model.Date, error) {
	s := strings.TrimSpace(stripQuotes(field))
	if len(s) > dateLength {
		s = s[:dateLength]
	}
	return model.ParseDate(s)
}

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// parseAmount reads a decimal field and rounds it to whole units, half away
// from zero. Anything unparsable or outside int64 counts as zero.
func parseAmount(field string) int64 {
	s := strings.ReplaceAll(strings.TrimSpace(stripQuotes(field)), " ", "")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	d = d.Round(0)
	if d.GreaterThan(maxAmount) || d.LessThan(minAmount) {
		return 0
	}
	return d.IntPart()
}
