// Package ofx imports OFX/QFX bank and credit card statements.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/dompet/internal/classify"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	// Opening tag alone on a line with its closing bracket missing.
	unclosedTagRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

var descriptionPrefixes = []string{
	"POS PURCHASE ",
	"DEBIT CARD PURCHASE ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"DEBIT PURCHASE ",
	"TRSF E-BANKING DB ",
	"TRSF E-BANKING CR ",
	"KARTU DEBIT ",
}

var genericDescriptions = []string{
	"DEBIT",
	"CREDIT",
	"PURCHASE",
	"PAYMENT",
	"TRANSFER",
	"POS TRANSACTION",
}

// Result is the outcome of parsing one statement file.
type Result struct {
	Transactions []model.Transaction
	Accounts     []string
	Skipped      int
}

// Parser converts OFX statements into unsaved transactions.
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

// NewParser creates a new OFX parser.
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

// preprocessOFX fixes common formatting issues in OFX files.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return unclosedTagRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX file and returns its transactions.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	res, err := p.Parse(ctx, reader)
	if err != nil {
		return nil, err
	}
	return res.Transactions, nil
}

// Parse parses an OFX/QFX file, reporting the accounts it covers and how
// many zero-amount entries were dropped.
func (p *Parser) Parse(ctx context.Context, reader io.Reader) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	res := Result{Transactions: []model.Transaction{}}
	created := p.now().UTC()
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok {
			continue
		}
		bankStmts++
		res.addAccount(string(stmt.BankAcctFrom.AcctID))
		if stmt.BankTranList != nil {
			p.collect(&res, stmt.BankTranList.Transactions, created)
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok {
			continue
		}
		ccStmts++
		res.addAccount(string(stmt.CCAcctFrom.AcctID))
		if stmt.BankTranList != nil {
			p.collect(&res, stmt.BankTranList.Transactions, created)
		}
	}

	slices.Sort(res.Accounts)

	slog.Info("parsed OFX file",
		"transactions", len(res.Transactions),
		"skipped", res.Skipped,
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return res, nil
}

func (r *Result) addAccount(id string) {
	if id != "" && !slices.Contains(r.Accounts, id) {
		r.Accounts = append(r.Accounts, id)
	}
}

func (p *Parser) collect(res *Result, txns []ofxgo.Transaction, created time.Time) {
	for _, ofxTx := range txns {
		txn, ok := p.convertTransaction(ofxTx, created)
		if !ok {
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions, txn)
	}
}

// convertTransaction maps one statement entry. Negative amounts are money
// leaving the account. Entries that round to zero are dropped.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, created time.Time) (model.Transaction, bool) {
	amount, err := decimal.NewFromString(ofxTx.TrnAmt.FloatString(4))
	if err != nil {
		return model.Transaction{}, false
	}
	whole := amount.Round(0).IntPart()
	if whole == 0 {
		return model.Transaction{}, false
	}

	typ := model.TypeIncome
	if whole < 0 {
		typ = model.TypeExpense
		whole = -whole
	}

	description := p.extractDescription(ofxTx)
	if description == "" {
		description = fmt.Sprintf("%v", ofxTx.TrnType)
	}

	createdAt := created
	return model.Transaction{
		ID:          p.newID(),
		Type:        typ,
		Amount:      whole,
		Description: description,
		Category:    p.classifier.Classify(description),
		Date:        model.DateOf(ofxTx.DtPosted.Time),
		CreatedAt:   &createdAt,
	}, true
}

// extractDescription tries to get a clean merchant name from OFX data.
func (p *Parser) extractDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && (name == "" || isGenericDescription(name)) {
		name = strings.TrimSpace(string(tx.Memo))
	}

	upper := strings.ToUpper(name)
	for _, prefix := range descriptionPrefixes {
		if strings.HasPrefix(upper, prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Leading "MM/DD " posting dates
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

func isGenericDescription(name string) bool {
	return slices.Contains(genericDescriptions, strings.ToUpper(name))
}
