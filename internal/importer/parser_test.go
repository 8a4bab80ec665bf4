package importer

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Veraticus/dompet/internal/classify"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/Veraticus/dompet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "H1;H2;H3;H4;H5;H6;H7;H8;H9;H10"

func newTestParser() *Parser {
	return NewParser(
		WithClock(testutil.Clock(testutil.FixedNow)),
		WithIDGenerator(testutil.SequentialIDs("imp")),
	)
}

func row(delim, date, desc, debit, credit string) string {
	fields := []string{"1", "ACC", date, "x", "x", "x", desc, "x", debit, credit}
	return strings.Join(fields, delim)
}

func TestParse_SingleExpense(t *testing.T) {
	raw := header + "\n" + row(";", "2024-03-01T00:00:00", "NASI GORENG", "50000.00", "0")

	got := newTestParser().Parse(raw)
	require.Len(t, got, 1)

	txn := got[0]
	assert.Equal(t, "imp-1", txn.ID)
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.Equal(t, int64(50000), txn.Amount)
	assert.Equal(t, "NASI GORENG", txn.Description)
	assert.Equal(t, "Makanan & Minuman", txn.Category)
	assert.Equal(t, "2024-03-01", txn.Date.String())
	require.NotNil(t, txn.CreatedAt)
	assert.Equal(t, testutil.FixedNow, *txn.CreatedAt)
}

func TestParse_CreditIsIncome(t *testing.T) {
	raw := header + "\n" + row(";", "2024-03-25", "GAJI MARET", "0", "7500000")

	got := newTestParser().Parse(raw)
	require.Len(t, got, 1)
	assert.Equal(t, model.TypeIncome, got[0].Type)
	assert.Equal(t, int64(7500000), got[0].Amount)
	assert.Equal(t, "Gaji", got[0].Category)
}

func TestParse_DebitWinsOverCredit(t *testing.T) {
	raw := header + "\n" + row(";", "2024-03-25", "SHOPEE", "1000", "2000")

	got := newTestParser().Parse(raw)
	require.Len(t, got, 1)
	assert.Equal(t, model.TypeExpense, got[0].Type)
	assert.Equal(t, int64(1000), got[0].Amount)
}

func TestParse_CommaDelimiterAndQuotes(t *testing.T) {
	raw := strings.Join([]string{
		"h1,h2,h3,h4,h5,h6,h7,h8,h9,h10",
		row(",", `"2024-03-02 08:15"`, `" Kopi Kenangan "`, `"25 000"`, `"0"`),
	}, "\n")

	got := newTestParser().Parse(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "Kopi Kenangan", got[0].Description)
	assert.Equal(t, int64(25000), got[0].Amount)
	assert.Equal(t, "Nongki / Cafe", got[0].Category)
	assert.Equal(t, "2024-03-02", got[0].Date.String())
}

func TestParse_SemicolonOnlyChosenFromHeader(t *testing.T) {
	// The header has no semicolon, so rows are split on commas and this
	// semicolon-separated row is a single short field.
	raw := "a,b,c\n" + row(";", "2024-03-01", "NASI", "1000", "0")

	res := newTestParser().ParseWithStats(raw)
	assert.Empty(t, res.Transactions)
	assert.Equal(t, 1, res.SkippedShort)
}

func TestParse_CRLF(t *testing.T) {
	raw := header + "\r\n" +
		row(";", "2024-03-01", "NASI", "1000", "0") + "\r\n" +
		row(";", "2024-03-02", "AYAM", "2000", "0") + "\r\n"

	got := newTestParser().Parse(raw)
	require.Len(t, got, 2)
	assert.Equal(t, "NASI", got[0].Description)
	assert.Equal(t, "AYAM", got[1].Description)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestParseWithStats(t *testing.T) {
	raw := strings.Join([]string{
		header,
		row(";", "2024-03-01", "NASI", "1000", "0"),
		"",
		"   ",
		"too;few;fields",
		row(";", "2024-03-02", "NOTHING", "0", "0"),
		row(";", "2024-03-03", "GARBAGE", "abc", "xyz"),
		row(";", "03/04/2024", "BAD DATE", "1000", "0"),
		row(";", "2024-03-05", "SHOPEE", "0", "5000"),
	}, "\n")

	res := newTestParser().ParseWithStats(raw)

	assert.Equal(t, 6, res.Rows)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.SkippedShort)
	assert.Equal(t, 2, res.SkippedZero)
	assert.Equal(t, 1, res.SkippedBadDate)
	assert.Equal(t, 4, res.Skipped())
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, "NASI", res.Transactions[0].Description)
	assert.Equal(t, "SHOPEE", res.Transactions[1].Description)
}

func TestParse_AmountEdges(t *testing.T) {
	raw := strings.Join([]string{
		header,
		row(";", "2024-03-01", "PADDED", "\t50000\t", "0"),
		row(";", "2024-03-02", "HUGE", "99999999999999999999", "0"),
		row(";", "2024-03-03", "HUGE CREDIT", "0", "1e30"),
	}, "\n")

	res := newTestParser().ParseWithStats(raw)

	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "PADDED", res.Transactions[0].Description)
	assert.Equal(t, int64(50000), res.Transactions[0].Amount)
	assert.Equal(t, model.TypeExpense, res.Transactions[0].Type)
	assert.Equal(t, 2, res.SkippedZero)
}

func TestParse_EmptyInput(t *testing.T) {
	p := newTestParser()

	assert.Empty(t, p.Parse(""))
	assert.Empty(t, p.Parse(header))
	assert.NotNil(t, p.Parse(""))
}

func TestParse_CustomClassifier(t *testing.T) {
	c := classify.NewWithRules([]classify.Rule{
		{Keywords: []string{"nasi"}, Category: "Warung"},
	}, "Lain")
	p := NewParser(WithClassifier(c))

	got := p.Parse(header + "\n" +
		row(";", "2024-03-01", "NASI UDUK", "1000", "0") + "\n" +
		row(";", "2024-03-01", "KOPI", "1000", "0"))
	require.Len(t, got, 2)
	assert.Equal(t, "Warung", got[0].Category)
	assert.Equal(t, "Lain", got[1].Category)
	assert.NotEmpty(t, got[0].ID)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"50000.00", 50000},
		{"0", 0},
		{"", 0},
		{"  ", 0},
		{`"1 250"`, 1250},
		{"99.5", 100},
		{"99.49", 99},
		{"-10.5", -11},
		{"abc", 0},
		{"1.000,50", 0},
		{"\t50000\t", 50000},
		{"\"\t 75000\r\"", 75000},
		{"9223372036854775807", math.MaxInt64},
		{"99999999999999999999", 0},
		{"-99999999999999999999", 0},
		{"1e30", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAmount(tt.in))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseReader(t *testing.T) {
	p := newTestParser()

	got, err := p.ParseReader(strings.NewReader(header + "\n" + row(";", "2024-03-01", "NASI", "1000", "0")))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = p.ParseReader(failingReader{})
	assert.ErrorContains(t, err, "disk on fire")
}
