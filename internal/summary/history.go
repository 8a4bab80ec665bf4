package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/dompet/internal/model"
)

// Range is a history filter period.
type Range string

// History ranges.
const (
	RangeAll   Range = "all"
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// AllCategories matches every category in FilterHistory.
const AllCategories = "all"

// ParseRange parses a range name; "" means RangeAll.
func ParseRange(s string) (Range, error) {
	switch r := Range(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RangeAll, nil
	case RangeAll, RangeToday, RangeWeek, RangeMonth:
		return r, nil
	default:
		return "", fmt.Errorf("unknown range %q (want all, today, week or month)", s)
	}
}

func (r Range) contains(t model.Transaction, now time.Time) bool {
	switch r {
	case RangeToday:
		return Today.Contains(t, now)
	case RangeWeek:
		return LastSevenDays.Contains(t, now)
	case RangeMonth:
		return ThisMonth.Contains(t, now)
	default:
		return true
	}
}

// FilterHistory returns the transactions in r whose category matches, in
// input order. An empty category or AllCategories matches any.
func FilterHistory(txns []model.Transaction, now time.Time, r Range, category string) []model.Transaction {
	out := []model.Transaction{}
	for _, t := range txns {
		if !r.contains(t, now) {
			continue
		}
		if category != "" && category != AllCategories && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}
