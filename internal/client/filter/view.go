package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

// Criteria is the operator's current filter state. The zero value lets
// everything through.
type Criteria struct {
	Range Range
	// Status is matched exactly; "" and "all" disable the status filter.
	Status string
	// Query is a case-insensitive substring matched against SearchFields.
	Query string
}

// Summary aggregates the filtered set behind the summary cards.
type Summary struct {
	Count  int
	Amount float64
}

// View filters items by c and orders the result most recent first. Records
// without a timestamp, or with a zero one, ignore the range; untimed
// collections keep their input order. items is never modified.
func View[T models.Record](items []T, c Criteria, now time.Time) []T {
	start := RangeStart(c.Range, now)
	if c.Range == "" {
		start = RangeStart(All, now)
	}
	status := strings.TrimSpace(c.Status)
	if strings.EqualFold(status, "all") {
		status = ""
	}
	q := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]T, 0, len(items))
	for _, it := range items {
		if ts, ok := any(it).(models.Timestamped); ok && !ts.When().IsZero() && ts.When().Before(start) {
			continue
		}
		if status != "" {
			st, ok := any(it).(models.Statused)
			if !ok || st.StatusValue() != status {
				continue
			}
		}
		if q != "" && !matches(it.SearchFields(), q) {
			continue
		}
		out = append(out, it)
	}

	slices.SortStableFunc(out, func(a, b T) int {
		ta, okA := any(a).(models.Timestamped)
		tb, okB := any(b).(models.Timestamped)
		if !okA || !okB {
			return 0
		}
		return tb.When().Compare(ta.When())
	})
	return out
}

func matches(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Summarize counts items and sums their amounts. Pass the output of View so
// the totals reflect the filtered set only.
func Summarize[T models.Record](items []T) Summary {
	s := Summary{Count: len(items)}
	for _, it := range items {
		if a, ok := any(it).(models.Amounted); ok {
			s.Amount += a.AmountValue()
		}
	}
	return s
}
