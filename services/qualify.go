package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"ticket-value-alert/models"
)

var numericPriceRegexp = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// Qualifier decides whether a Listing meets the alert-worthiness policy. The
// policy is immutable once constructed.
type Qualifier struct {
	minScore   float64
	minQty     int
	dealLabels map[string]struct{}
}

// NewQualifier builds a Qualifier. minQty <= 0 disables the quantity check;
// an empty allow-list disables the deal-label fallback path.
func NewQualifier(minScore float64, minQty int, dealLabels []string) *Qualifier {
	allow := make(map[string]struct{}, len(dealLabels))
	for _, l := range dealLabels {
		allow[strings.ToLower(strings.TrimSpace(l))] = struct{}{}
	}
	return &Qualifier{minScore: minScore, minQty: minQty, dealLabels: allow}
}

// QuantityTooSmall reports whether a known quantity falls below the configured
// minimum. An unknown quantity (0) never disqualifies.
func (q *Qualifier) QuantityTooSmall(l *models.Listing) bool {
	return q.minQty > 0 && l.Quantity > 0 && l.Quantity < q.minQty
}

// Qualifies evaluates the policy in strict order: quantity check, then the
// numeric score threshold, then the deal-label allow-list. The score path
// takes precedence over the label fallback: a listing with a sub-threshold
// score is rejected even when its label is on the allow-list.
func (q *Qualifier) Qualifies(l *models.Listing) bool {
	if q.QuantityTooSmall(l) {
		return false
	}
	if l.HasScore() {
		return *l.Score >= q.minScore
	}
	if len(q.dealLabels) > 0 && l.DealLabel != "" {
		_, ok := q.dealLabels[strings.ToLower(l.DealLabel)]
		return ok
	}
	return false
}

// PriceValue parses the numeric value out of normalized price text. The
// second return is false for the sentinel or any unparseable text.
func PriceValue(price string) (float64, bool) {
	m := numericPriceRegexp.FindString(price)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SortByValue orders listings best-first: descending score with absent scores
// last, ties broken by ascending numeric price with unparseable prices last.
func SortByValue(listings []*models.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		si, sj := listings[i], listings[j]

		iScore, iHas := scoreOf(si)
		jScore, jHas := scoreOf(sj)
		if iHas != jHas {
			return iHas
		}
		if iHas && iScore != jScore {
			return iScore > jScore
		}

		iPrice, iOK := PriceValue(si.Price)
		jPrice, jOK := PriceValue(sj.Price)
		if iOK != jOK {
			return iOK
		}
		if iOK {
			return iPrice < jPrice
		}
		return false
	})
}

func scoreOf(l *models.Listing) (float64, bool) {
	if l.Score == nil {
		return 0, false
	}
	return *l.Score, true
}
