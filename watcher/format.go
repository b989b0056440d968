package watcher

import (
	"fmt"
	"strings"

	"ticket-value-alert/models"
	"ticket-value-alert/services"
)

// FormatListingLine renders one listing as a single human-readable line:
//
//	Score 9.6 Amazing | Section 112/Row F | Qty 2 | $120 all-in | Great Deal
func FormatListingLine(l *models.Listing) string {
	parts := make([]string, 0, 6)

	if l.HasScore() {
		score := fmt.Sprintf("Score %.1f", *l.Score)
		if l.ScoreWord != "" {
			score += " " + l.ScoreWord
		}
		parts = append(parts, score)
	}

	parts = append(parts, fmt.Sprintf("Section %s/Row %s", l.Section, l.Row))

	if l.Quantity > 0 {
		parts = append(parts, fmt.Sprintf("Qty %d", l.Quantity))
	}

	price := l.Price
	if l.AllInPricing {
		price += " all-in"
	}
	parts = append(parts, price)

	if l.DealLabel != "" {
		parts = append(parts, l.DealLabel)
	}
	if len(l.Tags) > 0 {
		parts = append(parts, strings.Join(l.Tags, ", "))
	}

	return strings.Join(parts, " | ")
}

// FormatAlertBody renders the "new listings" notification body.
func FormatAlertBody(listings []*models.Listing, eventURL string) string {
	lines := make([]string, 0, len(listings)+2)
	for _, l := range listings {
		lines = append(lines, FormatListingLine(l))
	}
	lines = append(lines, "", "Event: "+eventURL)
	return strings.Join(lines, "\n")
}

// FormatDigestBody renders the periodic cumulative summary. An empty
// qualifying set still produces an explicit message.
func FormatDigestBody(total int, top []*models.Listing, eventURL string) string {
	if total == 0 {
		return "No qualifying listings right now.\n\nEvent: " + eventURL
	}

	lines := make([]string, 0, len(top)+4)
	lines = append(lines, fmt.Sprintf("%d qualifying listings right now. Top %d:", total, len(top)))
	for i, l := range top {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, FormatListingLine(l)))
	}
	if floor, ok := cheapestQualifying(top); ok {
		lines = append(lines, fmt.Sprintf("Cheapest shown: $%.2f", floor))
	}
	lines = append(lines, "", "Event: "+eventURL)
	return strings.Join(lines, "\n")
}

// cheapestQualifying finds the lowest parseable price in the set.
func cheapestQualifying(listings []*models.Listing) (float64, bool) {
	best := 0.0
	found := false
	for _, l := range listings {
		if v, ok := services.PriceValue(l.Price); ok && (!found || v < best) {
			best = v
			found = true
		}
	}
	return best, found
}
