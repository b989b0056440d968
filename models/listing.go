package models

import "time"

// Unknown is the sentinel used for string fields that could not be extracted
// from a listing card's rendered text.
const Unknown = "Unknown"

// Listing is one observed ticket-sale offer, rebuilt fresh every polling
// cycle from rendered page text. Listings are never persisted; only the
// fingerprints of alerted listings are.
type Listing struct {
	Section      string
	Row          string
	Quantity     int // 0 means "unknown", never "zero tickets"
	Price        string
	AllInPricing bool
	Score        *float64
	ScoreWord    string
	DealLabel    string
	Tags         []string
	SourceURL    string
	ObservedAt   time.Time
}

// HasScore reports whether the marketplace exposed a numeric value score.
func (l *Listing) HasScore() bool {
	return l.Score != nil
}
