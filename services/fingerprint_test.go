package services

import (
	"testing"

	"ticket-value-alert/models"
)

func fixtureListing() *models.Listing {
	score := 9.6
	return &models.Listing{
		Section:   "112",
		Row:       "F",
		Quantity:  2,
		Price:     "$36",
		Score:     &score,
		ScoreWord: "Amazing",
		DealLabel: "Great Deal",
		Tags:      []string{"Instant Download"},
		SourceURL: "https://example.com/event/123",
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := fixtureListing()
	b := fixtureListing()

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("equal field tuples must produce equal fingerprints")
	}
	if Fingerprint(a) != Fingerprint(a) {
		t.Error("fingerprint must be stable across calls")
	}
}

func TestFingerprintSensitiveToEveryField(t *testing.T) {
	base := Fingerprint(fixtureListing())

	mutations := map[string]func(*models.Listing){
		"section":  func(l *models.Listing) { l.Section = "113" },
		"row":      func(l *models.Listing) { l.Row = "G" },
		"quantity": func(l *models.Listing) { l.Quantity = 4 },
		"price":    func(l *models.Listing) { l.Price = "$40" },
		"all-in":   func(l *models.Listing) { l.AllInPricing = true },
		"score":    func(l *models.Listing) { s := 9.7; l.Score = &s },
		"word":     func(l *models.Listing) { l.ScoreWord = "Good" },
		"label":    func(l *models.Listing) { l.DealLabel = "Best Value" },
		"tags":     func(l *models.Listing) { l.Tags = append(l.Tags, "Aisle Seat") },
		"url":      func(l *models.Listing) { l.SourceURL = "https://example.com/event/999" },
	}

	for name, mutate := range mutations {
		l := fixtureListing()
		mutate(l)
		if Fingerprint(l) == base {
			t.Errorf("changing %s should change the fingerprint", name)
		}
	}
}

func TestFingerprintAbsentScoreDiffersFromZero(t *testing.T) {
	withNil := fixtureListing()
	withNil.Score = nil
	withZero := fixtureListing()
	zero := 0.0
	withZero.Score = &zero

	if Fingerprint(withNil) == Fingerprint(withZero) {
		t.Error("absent score and 0.0 score must not collide")
	}
}
