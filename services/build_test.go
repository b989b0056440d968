package services

import (
	"testing"
	"time"

	"ticket-value-alert/models"
	"ticket-value-alert/utils"
)

const testURL = "https://example.com/event/123"

func newTestBuilder() *Builder { return NewBuilder(utils.NewLogger()) }

func TestBuildAssemblesFields(t *testing.T) {
	b := newTestBuilder()
	chunk := "Section 112 Row F 2 tickets $120 all-in 9.6 Amazing Great deal Instant download"

	l, ok := b.Build(chunk, testURL, time.Now())
	if !ok {
		t.Fatal("expected a listing")
	}

	if l.Section != "112" || l.Row != "F" {
		t.Errorf("section/row = %q/%q; want 112/F", l.Section, l.Row)
	}
	if l.Quantity != 2 {
		t.Errorf("quantity = %d; want 2", l.Quantity)
	}
	if l.Price != "$120" || !l.AllInPricing {
		t.Errorf("price = %q allIn=%v; want $120 all-in", l.Price, l.AllInPricing)
	}
	if l.Score == nil || *l.Score != 9.6 || l.ScoreWord != "Amazing" {
		t.Errorf("score = %v %q; want 9.6 Amazing", l.Score, l.ScoreWord)
	}
	if l.DealLabel != "Great Deal" {
		t.Errorf("dealLabel = %q; want Great Deal", l.DealLabel)
	}
	if len(l.Tags) != 1 || l.Tags[0] != "Instant Download" {
		t.Errorf("tags = %v; want [Instant Download]", l.Tags)
	}
	if l.SourceURL != testURL {
		t.Errorf("sourceURL = %q; want %q", l.SourceURL, testURL)
	}
}

func TestBuildPlausibilityGate(t *testing.T) {
	b := newTestBuilder()

	// No section, row, or price: presumed non-listing noise.
	if _, ok := b.Build("Filter by quantity and seat features", testURL, time.Now()); ok {
		t.Error("chunk with no usable signal should be dropped")
	}

	// A single usable field is enough to keep the chunk.
	if _, ok := b.Build("front row seats from $85", testURL, time.Now()); !ok {
		t.Error("chunk with a price should survive the gate")
	}
}

func TestParsePipelineCounts(t *testing.T) {
	b := newTestBuilder()

	tests := []struct {
		name   string
		blocks []string
		wantN  int
	}{
		{"zero listings", []string{"no anchors anywhere"}, 0},
		{"one listing", []string{"Section 112 Row F $120 2 tickets 9.6 Amazing"}, 1},
		{"five concatenated", []string{
			"Section 101 Row A $30 1 ticket 9.1 Great " +
				"Section 102 Row B $32 2 tickets 9.2 Great " +
				"Section 103 Row C $34 3 tickets 9.3 Great " +
				"Section 104 Row D $36 4 tickets 9.4 Great " +
				"Section 105 Row E $38 5 tickets 9.5 Great",
		}, 5},
	}

	for _, tt := range tests {
		listings, _ := b.Parse(tt.blocks, testURL, time.Now())
		if len(listings) != tt.wantN {
			t.Errorf("%s: got %d listings, want %d", tt.name, len(listings), tt.wantN)
		}
	}
}

func TestParseExtractsPerListingFields(t *testing.T) {
	b := newTestBuilder()
	block := "Section 101 Row A $30 1 ticket 9.1 Great Section 102 Row B $32 2 tickets 9.2 Solid"

	listings, _ := b.Parse([]string{block}, testURL, time.Now())
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	want := []models.Listing{
		{Section: "101", Row: "A", Quantity: 1, Price: "$30", ScoreWord: "Great"},
		{Section: "102", Row: "B", Quantity: 2, Price: "$32", ScoreWord: "Solid"},
	}
	wantScores := []float64{9.1, 9.2}

	for i, l := range listings {
		if l.Section != want[i].Section || l.Row != want[i].Row ||
			l.Quantity != want[i].Quantity || l.Price != want[i].Price ||
			l.ScoreWord != want[i].ScoreWord {
			t.Errorf("listing %d = %+v; want %+v", i, l, want[i])
		}
		if l.Score == nil || *l.Score != wantScores[i] {
			t.Errorf("listing %d score = %v; want %.1f", i, l.Score, wantScores[i])
		}
	}
}
