package services

import (
	"fmt"
	"strings"
	"testing"
)

func TestSegmentZeroAnchors(t *testing.T) {
	chunks := Segment("Filter by price, quantity, and seat features")
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for anchorless block, got %d", len(chunks))
	}
}

func TestSegmentSingleListing(t *testing.T) {
	block := "Section 112 Row F 2 tickets $120 each 9.6 Amazing"
	chunks := Segment(block)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != block {
		t.Errorf("chunk = %q; want the whole block", chunks[0])
	}
}

func TestSegmentConcatenatedListings(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "Section %d Row %d %d tickets $%d0 each ", 100+i, i, i, 10+i)
	}
	chunks := Segment(b.String())
	if len(chunks) != 5 {
		t.Fatalf("expected 5 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		wantPrefix := fmt.Sprintf("Section %d", 101+i)
		if !strings.HasPrefix(c, wantPrefix) {
			t.Errorf("chunk %d = %q; want prefix %q", i, c, wantPrefix)
		}
	}
}

func TestSegmentDropsLeadingFragment(t *testing.T) {
	block := "467 results sorted by best value Section 112 Row F $120"
	chunks := Segment(block)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if !strings.HasPrefix(chunks[0], "Section 112") {
		t.Errorf("leading fragment not dropped: %q", chunks[0])
	}
}

func TestSegmentTruncatesAtPaginationMarker(t *testing.T) {
	block := "Section 112 Row F $120 Showing 20 of 467 Section 113 Row A $90"
	chunks := Segment(block)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk (text after marker discarded), got %d", len(chunks))
	}
	if strings.Contains(chunks[0], "Section 113") {
		t.Errorf("chunk should not contain post-marker text: %q", chunks[0])
	}
}
