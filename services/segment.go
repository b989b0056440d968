package services

import "regexp"

var (
	// paginationRegexp matches the "Showing <n> of <m>" footer that trails
	// the listing area; everything at and after it is non-listing chrome.
	paginationRegexp = regexp.MustCompile(`(?i)Showing\s+\d+\s+of\s+\d+`)
	// anchorRegexp marks the start of one listing card inside a block that
	// the virtualized renderer concatenated from several cards.
	anchorRegexp = regexp.MustCompile(`(?i)\bSection\s+[A-Za-z0-9\-]+`)
)

// Segment splits one normalized block into per-listing chunks. The block may
// hold several concatenated cards; each "Section <id>" token starts a new
// chunk. Any leading fragment before the first anchor is discarded, and a
// block with no anchors yields nothing. The anchor token can coincidentally
// appear inside descriptive text; such false splits are accepted and left to
// the plausibility gate downstream.
func Segment(block string) []string {
	if m := paginationRegexp.FindStringIndex(block); m != nil {
		block = block[:m[0]]
	}

	starts := anchorRegexp.FindAllStringIndex(block, -1)
	if len(starts) == 0 {
		return nil
	}

	chunks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(block)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		chunks = append(chunks, block[loc[0]:end])
	}
	return chunks
}
