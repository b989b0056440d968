package services

import (
	"time"

	"ticket-value-alert/models"
	"ticket-value-alert/utils"
)

const sentinel = models.Unknown

// Builder turns raw rendered blocks into candidate Listings by composing the
// normalizer, the segmenter, and the field extractors.
type Builder struct {
	logger *utils.Logger
}

// NewBuilder creates a Builder with the given logger.
func NewBuilder(logger *utils.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build assembles extractor outputs for one chunk into a Listing. It returns
// (nil, false) when section, row, and price are all sentinel: a chunk with no
// usable signal is presumed to be non-listing noise (filter-panel fragments,
// page chrome) that survived segmentation.
func (b *Builder) Build(chunk, sourceURL string, observedAt time.Time) (*models.Listing, bool) {
	section := ExtractSection(chunk)
	row := ExtractRow(chunk)
	price, allIn := ExtractPrice(chunk)

	if section == sentinel && row == sentinel && price == sentinel {
		return nil, false
	}

	score, word := ExtractScore(chunk)

	return &models.Listing{
		Section:      section,
		Row:          row,
		Quantity:     ExtractQuantity(chunk),
		Price:        price,
		AllInPricing: allIn,
		Score:        score,
		ScoreWord:    word,
		DealLabel:    ExtractDealLabel(chunk),
		Tags:         ExtractTags(chunk),
		SourceURL:    sourceURL,
		ObservedAt:   observedAt,
	}, true
}

// Parse runs the full extraction pipeline over the raw blocks returned by the
// renderer and reports candidate Listings plus per-phase counts.
func (b *Builder) Parse(blocks []string, sourceURL string, observedAt time.Time) ([]*models.Listing, int) {
	var chunks int
	var listings []*models.Listing

	for _, block := range blocks {
		for _, chunk := range Segment(Normalize(block)) {
			chunks++
			if l, ok := b.Build(chunk, sourceURL, observedAt); ok {
				listings = append(listings, l)
			}
		}
	}

	b.logger.Debug("[extract] %d blocks → %d chunks → %d candidates (dropped %d as noise)",
		len(blocks), chunks, len(listings), chunks-len(listings))
	return listings, chunks
}
