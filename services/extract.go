package services

import (
	"regexp"
	"strconv"
	"strings"
)

// Every extractor in this file is total: it never fails, it only falls back
// to a sentinel or absent value when the chunk does not match. Misses and
// misparses flow forward as qualification failures, never as errors.

var (
	sectionRegexp = regexp.MustCompile(`(?i)\bSection\s+([A-Za-z0-9\-]+)`)
	rowRegexp     = regexp.MustCompile(`(?i)\bRow\s+([A-Za-z0-9\-]+)`)
	// ticketsRegexp captures "2 tickets" / "1 ticket"
	ticketsRegexp = regexp.MustCompile(`(?i)\b(\d+)\s+tickets?\b`)
	// qtyRegexp is the fallback for explicit "qty 4" / "quantity: 4" tokens
	qtyRegexp = regexp.MustCompile(`(?i)\bq(?:ty|uantity)\s*:?\s*(\d+)\b`)
	// priceRegexp captures a currency amount like "$120" or "$ 1,250.50"
	priceRegexp = regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d{2})?`)
	// allInRegexp captures a currency amount immediately followed by a
	// fee-inclusion qualifier phrase
	allInRegexp = regexp.MustCompile(`(?i)(\$\s?\d[\d,]*(?:\.\d{2})?)\s*(?:each\s+)?(?:all[-\s]?in|incl(?:\.|udes)?\s+fees|with\s+fees|fees\s+included)`)
	// scoreWordRegexp captures a decimal score (one or two integer digits,
	// one fractional digit) immediately followed by a single word, e.g.
	// "9.6 Amazing". Positional heuristic: it can misfire on unrelated
	// decimals adjacent to any word.
	scoreWordRegexp = regexp.MustCompile(`\b(\d{1,2}\.\d)\s+([A-Za-z]+)\b`)
)

// dealVocabulary is the fixed set of marketing phrases recognised as a deal
// label, checked in order; the first hit wins.
var dealVocabulary = []string{
	"amazing deal",
	"great deal",
	"good deal",
	"best value",
	"cheapest in section",
}

// tagVocabulary is the fixed set of marketing tags; matches are reported in
// vocabulary order, not order of appearance.
var tagVocabulary = []string{
	"Instant Download",
	"e-Tickets",
	"Mobile Transfer",
	"Aisle Seat",
	"Clear View",
	"First Row",
	"Zone Seating",
	"Price Drop",
}

// ExtractSection returns the first "Section <id>" token, or the sentinel.
func ExtractSection(chunk string) string {
	if m := sectionRegexp.FindStringSubmatch(chunk); m != nil {
		return m[1]
	}
	return sentinel
}

// ExtractRow returns the first "Row <id>" token, or the sentinel.
func ExtractRow(chunk string) string {
	if m := rowRegexp.FindStringSubmatch(chunk); m != nil {
		return m[1]
	}
	return sentinel
}

// ExtractQuantity returns the bundle size from "<N> ticket(s)", falling back
// to an explicit qty/quantity token. 0 means unknown, never "zero tickets".
func ExtractQuantity(chunk string) int {
	m := ticketsRegexp.FindStringSubmatch(chunk)
	if m == nil {
		m = qtyRegexp.FindStringSubmatch(chunk)
	}
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ExtractPrice returns the normalized price text and whether it is flagged as
// fee-inclusive. An amount immediately followed by a fee-inclusion qualifier
// is preferred over the first bare amount in the chunk.
func ExtractPrice(chunk string) (price string, allIn bool) {
	if m := allInRegexp.FindStringSubmatch(chunk); m != nil {
		return strings.ReplaceAll(m[1], " ", ""), true
	}
	if m := priceRegexp.FindString(chunk); m != "" {
		return strings.ReplaceAll(m, " ", ""), false
	}
	return sentinel, false
}

// ExtractScore returns the marketplace value score and the single word
// adjacent to it, or (nil, "") if no such adjacency exists.
func ExtractScore(chunk string) (*float64, string) {
	m := scoreWordRegexp.FindStringSubmatch(chunk)
	if m == nil {
		return nil, ""
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, ""
	}
	return &f, m[2]
}

// ExtractDealLabel returns the first deal-vocabulary phrase present in the
// chunk, title-cased, or "" if none match.
func ExtractDealLabel(chunk string) string {
	lower := strings.ToLower(chunk)
	for _, phrase := range dealVocabulary {
		if strings.Contains(lower, phrase) {
			return titleCase(phrase)
		}
	}
	return ""
}

// ExtractTags returns the subset of the tag vocabulary present in the chunk,
// in vocabulary order.
func ExtractTags(chunk string) []string {
	lower := strings.ToLower(chunk)
	var tags []string
	for _, tag := range tagVocabulary {
		if strings.Contains(lower, strings.ToLower(tag)) {
			tags = append(tags, tag)
		}
	}
	return tags
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
