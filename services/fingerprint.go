package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"ticket-value-alert/models"
)

// Fingerprint computes a deterministic identity digest over the full field
// tuple of a Listing. Any single field change (a price drop, a new tag)
// yields a different fingerprint and is intentionally treated as a new
// listing. Identity key only, not a security primitive.
func Fingerprint(l *models.Listing) string {
	score := ""
	if l.Score != nil {
		score = strconv.FormatFloat(*l.Score, 'f', 1, 64)
	}

	raw := strings.Join([]string{
		l.Section,
		l.Row,
		strconv.Itoa(l.Quantity),
		l.Price,
		strconv.FormatBool(l.AllInPricing),
		score,
		l.ScoreWord,
		l.DealLabel,
		strings.Join(l.Tags, ","),
		l.SourceURL,
	}, "|")

	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
