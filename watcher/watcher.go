package watcher

import (
	"fmt"
	"time"

	"ticket-value-alert/config"
	"ticket-value-alert/models"
	"ticket-value-alert/notify"
	"ticket-value-alert/services"
	"ticket-value-alert/storage"
	"ticket-value-alert/utils"
)

// Renderer yields candidate raw text blocks for an event page URL. Zero
// blocks is a normal outcome, not an error.
type Renderer interface {
	Render(eventURL string) ([]string, error)
}

// Watcher drives the polling loop: render, extract, qualify, dedup, alert,
// digest, sleep. One sequential worker; nothing inside a cycle runs
// concurrently, so the seen set is never written from two places at once.
type Watcher struct {
	cfg       *config.Config
	logger    *utils.Logger
	builder   *services.Builder
	qualifier *services.Qualifier
	renderer  Renderer
	notifier  notify.Notifier
	store     storage.SeenStore

	seen       *utils.FingerprintSet
	lastDigest time.Time
	cycles     int
}

// New creates a Watcher and loads the persisted seen set. A store that fails
// to load contributes an empty set; it never blocks construction.
func New(cfg *config.Config, logger *utils.Logger, renderer Renderer,
	notifier notify.Notifier, store storage.SeenStore) *Watcher {

	seen := utils.NewFingerprintSet(store.Load())
	logger.Info("[watch] Loaded %d previously alerted fingerprints", seen.Size())

	return &Watcher{
		cfg:       cfg,
		logger:    logger,
		builder:   services.NewBuilder(logger),
		qualifier: services.NewQualifier(cfg.MinValueScore, cfg.MinTicketQty, cfg.DealLabels),
		renderer:  renderer,
		notifier:  notifier,
		store:     store,
		seen:      seen,
	}
}

// Run polls forever. Every cycle, successful or failed, is followed by the
// same fixed sleep; there is no backoff and no cancellation.
func (w *Watcher) Run() {
	w.lastDigest = time.Now()
	interval := time.Duration(w.cfg.CheckInterval) * time.Second

	for {
		if err := w.runCycle(time.Now()); err != nil {
			w.logger.Error("[watch] Cycle failed: %v", err)
		}
		time.Sleep(interval)
	}
}

// runCycle executes one full polling cycle. Any collaborator failure aborts
// the rest of the cycle and surfaces here, tagged with the phase that failed;
// the seen set is only persisted after a successful alert delivery, so a
// failed cycle cannot corrupt it.
func (w *Watcher) runCycle(now time.Time) error {
	w.cycles++
	start := time.Now()

	blocks, err := w.renderer.Render(w.cfg.EventURL)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	candidates, chunks := w.builder.Parse(blocks, w.cfg.EventURL, now)
	qualifying := w.qualify(candidates)

	fresh := w.partitionFresh(qualifying)

	if len(fresh) > 0 {
		if err := w.alertFresh(fresh); err != nil {
			return fmt.Errorf("notify new: %w", err)
		}
	} else {
		w.logger.Info("[watch] No new listings ≥ %.1f this cycle", w.cfg.MinValueScore)
	}

	if err := w.maybeDigest(now, qualifying); err != nil {
		return fmt.Errorf("digest: %w", err)
	}

	w.logger.Info("[watch] Cycle %d: %d blocks, %d chunks, %d candidates, %d qualifying, %d new (%.1fs)",
		w.cycles, len(blocks), chunks, len(candidates), len(qualifying),
		len(fresh), time.Since(start).Seconds())
	return nil
}

// qualify applies the quantity pre-filter and then the full policy.
func (w *Watcher) qualify(candidates []*models.Listing) []*models.Listing {
	var out []*models.Listing
	for _, l := range candidates {
		if w.qualifier.QuantityTooSmall(l) {
			continue
		}
		if w.qualifier.Qualifies(l) {
			out = append(out, l)
		}
	}
	return out
}

// partitionFresh returns the qualifying listings whose fingerprints are not
// yet in the seen set, in input order.
func (w *Watcher) partitionFresh(qualifying []*models.Listing) []*models.Listing {
	var fresh []*models.Listing
	for _, l := range qualifying {
		if !w.seen.Contains(services.Fingerprint(l)) {
			fresh = append(fresh, l)
		}
	}
	return fresh
}

// alertFresh sorts the new listings best-first, delivers the top-K as one
// notification, and only then merges the fingerprints and persists the set.
// A save failure is logged but does not roll back the in-memory set.
func (w *Watcher) alertFresh(fresh []*models.Listing) error {
	services.SortByValue(fresh)

	shown := fresh
	if len(shown) > w.cfg.AlertTopK {
		shown = shown[:w.cfg.AlertTopK]
	}

	title := fmt.Sprintf("Ticket value ≥ %.1f — %d new", w.cfg.MinValueScore, len(fresh))
	if err := w.notifier.Send(title, FormatAlertBody(shown, w.cfg.EventURL)); err != nil {
		return err
	}

	for _, l := range fresh {
		w.seen.Add(services.Fingerprint(l))
	}
	if err := w.store.Save(w.seen.Snapshot()); err != nil {
		w.logger.Error("[watch] Persist seen set failed (continuing): %v", err)
	}
	return nil
}

// maybeDigest sends the periodic cumulative summary once the configured
// interval has elapsed. An empty qualifying set still produces a digest. The
// timer only resets after a delivered digest.
func (w *Watcher) maybeDigest(now time.Time, qualifying []*models.Listing) error {
	if w.cfg.DigestInterval <= 0 {
		return nil
	}
	if now.Sub(w.lastDigest) < time.Duration(w.cfg.DigestInterval)*time.Second {
		return nil
	}

	top := make([]*models.Listing, len(qualifying))
	copy(top, qualifying)
	services.SortByValue(top)
	if len(top) > w.cfg.DigestTopN {
		top = top[:w.cfg.DigestTopN]
	}

	title := fmt.Sprintf("Ticket digest — %d qualifying", len(qualifying))
	if err := w.notifier.Send(title, FormatDigestBody(len(qualifying), top, w.cfg.EventURL)); err != nil {
		return err
	}

	w.lastDigest = now
	return nil
}
