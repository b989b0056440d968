package stubhub

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"ticket-value-alert/config"
	"ticket-value-alert/utils"
)

// cardSelectors are probed in order until one matches. StubHub's markup
// changes; when the renderer stops finding cards, inspect the page and
// update this list.
var cardSelectors = []string{
	"[data-testid*='listing']",
	"[class*='Listing']",
	"[class*='listing']",
}

// Renderer loads the event page in headless Chrome and yields the rendered
// text of every listing card it can find. It is best-effort: zero blocks is
// a normal outcome, and a stuck selector probe degrades to fewer blocks
// rather than a stalled cycle.
type Renderer struct {
	cfg    *config.Config
	logger *utils.Logger
}

// New creates a ready-to-use Renderer.
func New(cfg *config.Config, logger *utils.Logger) *Renderer {
	return &Renderer{cfg: cfg, logger: logger}
}

// Render navigates to the configured event URL and returns one raw text
// block per listing card. Blocks may contain several concatenated listings
// when the page virtualizes its list; segmentation downstream handles that.
func (r *Renderer) Render(eventURL string) ([]string, error) {
	chromeBin := findChromeBinary(r.cfg.ChromeBin)
	r.logger.Debug("[stubhub] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	silentCtx, cancelSilent := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelSilent()
	allocCtx = silentCtx

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx,
		time.Duration(r.cfg.RenderTimeoutSeconds)*time.Second)
	defer cancelTimeout()

	if err := chromedp.Run(ctx,
		chromedp.Navigate(eventURL),
		chromedp.Sleep(3*time.Second),
	); err != nil {
		return nil, fmt.Errorf("chromedp navigate: %w", err)
	}

	r.dismissConsentDialog(ctx)
	r.scrollThroughListings(ctx)

	sel := r.probeCardSelector(ctx)
	if sel == "" {
		r.logger.Warn("[stubhub] No card selector matched — returning 0 blocks")
		return nil, nil
	}

	var blocks []string
	err := chromedp.Run(ctx, chromedp.Evaluate(`
		(function() {
			var out = [];
			var cards = document.querySelectorAll(`+fmt.Sprintf("%q", sel)+`);
			for (var i = 0; i < cards.length; i++) {
				var t = (cards[i].innerText || '').trim();
				if (t) out.push(t);
			}
			return out;
		})()
	`, &blocks))
	if err != nil {
		return nil, fmt.Errorf("chromedp extract card text: %w", err)
	}

	r.logger.Debug("[stubhub] Rendered %d raw blocks from %s", len(blocks), eventURL)
	return blocks, nil
}

// dismissConsentDialog clicks through cookie/consent banners when present.
// Failure here is harmless: the listing area usually renders regardless.
func (r *Renderer) dismissConsentDialog(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var clicked bool
	err := chromedp.Run(probeCtx,
		chromedp.Evaluate(`
			(function() {
				var candidates = document.querySelectorAll(
					'#onetrust-accept-btn-handler, button[id*="accept"], button[class*="consent"]');
				for (var i = 0; i < candidates.length; i++) {
					candidates[i].click();
					return true;
				}
				var buttons = document.querySelectorAll('button');
				for (var j = 0; j < buttons.length; j++) {
					var text = (buttons[j].innerText || '').toLowerCase();
					if (text.indexOf('accept') !== -1 || text.indexOf('agree') !== -1) {
						buttons[j].click();
						return true;
					}
				}
				return false;
			})()
		`, &clicked),
		chromedp.Sleep(1*time.Second),
	)
	if err != nil {
		r.logger.Debug("[stubhub] Consent probe failed: %v", err)
		return
	}
	if clicked {
		r.logger.Debug("[stubhub] Dismissed consent dialog")
	}
}

// scrollThroughListings performs staged scrolls so virtualized listing rows
// mount into the DOM before extraction.
func (r *Renderer) scrollThroughListings(ctx context.Context) {
	scrollCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	err := chromedp.Run(scrollCtx,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight / 3)`, nil),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`window.scrollTo(0, 2 * document.body.scrollHeight / 3)`, nil),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(2*time.Second),
	)
	if err != nil {
		r.logger.Debug("[stubhub] Scroll pass cut short: %v", err)
	}
}

// probeCardSelector tries each known card selector with its own short
// timeout. A selector that hangs costs at most its probe window.
func (r *Renderer) probeCardSelector(ctx context.Context) string {
	for _, sel := range cardSelectors {
		probeCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		var count int
		err := chromedp.Run(probeCtx, chromedp.Evaluate(
			`document.querySelectorAll(`+fmt.Sprintf("%q", sel)+`).length`, &count))
		cancel()

		if err != nil {
			r.logger.Debug("[stubhub] Selector probe %q failed: %v", sel, err)
			continue
		}
		if count > 0 {
			r.logger.Debug("[stubhub] Selector %q matched %d cards", sel, count)
			return sel
		}
	}
	return ""
}

// findChromeBinary locates a Chrome/Chromium binary.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
