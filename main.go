package main

import (
	"time"

	"ticket-value-alert/config"
	"ticket-value-alert/notify"
	"ticket-value-alert/scraper/stubhub"
	"ticket-value-alert/storage"
	"ticket-value-alert/utils"
	"ticket-value-alert/watcher"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Ticket Value Alert starting ===")
	logger.Info("Config — min score: %.1f | min qty: %d | poll: %ds | digest: %ds | top-K: %d",
		cfg.MinValueScore, cfg.MinTicketQty, cfg.CheckInterval, cfg.DigestInterval, cfg.AlertTopK)

	go watcher.Heartbeat(logger, time.Duration(cfg.HeartbeatSeconds)*time.Second)

	if cfg.EventURL == "" {
		// Stay alive but inactive so supervisors and the heartbeat still see
		// the process; the polling loop never starts without a target URL.
		logger.Error("EVENT_URL is not set — watcher will not start. Set it and restart.")
		for {
			time.Sleep(time.Hour)
		}
	}

	store := openStore(cfg, logger)
	defer store.Close()

	var notifier notify.Notifier
	if cfg.PushoverUserKey != "" && cfg.PushoverAPIToken != "" {
		notifier = notify.NewPushover(cfg.PushoverUserKey, cfg.PushoverAPIToken)
		logger.Info("Notifications via Pushover")
	} else {
		notifier = notify.NewLogNotifier(logger)
		logger.Info("Pushover not configured — alerts go to the log")
	}

	renderer := stubhub.New(cfg, logger)

	w := watcher.New(cfg, logger, renderer, notifier, store)
	w.Run()
}

// openStore picks the configured seen-store backend, degrading to an
// in-memory set when the backend cannot be opened: persistence trouble must
// never keep the watcher from starting.
func openStore(cfg *config.Config, logger *utils.Logger) storage.SeenStore {
	if cfg.StateBackend == "postgres" {
		store, err := storage.NewPostgresStore(cfg.DSN(), logger)
		if err == nil {
			logger.Info("Seen-store backend: PostgreSQL")
			return store
		}
		logger.Error("PostgreSQL store unavailable: %v — falling back to file store", err)
	}

	store, err := storage.NewFileStore(cfg.StateFile, logger)
	if err == nil {
		logger.Info("Seen-store backend: %s", cfg.StateFile)
		return store
	}

	logger.Error("File store unavailable: %v — using in-memory store", err)
	return storage.NewMemStore()
}
