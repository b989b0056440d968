package watcher

import (
	"time"

	"ticket-value-alert/utils"
)

// Heartbeat emits a liveness log line on a fixed interval, forever. It reads
// and writes no shared state, so it needs no synchronization with the
// polling loop.
func Heartbeat(logger *utils.Logger, interval time.Duration) {
	start := time.Now()
	for {
		time.Sleep(interval)
		logger.Info("[heartbeat] Alive — uptime %s", time.Since(start).Round(time.Second))
	}
}
