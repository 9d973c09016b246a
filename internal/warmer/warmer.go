// Package warmer keeps the snapshot cache fresh for the popular-ticker
// list so first paint of the dashboard doesn't wait on the provider.
package warmer

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockScope/internal/cache"
	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
)

// Warmer refreshes the configured tickers into the cache on a cron schedule.
type Warmer struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Cache     *cache.SnapshotCache
	Recorder  recorder.Recorder
	Tickers   []string
	Period    model.Period
}

// New creates a Warmer for the given ticker list.
func New(col *collector.Collector, c *cache.SnapshotCache, rec recorder.Recorder, tickers []string, period model.Period) *Warmer {
	return &Warmer{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Cache:     c,
		Recorder:  rec,
		Tickers:   tickers,
		Period:    period,
	}
}

// Register schedules the warm sweep on the given cron spec.
func (w *Warmer) Register(spec string) error {
	if _, err := w.Cron.AddFunc(spec, w.RunNow); err != nil {
		return fmt.Errorf("register warm task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Warmer) Start() {
	w.Cron.Start()
	log.Println("[INFO] cache warmer started")
}

// Stop stops the cron scheduler gracefully.
func (w *Warmer) Stop() {
	w.Cron.Stop()
	log.Println("[INFO] cache warmer stopped")
}

// RunNow performs one warm sweep immediately. Per-ticker failures are
// logged and skipped; the sweep never aborts.
func (w *Warmer) RunNow() {
	if len(w.Tickers) == 0 {
		return
	}
	log.Printf("[INFO] warming cache for %d tickers", len(w.Tickers))

	failures := 0
	for _, ticker := range w.Tickers {
		snap, err := w.Collector.Collect(ticker, w.Period)
		if err != nil {
			log.Printf("[WARN] warm %s: %v", ticker, err)
			failures++
			continue
		}
		w.Cache.Put(snap)
	}

	if err := w.Recorder.RecordWarmRun(&recorder.WarmRun{
		Tickers:  len(w.Tickers),
		Failures: failures,
	}); err != nil {
		log.Printf("[ERROR] record warm run: %v", err)
	}
}
