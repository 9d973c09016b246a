package warmer

import (
	"errors"
	"testing"
	"time"

	"StockScope/internal/cache"
	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
)

type flakyFetcher struct {
	collector.MockFetcher
	failFor map[string]bool
}

func (f *flakyFetcher) FetchHistory(ticker string, period model.Period) ([]model.Bar, error) {
	if f.failFor[ticker] {
		return nil, errors.New("provider unavailable")
	}
	return f.MockFetcher.FetchHistory(ticker, period)
}

func TestRunNow_FillsCacheAndSkipsFailures(t *testing.T) {
	fetcher := &flakyFetcher{
		MockFetcher: collector.MockFetcher{Price: 100},
		failFor:     map[string]bool{"BAD": true},
	}
	c := cache.New(time.Minute)
	w := New(collector.NewCollector(fetcher), c, recorder.NewNoopRecorder(),
		[]string{"AAPL", "BAD", "MSFT"}, model.Period1Year)

	w.RunNow()

	if _, ok := c.Get("AAPL", model.Period1Year); !ok {
		t.Error("expected AAPL warmed into cache")
	}
	if _, ok := c.Get("MSFT", model.Period1Year); !ok {
		t.Error("expected MSFT warmed into cache")
	}
	if _, ok := c.Get("BAD", model.Period1Year); ok {
		t.Error("failed ticker must not be cached")
	}
}

func TestRegister_BadSpec(t *testing.T) {
	w := New(collector.NewCollector(&collector.MockFetcher{Price: 100}),
		cache.New(time.Minute), recorder.NewNoopRecorder(), nil, model.Period1Year)
	if err := w.Register("not a cron spec"); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}
