package cache

import (
	"testing"
	"time"

	"StockScope/internal/model"
)

func snap(ticker string, period model.Period) *model.Snapshot {
	return &model.Snapshot{Ticker: ticker, Period: period, FetchedAt: time.Now()}
}

func TestCache_HitAndMiss(t *testing.T) {
	c := New(5 * time.Minute)

	if _, ok := c.Get("AAPL", model.Period1Year); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Put(snap("AAPL", model.Period1Year))
	if _, ok := c.Get("AAPL", model.Period1Year); !ok {
		t.Error("expected hit after put")
	}
	// Same ticker, different period is a distinct key.
	if _, ok := c.Get("AAPL", model.Period1Month); ok {
		t.Error("expected miss for different period")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New(5 * time.Minute)
	now := time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Put(snap("MSFT", model.Period1Year))

	now = now.Add(4 * time.Minute)
	if _, ok := c.Get("MSFT", model.Period1Year); !ok {
		t.Error("expected hit before TTL")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("MSFT", model.Period1Year); ok {
		t.Error("expected miss after TTL")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be evicted, len=%d", c.Len())
	}
}

func TestCache_PutReplaces(t *testing.T) {
	c := New(time.Minute)
	first := snap("TSLA", model.Period1Year)
	second := snap("TSLA", model.Period1Year)

	c.Put(first)
	c.Put(second)

	got, ok := c.Get("TSLA", model.Period1Year)
	if !ok || got != second {
		t.Error("expected the latest snapshot for the key")
	}
	if c.Len() != 1 {
		t.Errorf("expected a single entry, len=%d", c.Len())
	}
}
