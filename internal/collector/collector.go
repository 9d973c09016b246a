package collector

import (
	"fmt"
	"log"
	"time"

	"StockScope/internal/model"
	"StockScope/internal/statement"
)

// Collector assembles a best-effort dashboard snapshot for one ticker.
// Price history is required; the profile and each statement table degrade
// to absent when the provider has nothing for them.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches price history, fundamentals and the three statement
// tables for a ticker.
func (c *Collector) Collect(ticker string, period model.Period) (*model.Snapshot, error) {
	bars, err := c.Fetcher.FetchHistory(ticker, period)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", ticker, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no price history for %s", ticker)
	}

	snap := &model.Snapshot{
		Ticker:    ticker,
		Period:    period,
		Bars:      bars,
		FetchedAt: time.Now(),
	}

	if profile, err := c.Fetcher.FetchProfile(ticker); err != nil {
		log.Printf("[WARN] fetch profile for %s failed: %v", ticker, err)
	} else {
		snap.Profile = profile
	}

	for _, kind := range []statement.Kind{statement.Income, statement.BalanceSheet, statement.CashFlow} {
		table, err := c.Fetcher.FetchStatement(ticker, kind)
		if err != nil {
			log.Printf("[WARN] fetch %s statement for %s failed: %v", kind, ticker, err)
			continue
		}
		switch kind {
		case statement.Income:
			snap.Income = table
		case statement.BalanceSheet:
			snap.Balance = table
		case statement.CashFlow:
			snap.CashFlow = table
		}
	}

	return snap, nil
}
