package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"StockScope/internal/cache"
	"StockScope/internal/calculator"
	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
	"StockScope/internal/statement"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Addr = ":0"
	cfg.Cache.TTLSeconds = 300
	cfg.DefaultPeriod = "1y"
	cfg.Returns.MonthlyWindow = calculator.MonthlyWindow
	cfg.Returns.YearlyWindow = calculator.YearlyWindow
	cfg.Returns.MonthlyFallbackMin = calculator.MonthlyFallbackMin
	cfg.Returns.YearlyFallbackMin = calculator.YearlyFallbackMin
	return cfg
}

func testServer(fetcher collector.Fetcher) *Server {
	return New(testConfig(), collector.NewCollector(fetcher), cache.New(5*time.Minute), recorder.NewNoopRecorder())
}

func TestHandleStock(t *testing.T) {
	s := testServer(&collector.MockFetcher{Price: 100})

	req := httptest.NewRequest("GET", "/api/stock/aapl?period=1y", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var view StockView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.Ticker != "AAPL" {
		t.Errorf("ticker not uppercased: %q", view.Ticker)
	}
	if len(view.Bars) == 0 {
		t.Error("expected bars in payload")
	}
	if !strings.HasPrefix(view.Price.Current, "$") {
		t.Errorf("current price not formatted: %q", view.Price.Current)
	}
	if view.Price.MonthlyReturn == "N/A" || view.Price.YearlyReturn == "N/A" {
		t.Errorf("expected computed returns for a full year of bars, got %q / %q",
			view.Price.MonthlyReturn, view.Price.YearlyReturn)
	}

	income := view.Statements["income"]
	if income == nil || len(income.Rows) != 2 {
		t.Fatalf("expected normalized income statement, got %v", income)
	}
	// Mock data lists Net Income first; canonical order puts revenue first.
	if income.Rows[0].Label != "Total Revenue" || income.Rows[1].Label != "Net Income" {
		t.Errorf("income rows not in canonical order: %v", income.Rows)
	}
	if income.Rows[0].Cells[0] != "8.40B" {
		t.Errorf("expected formatted cell 8.40B, got %q", income.Rows[0].Cells[0])
	}
}

func TestHandleStock_BadInputs(t *testing.T) {
	s := testServer(&collector.MockFetcher{Price: 100})

	tests := []struct {
		url  string
		want int
	}{
		{"/api/stock/AAPL?period=13mo", http.StatusBadRequest},
		{"/api/stock/%21%21?period=1y", http.StatusBadRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.url, nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.url, tt.want, rec.Code)
		}
	}
}

// failingFetcher simulates an upstream that knows nothing.
type failingFetcher struct{ collector.MockFetcher }

func (f *failingFetcher) FetchHistory(string, model.Period) ([]model.Bar, error) {
	return nil, errors.New("no data returned")
}

func TestHandleStock_UpstreamFailure(t *testing.T) {
	s := testServer(&failingFetcher{})

	req := httptest.NewRequest("GET", "/api/stock/NOPE", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
}

func TestHandleHistoryCSV(t *testing.T) {
	bars := []model.Bar{
		{Time: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), Open: 230.1234567, High: 233.5, Low: 229.25, Close: 232.987654321, Volume: 51234567},
		{Time: time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC), Open: 232.0, High: 234.75, Low: 231.5, Close: 233.5, Volume: 49876543},
	}
	s := testServer(&collector.MockFetcher{Price: 100, Bars: bars})

	req := httptest.NewRequest("GET", "/api/stock/AAPL/history.csv?period=1mo", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "AAPL_historical_data.csv") {
		t.Errorf("unexpected disposition %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Open,High,Low,Close,Volume" {
		t.Errorf("unexpected header %q", lines[0])
	}
	// Full precision, no display formatting.
	if !strings.Contains(lines[1], "232.987654321") {
		t.Errorf("expected full-precision close, got %q", lines[1])
	}
}

func TestCacheMemoizesCollect(t *testing.T) {
	mock := &countingFetcher{}
	s := testServer(mock)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/stock/AAPL?period=1y", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
	if mock.historyCalls != 1 {
		t.Errorf("expected a single upstream fetch, got %d", mock.historyCalls)
	}
}

type countingFetcher struct {
	collector.MockFetcher
	historyCalls int
}

func (c *countingFetcher) FetchHistory(ticker string, period model.Period) ([]model.Bar, error) {
	c.historyCalls++
	c.Price = 100
	return c.MockFetcher.FetchHistory(ticker, period)
}

func TestHandleHealthAndIndex(t *testing.T) {
	s := testServer(&collector.MockFetcher{Price: 100})

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("healthz: expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("index: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "StockScope") {
		t.Error("index page missing title")
	}
}

func TestBuildStockView_NoProfile(t *testing.T) {
	snap := &model.Snapshot{
		Ticker: "XYZ",
		Period: model.Period1Month,
		Bars: []model.Bar{
			{Time: time.Now().AddDate(0, 0, -1), Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 1000},
			{Time: time.Now(), Open: 10.5, High: 11.5, Low: 10, Close: 11, Volume: 1200},
		},
		FetchedAt: time.Now(),
	}
	view := buildStockView(snap, testConfig())

	if view.Metrics.MarketCap != "N/A" {
		t.Errorf("missing profile must render N/A metrics, got %q", view.Metrics.MarketCap)
	}
	if view.Price.Current != "$11.00" {
		t.Errorf("current price should fall back to last close, got %q", view.Price.Current)
	}
	if view.Statements["income"] != nil {
		t.Error("absent statement should stay nil in payload")
	}
}

func TestBuildStockView_StatementKindsWired(t *testing.T) {
	snap := &model.Snapshot{
		Ticker: "XYZ",
		Period: model.Period1Year,
		Bars:   []model.Bar{{Time: time.Now(), Close: 10}},
		Balance: &statement.Table{
			Columns: []string{"2025-12-31"},
			Rows: []statement.Row{
				{Label: "Retained Earnings", Cells: []statement.Cell{statement.Num(5e9)}},
				{Label: "Total Assets", Cells: []statement.Cell{statement.Num(2e10)}},
			},
		},
	}
	view := buildStockView(snap, testConfig())

	balance := view.Statements["balance"]
	if balance == nil {
		t.Fatal("expected balance sheet in payload")
	}
	if balance.Rows[0].Label != "Total Assets" {
		t.Errorf("balance sheet not canonically ordered: %v", balance.Rows)
	}
	if balance.Rows[0].Cells[0] != "20.00B" {
		t.Errorf("expected 20.00B, got %q", balance.Rows[0].Cells[0])
	}
}
