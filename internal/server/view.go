package server

import (
	"fmt"
	"time"

	"StockScope/internal/calculator"
	"StockScope/internal/config"
	"StockScope/internal/format"
	"StockScope/internal/model"
	"StockScope/internal/statement"
)

// CompanyView is the identity block of the dashboard payload.
type CompanyView struct {
	Name      string `json:"name"`
	Sector    string `json:"sector"`
	Industry  string `json:"industry"`
	Country   string `json:"country"`
	Website   string `json:"website"`
	Exchange  string `json:"exchange"`
	Currency  string `json:"currency"`
	Summary   string `json:"summary"`
	Employees string `json:"employees"`
}

// PriceView carries the headline price strip, all pre-formatted.
type PriceView struct {
	Current       string `json:"current"`
	Change        string `json:"change"`
	ChangePct     string `json:"change_pct"`
	MonthlyReturn string `json:"monthly_return"`
	YearlyReturn  string `json:"yearly_return"`
	DayRange      string `json:"day_range"`
	Week52Range   string `json:"week_52_range"`
}

// MetricsView carries key stats and financial highlights, all pre-formatted.
type MetricsView struct {
	MarketCap         string `json:"market_cap"`
	EnterpriseValue   string `json:"enterprise_value"`
	Volume            string `json:"volume"`
	AverageVolume     string `json:"average_volume"`
	TrailingPE        string `json:"trailing_pe"`
	ForwardPE         string `json:"forward_pe"`
	PEGRatio          string `json:"peg_ratio"`
	PriceToBook       string `json:"price_to_book"`
	DividendYield     string `json:"dividend_yield"`
	Beta              string `json:"beta"`
	ProfitMargin      string `json:"profit_margin"`
	OperatingMargin   string `json:"operating_margin"`
	RevenueGrowth     string `json:"revenue_growth"`
	EarningsGrowth    string `json:"earnings_growth"`
	SharesOutstanding string `json:"shares_outstanding"`
	FloatShares       string `json:"float_shares"`
}

// BarView is one raw candle for the charting collaborator.
type BarView struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// StockView is the full dashboard payload for one ticker.
type StockView struct {
	Ticker     string                            `json:"ticker"`
	Period     string                            `json:"period"`
	FetchedAt  time.Time                         `json:"fetched_at"`
	Company    CompanyView                       `json:"company"`
	Price      PriceView                         `json:"price"`
	Metrics    MetricsView                       `json:"metrics"`
	Bars       []BarView                         `json:"bars"`
	Statements map[string]*statement.DisplayTable `json:"statements"`
}

// buildStockView assembles the display payload from a raw snapshot: headline
// metrics formatted as strings, raw bars passed through for charting, and
// normalized statement tables.
func buildStockView(snap *model.Snapshot, cfg *config.Config) *StockView {
	view := &StockView{
		Ticker:    snap.Ticker,
		Period:    string(snap.Period),
		FetchedAt: snap.FetchedAt,
		Company:   CompanyView{Name: snap.Ticker},
		Statements: map[string]*statement.DisplayTable{
			statement.Income.String():       statement.Normalize(snap.Income, statement.Income),
			statement.BalanceSheet.String(): statement.Normalize(snap.Balance, statement.BalanceSheet),
			statement.CashFlow.String():     statement.Normalize(snap.CashFlow, statement.CashFlow),
		},
	}

	view.Bars = make([]BarView, len(snap.Bars))
	for i, b := range snap.Bars {
		view.Bars[i] = BarView{
			Date:   b.Time.Format("2006-01-02"),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}

	view.Price = buildPriceView(snap, cfg)
	if p := snap.Profile; p != nil {
		view.Company = CompanyView{
			Name:      p.Name,
			Sector:    p.Sector,
			Industry:  p.Industry,
			Country:   p.Country,
			Website:   p.Website,
			Exchange:  p.Exchange,
			Currency:  p.Currency,
			Summary:   p.Summary,
			Employees: format.Comma(p.Employees),
		}
		view.Metrics = MetricsView{
			MarketCap:         format.Currency(p.MarketCap),
			EnterpriseValue:   format.Currency(p.EnterpriseValue),
			Volume:            format.Financial(p.Volume),
			AverageVolume:     format.Financial(p.AverageVolume),
			TrailingPE:        format.Ratio(p.TrailingPE),
			ForwardPE:         format.Ratio(p.ForwardPE),
			PEGRatio:          format.Ratio(p.PEGRatio),
			PriceToBook:       format.Ratio(p.PriceToBook),
			DividendYield:     format.Percent(scale100(p.DividendYield)),
			Beta:              format.Ratio(p.Beta),
			ProfitMargin:      format.Percent(scale100(p.ProfitMargin)),
			OperatingMargin:   format.Percent(scale100(p.OperatingMargin)),
			RevenueGrowth:     format.Percent(scale100(p.RevenueGrowth)),
			EarningsGrowth:    format.Percent(scale100(p.EarningsGrowth)),
			SharesOutstanding: format.Comma(p.SharesOutstanding),
			FloatShares:       format.Comma(p.FloatShares),
		}
	} else {
		view.Metrics = MetricsView{
			MarketCap: format.NotAvailable, EnterpriseValue: format.NotAvailable,
			Volume: format.NotAvailable, AverageVolume: format.NotAvailable,
			TrailingPE: format.NotAvailable, ForwardPE: format.NotAvailable,
			PEGRatio: format.NotAvailable, PriceToBook: format.NotAvailable,
			DividendYield: format.NotAvailable, Beta: format.NotAvailable,
			ProfitMargin: format.NotAvailable, OperatingMargin: format.NotAvailable,
			RevenueGrowth: format.NotAvailable, EarningsGrowth: format.NotAvailable,
			SharesOutstanding: format.NotAvailable, FloatShares: format.NotAvailable,
		}
	}

	return view
}

func buildPriceView(snap *model.Snapshot, cfg *config.Config) PriceView {
	pv := PriceView{
		Current: format.NotAvailable, Change: format.NotAvailable,
		ChangePct: format.NotAvailable, MonthlyReturn: format.NotAvailable,
		YearlyReturn: format.NotAvailable, DayRange: format.NotAvailable,
		Week52Range: format.NotAvailable,
	}

	bars := snap.Bars
	p := snap.Profile

	var current, prevClose *float64
	if p != nil {
		current = p.CurrentPrice
		prevClose = p.PreviousClose
	}
	if current == nil && len(bars) > 0 {
		c := bars[len(bars)-1].Close
		current = &c
	}
	if prevClose == nil && len(bars) > 1 {
		c := bars[len(bars)-2].Close
		prevClose = &c
	}

	if current != nil {
		pv.Current = fmt.Sprintf("$%.2f", *current)
	}
	if current != nil && prevClose != nil && *prevClose != 0 {
		change := *current - *prevClose
		pct := change / *prevClose * 100
		pv.Change = fmt.Sprintf("$%.2f", change)
		pv.ChangePct = format.Percent(&pct)
	}

	if r, ok := calculator.WindowReturn(bars, cfg.Returns.MonthlyWindow, cfg.Returns.MonthlyFallbackMin); ok {
		pv.MonthlyReturn = format.Percent(&r)
	}
	if r, ok := calculator.WindowReturn(bars, cfg.Returns.YearlyWindow, cfg.Returns.YearlyFallbackMin); ok {
		pv.YearlyReturn = format.Percent(&r)
	}

	pv.DayRange = rangeString(pick(p, func(p *model.CompanyProfile) *float64 { return p.DayLow }),
		pick(p, func(p *model.CompanyProfile) *float64 { return p.DayHigh }), bars, 1)
	pv.Week52Range = rangeString(pick(p, func(p *model.CompanyProfile) *float64 { return p.Week52Low }),
		pick(p, func(p *model.CompanyProfile) *float64 { return p.Week52High }), bars, cfg.Returns.YearlyWindow)

	return pv
}

// rangeString prefers the profile's low/high and falls back to scanning the
// price history over the given lookback.
func rangeString(low, high *float64, bars []model.Bar, lookback int) string {
	if low == nil || high == nil {
		h, l, err := calculator.RangeHighLow(bars, lookback)
		if err != nil {
			return format.NotAvailable
		}
		low, high = &l, &h
	}
	return fmt.Sprintf("$%.2f - $%.2f", *low, *high)
}

func pick(p *model.CompanyProfile, f func(*model.CompanyProfile) *float64) *float64 {
	if p == nil {
		return nil
	}
	return f(p)
}

// scale100 converts a provider fraction (0.0123) to percent form (1.23).
func scale100(v *float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * 100
	return &scaled
}
