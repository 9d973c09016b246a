package collector

import (
	"time"

	"StockScope/internal/model"
	"StockScope/internal/statement"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price      float64
	Bars       []model.Bar
	Profile    *model.CompanyProfile
	Statements map[statement.Kind]*statement.Table
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ string, period model.Period) ([]model.Bar, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	return generateMockBars(m.Price, periodBarCount(period)), nil
}

func (m *MockFetcher) FetchProfile(ticker string) (*model.CompanyProfile, error) {
	if m.Profile != nil {
		return m.Profile, nil
	}
	price := m.Price
	marketCap := price * 1e9
	return &model.CompanyProfile{
		Ticker:       ticker,
		Name:         ticker + " Mock Corp",
		Sector:       "Technology",
		Currency:     "USD",
		CurrentPrice: &price,
		MarketCap:    &marketCap,
	}, nil
}

func (m *MockFetcher) FetchStatement(_ string, kind statement.Kind) (*statement.Table, error) {
	if t, ok := m.Statements[kind]; ok {
		return t, nil
	}
	return &statement.Table{
		Columns: []string{"2025-12-31", "2024-12-31"},
		Rows: []statement.Row{
			{Label: "Net Income", Cells: []statement.Cell{statement.Num(1.2e9), statement.Num(1.0e9)}},
			{Label: "Total Revenue", Cells: []statement.Cell{statement.Num(8.4e9), statement.Num(7.9e9)}},
		},
	}, nil
}

func periodBarCount(period model.Period) int {
	switch period {
	case model.Period1Week:
		return 5
	case model.Period1Month:
		return 21
	case model.Period3Months:
		return 63
	case model.Period6Months:
		return 126
	case model.Period2Years:
		return 504
	case model.Period5Years, model.PeriodMax:
		return 1260
	default:
		return 252
	}
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
