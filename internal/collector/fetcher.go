package collector

import (
	"StockScope/internal/model"
	"StockScope/internal/statement"
)

// Fetcher defines the interface for fetching market data from a provider.
type Fetcher interface {
	FetchHistory(ticker string, period model.Period) ([]model.Bar, error)
	FetchProfile(ticker string) (*model.CompanyProfile, error)
	FetchStatement(ticker string, kind statement.Kind) (*statement.Table, error)
	Name() string
}
