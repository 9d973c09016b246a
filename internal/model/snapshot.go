package model

import (
	"time"

	"StockScope/internal/statement"
)

// Snapshot is one best-effort fetch of everything the dashboard shows for a
// ticker. Price history is always present; the profile and any statement
// table may be absent when the provider has nothing for them.
type Snapshot struct {
	Ticker    string
	Period    Period
	Bars      []Bar
	Profile   *CompanyProfile
	Income    *statement.Table
	Balance   *statement.Table
	CashFlow  *statement.Table
	FetchedAt time.Time
}
