package model

// CompanyProfile holds company identity and headline fundamentals for one
// ticker. Numeric fields are pointers: the upstream provider omits any of
// them freely, and absent is not the same as zero.
type CompanyProfile struct {
	Ticker   string
	Name     string
	Sector   string
	Industry string
	Country  string
	Website  string
	Exchange string
	Currency string
	Summary  string

	CurrentPrice  *float64
	PreviousClose *float64
	Open          *float64
	DayLow        *float64
	DayHigh       *float64
	Week52Low     *float64
	Week52High    *float64

	MarketCap       *float64
	EnterpriseValue *float64
	Volume          *float64
	AverageVolume   *float64
	TrailingPE      *float64
	ForwardPE       *float64
	PEGRatio        *float64
	PriceToBook     *float64
	DividendYield   *float64
	Beta            *float64

	ProfitMargin    *float64
	OperatingMargin *float64
	RevenueGrowth   *float64
	EarningsGrowth  *float64

	Employees         *int64
	SharesOutstanding *int64
	FloatShares       *int64
}
