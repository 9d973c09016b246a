package model

// Period is a lookback window token passed through to the data source.
type Period string

const (
	Period1Week   Period = "1wk"
	Period1Month  Period = "1mo"
	Period3Months Period = "3mo"
	Period6Months Period = "6mo"
	Period1Year   Period = "1y"
	Period2Years  Period = "2y"
	Period5Years  Period = "5y"
	PeriodMax     Period = "max"
)

// DefaultPeriod is used when a request doesn't specify a lookback window.
const DefaultPeriod = Period1Year

var validPeriods = map[Period]bool{
	Period1Week:   true,
	Period1Month:  true,
	Period3Months: true,
	Period6Months: true,
	Period1Year:   true,
	Period2Years:  true,
	Period5Years:  true,
	PeriodMax:     true,
}

// ParsePeriod validates a period token. An empty string maps to the default;
// anything unrecognized is rejected.
func ParsePeriod(s string) (Period, bool) {
	if s == "" {
		return DefaultPeriod, true
	}
	p := Period(s)
	return p, validPeriods[p]
}
