package calculator

import (
	"errors"

	"StockScope/internal/model"
)

// Trading-day proxies for calendar windows, with degraded fallback cutoffs
// when the requested lookback delivered less history than the window. These
// are presentational approximations; keep them configurable rather than
// deriving anything deeper from them.
const (
	MonthlyWindow      = 21
	YearlyWindow       = 252
	MonthlyFallbackMin = 10
	YearlyFallbackMin  = 100
)

// WindowReturn computes the percentage return of the latest close against
// the close `window` bars back. When fewer than `window` bars are available
// but at least `fallbackMin`, it degrades to the full-span return. With less
// history than that, there is no meaningful figure and ok is false.
func WindowReturn(bars []model.Bar, window, fallbackMin int) (pct float64, ok bool) {
	n := len(bars)
	if n == 0 || window <= 0 {
		return 0, false
	}
	latest := bars[n-1].Close

	var base float64
	switch {
	case n >= window:
		base = bars[n-window].Close
	case n >= fallbackMin:
		base = bars[0].Close
	default:
		return 0, false
	}
	if base == 0 {
		return 0, false
	}
	return (latest - base) / base * 100, true
}

// ChangeFromPrevClose returns the absolute and percentage move of the latest
// close against the prior bar's close.
func ChangeFromPrevClose(bars []model.Bar) (change, pct float64, err error) {
	if len(bars) < 2 {
		return 0, 0, errors.New("need at least two bars")
	}
	prev := bars[len(bars)-2].Close
	last := bars[len(bars)-1].Close
	if prev == 0 {
		return 0, 0, errors.New("previous close is zero")
	}
	change = last - prev
	return change, change / prev * 100, nil
}
