package recorder

// LookupEvent records one user-initiated dashboard fetch.
type LookupEvent struct {
	Ticker     string
	Period     string
	Price      float64
	ChangePct  float64
	CacheHit   bool
	DurationMs int64
	Source     string
}

// WarmRun records one cache pre-warm sweep over the popular-ticker list.
type WarmRun struct {
	Tickers  int
	Failures int
}

// Recorder persists a lookup audit trail for later analysis.
type Recorder interface {
	RecordLookup(evt *LookupEvent) error
	RecordWarmRun(run *WarmRun) error
	Close() error
}
