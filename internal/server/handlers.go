package server

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"StockScope/internal/calculator"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
)

var tickerRe = regexp.MustCompile(`^[A-Z0-9.\-^]{1,12}$`)

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseRequest validates the ticker path value and period query parameter.
func (s *Server) parseRequest(r *http.Request) (string, model.Period, error) {
	ticker := strings.ToUpper(strings.TrimSpace(r.PathValue("ticker")))
	if !tickerRe.MatchString(ticker) {
		return "", "", fmt.Errorf("invalid ticker %q", r.PathValue("ticker"))
	}
	raw := r.URL.Query().Get("period")
	if raw == "" {
		raw = s.cfg.DefaultPeriod
	}
	period, ok := model.ParsePeriod(raw)
	if !ok {
		return "", "", fmt.Errorf("invalid period %q", raw)
	}
	return ticker, period, nil
}

// snapshotFor serves from the cache when fresh, otherwise collects and
// memoizes.
func (s *Server) snapshotFor(ticker string, period model.Period) (*model.Snapshot, bool, error) {
	if snap, ok := s.cache.Get(ticker, period); ok {
		return snap, true, nil
	}
	snap, err := s.collector.Collect(ticker, period)
	if err != nil {
		return nil, false, err
	}
	s.cache.Put(snap)
	return snap, false, nil
}

func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	ticker, period, err := s.parseRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	start := time.Now()
	snap, hit, err := s.snapshotFor(ticker, period)
	if err != nil {
		log.Printf("[ERROR] collect %s: %v", ticker, err)
		writeJSON(w, http.StatusBadGateway, apiError{
			Error: fmt.Sprintf("could not fetch data for ticker %q", ticker),
		})
		return
	}

	view := buildStockView(snap, s.cfg)
	s.recordLookup(snap, hit, time.Since(start))
	writeJSON(w, http.StatusOK, view)
}

// handleHistoryCSV streams the raw price history at full precision. The
// export bypasses the display formatting entirely.
func (s *Server) handleHistoryCSV(w http.ResponseWriter, r *http.Request) {
	ticker, period, err := s.parseRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	snap, _, err := s.snapshotFor(ticker, period)
	if err != nil {
		log.Printf("[ERROR] collect %s: %v", ticker, err)
		writeJSON(w, http.StatusBadGateway, apiError{
			Error: fmt.Sprintf("could not fetch data for ticker %q", ticker),
		})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s_historical_data.csv"`, ticker))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Date", "Open", "High", "Low", "Close", "Volume"})
	for _, b := range snap.Bars {
		_ = cw.Write([]string{
			b.Time.Format("2006-01-02"),
			strconv.FormatFloat(b.Open, 'f', -1, 64),
			strconv.FormatFloat(b.High, 'f', -1, 64),
			strconv.FormatFloat(b.Low, 'f', -1, 64),
			strconv.FormatFloat(b.Close, 'f', -1, 64),
			strconv.FormatFloat(b.Volume, 'f', -1, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("[ERROR] write csv for %s: %v", ticker, err)
	}
}

func (s *Server) recordLookup(snap *model.Snapshot, hit bool, took time.Duration) {
	evt := &recorder.LookupEvent{
		Ticker:     snap.Ticker,
		Period:     string(snap.Period),
		CacheHit:   hit,
		DurationMs: took.Milliseconds(),
		Source:     s.collector.Fetcher.Name(),
	}
	if len(snap.Bars) > 0 {
		evt.Price = snap.Bars[len(snap.Bars)-1].Close
	}
	if _, pct, err := calculator.ChangeFromPrevClose(snap.Bars); err == nil {
		evt.ChangePct = pct
	}
	if err := s.recorder.RecordLookup(evt); err != nil {
		log.Printf("[ERROR] record lookup: %v", err)
	}
}
