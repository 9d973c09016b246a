package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"StockScope/internal/model"
	"StockScope/internal/statement"
)

// DefaultYahooBaseURL is the public Yahoo Finance query host.
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher. An empty baseURL
// selects the public host; tests point it at a local server.
func NewYahooFetcher(baseURL, proxyURL string) *YahooFetcher {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) get(u string) ([]byte, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchHistory fetches daily OHLCV bars for the given lookback period,
// ascending by date.
func (f *YahooFetcher) FetchHistory(ticker string, period model.Period) ([]model.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		f.BaseURL, url.PathEscape(ticker), period)

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", ticker)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", ticker)
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// yahooValue is Yahoo's wrapped numeric: {"raw": 1.23, "fmt": "1.23"}.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

type yahooIntValue struct {
	Raw *int64 `json:"raw"`
}

// yahooQuoteSummary covers the quoteSummary modules the dashboard uses.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price *struct {
				LongName                   string      `json:"longName"`
				ExchangeName               string      `json:"exchangeName"`
				Currency                   string      `json:"currency"`
				MarketCap                  *yahooValue `json:"marketCap"`
				RegularMarketPrice         *yahooValue `json:"regularMarketPrice"`
				RegularMarketPreviousClose *yahooValue `json:"regularMarketPreviousClose"`
				RegularMarketOpen          *yahooValue `json:"regularMarketOpen"`
				RegularMarketDayLow        *yahooValue `json:"regularMarketDayLow"`
				RegularMarketDayHigh       *yahooValue `json:"regularMarketDayHigh"`
				RegularMarketVolume        *yahooValue `json:"regularMarketVolume"`
			} `json:"price"`
			SummaryDetail *struct {
				FiftyTwoWeekLow  *yahooValue `json:"fiftyTwoWeekLow"`
				FiftyTwoWeekHigh *yahooValue `json:"fiftyTwoWeekHigh"`
				AverageVolume    *yahooValue `json:"averageVolume"`
				TrailingPE       *yahooValue `json:"trailingPE"`
				ForwardPE        *yahooValue `json:"forwardPE"`
				DividendYield    *yahooValue `json:"dividendYield"`
				Beta             *yahooValue `json:"beta"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				EnterpriseValue   *yahooValue    `json:"enterpriseValue"`
				PegRatio          *yahooValue    `json:"pegRatio"`
				PriceToBook       *yahooValue    `json:"priceToBook"`
				SharesOutstanding *yahooIntValue `json:"sharesOutstanding"`
				FloatShares       *yahooIntValue `json:"floatShares"`
			} `json:"defaultKeyStatistics"`
			FinancialData *struct {
				ProfitMargins    *yahooValue `json:"profitMargins"`
				OperatingMargins *yahooValue `json:"operatingMargins"`
				RevenueGrowth    *yahooValue `json:"revenueGrowth"`
				EarningsGrowth   *yahooValue `json:"earningsGrowth"`
			} `json:"financialData"`
			AssetProfile *struct {
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
				Country             string `json:"country"`
				Website             string `json:"website"`
				LongBusinessSummary string `json:"longBusinessSummary"`
				FullTimeEmployees   *int64 `json:"fullTimeEmployees"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func raw(v *yahooValue) *float64 {
	if v == nil {
		return nil
	}
	return v.Raw
}

func rawInt(v *yahooIntValue) *int64 {
	if v == nil {
		return nil
	}
	return v.Raw
}

// FetchProfile fetches company identity and headline fundamentals from the
// quoteSummary API. Missing modules leave their fields absent.
func (f *YahooFetcher) FetchProfile(ticker string) (*model.CompanyProfile, error) {
	modules := "price,summaryDetail,defaultKeyStatistics,financialData,assetProfile"
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		f.BaseURL, url.PathEscape(ticker), modules)

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var qs yahooQuoteSummary
	if err := json.Unmarshal(body, &qs); err != nil {
		return nil, fmt.Errorf("yahoo decode quoteSummary: %w", err)
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no profile returned for %s", ticker)
	}

	r := qs.QuoteSummary.Result[0]
	p := &model.CompanyProfile{Ticker: ticker, Name: ticker}

	if pr := r.Price; pr != nil {
		if pr.LongName != "" {
			p.Name = pr.LongName
		}
		p.Exchange = pr.ExchangeName
		p.Currency = pr.Currency
		p.MarketCap = raw(pr.MarketCap)
		p.CurrentPrice = raw(pr.RegularMarketPrice)
		p.PreviousClose = raw(pr.RegularMarketPreviousClose)
		p.Open = raw(pr.RegularMarketOpen)
		p.DayLow = raw(pr.RegularMarketDayLow)
		p.DayHigh = raw(pr.RegularMarketDayHigh)
		p.Volume = raw(pr.RegularMarketVolume)
	}
	if sd := r.SummaryDetail; sd != nil {
		p.Week52Low = raw(sd.FiftyTwoWeekLow)
		p.Week52High = raw(sd.FiftyTwoWeekHigh)
		p.AverageVolume = raw(sd.AverageVolume)
		p.TrailingPE = raw(sd.TrailingPE)
		p.ForwardPE = raw(sd.ForwardPE)
		p.DividendYield = raw(sd.DividendYield)
		p.Beta = raw(sd.Beta)
	}
	if ks := r.DefaultKeyStatistics; ks != nil {
		p.EnterpriseValue = raw(ks.EnterpriseValue)
		p.PEGRatio = raw(ks.PegRatio)
		p.PriceToBook = raw(ks.PriceToBook)
		p.SharesOutstanding = rawInt(ks.SharesOutstanding)
		p.FloatShares = rawInt(ks.FloatShares)
	}
	if fd := r.FinancialData; fd != nil {
		p.ProfitMargin = raw(fd.ProfitMargins)
		p.OperatingMargin = raw(fd.OperatingMargins)
		p.RevenueGrowth = raw(fd.RevenueGrowth)
		p.EarningsGrowth = raw(fd.EarningsGrowth)
	}
	if ap := r.AssetProfile; ap != nil {
		p.Sector = ap.Sector
		p.Industry = ap.Industry
		p.Country = ap.Country
		p.Website = ap.Website
		p.Summary = ap.LongBusinessSummary
		p.Employees = ap.FullTimeEmployees
	}
	return p, nil
}

// statementLookbackYears bounds the fundamentals-timeseries query window.
const statementLookbackYears = 5

// yahooSeriesPoint is one annual figure in a fundamentals-timeseries row.
type yahooSeriesPoint struct {
	AsOfDate      string      `json:"asOfDate"`
	ReportedValue *yahooValue `json:"reportedValue"`
}

type yahooTimeseries struct {
	Timeseries struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"timeseries"`
}

// FetchStatement fetches one annual financial statement from the
// fundamentals-timeseries API and assembles it into a row-labeled,
// period-columned table. Columns are period end dates, most recent first.
func (f *YahooFetcher) FetchStatement(ticker string, kind statement.Kind) (*statement.Table, error) {
	keys := timeseriesKeys(kind)
	if len(keys) == 0 {
		return nil, fmt.Errorf("yahoo: no timeseries keys for kind %s", kind)
	}

	now := time.Now()
	u := fmt.Sprintf("%s/ws/fundamentals-timeseries/v1/finance/timeseries/%s?symbol=%s&type=%s&period1=%d&period2=%d",
		f.BaseURL, url.PathEscape(ticker), url.QueryEscape(ticker),
		strings.Join(keys, ","),
		now.AddDate(-statementLookbackYears, 0, 0).Unix(), now.Unix())

	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var ts yahooTimeseries
	if err := json.Unmarshal(body, &ts); err != nil {
		return nil, fmt.Errorf("yahoo decode timeseries: %w", err)
	}
	if ts.Timeseries.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", ts.Timeseries.Error.Description)
	}

	// Collect per-label series and the set of period end dates seen.
	type series map[string]float64 // asOfDate -> value
	byLabel := make(map[string]series)
	labelOrder := make([]string, 0, len(keys))
	dateSet := make(map[string]bool)

	for _, result := range ts.Timeseries.Result {
		for key, rawMsg := range result {
			if !strings.HasPrefix(key, "annual") {
				continue
			}
			var points []yahooSeriesPoint
			if err := json.Unmarshal(rawMsg, &points); err != nil {
				continue // non-series field such as meta or timestamp
			}
			label := spaceCamel(strings.TrimPrefix(key, "annual"))
			if _, seen := byLabel[label]; !seen {
				byLabel[label] = make(series)
				labelOrder = append(labelOrder, label)
			}
			for _, pt := range points {
				if pt.AsOfDate == "" || pt.ReportedValue == nil || pt.ReportedValue.Raw == nil {
					continue
				}
				byLabel[label][pt.AsOfDate] = *pt.ReportedValue.Raw
				dateSet[pt.AsOfDate] = true
			}
		}
	}

	if len(dateSet) == 0 {
		return nil, fmt.Errorf("yahoo: no statement data returned for %s %s", ticker, kind)
	}

	// Most-recent-first columns, matching the provider's presentation.
	columns := make([]string, 0, len(dateSet))
	for d := range dateSet {
		columns = append(columns, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(columns)))

	table := &statement.Table{Columns: columns}
	for _, label := range labelOrder {
		s := byLabel[label]
		if len(s) == 0 {
			continue
		}
		row := statement.Row{Label: label, Cells: make([]statement.Cell, len(columns))}
		for i, d := range columns {
			if v, ok := s[d]; ok {
				row.Cells[i] = statement.Num(v)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// timeseriesKeys derives the annual timeseries type names for a statement
// kind from its canonical line-item vocabulary ("Total Revenue" →
// "annualTotalRevenue").
func timeseriesKeys(kind statement.Kind) []string {
	order := statement.CanonicalOrder(kind)
	keys := make([]string, 0, len(order))
	for _, label := range order {
		keys = append(keys, "annual"+strings.ReplaceAll(label, " ", ""))
	}
	return keys
}

// spaceCamel turns a camel-case timeseries key into a spaced line-item
// label: "TotalRevenue" → "Total Revenue", "NetPPE" → "Net PPE". A split is
// also made where an acronym run ends and a new word starts, so
// "NetPPEPurchaseAndSale" → "Net PPE Purchase And Sale".
func spaceCamel(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && isUpper(r) {
			wordStart := !isUpper(runes[i-1]) ||
				(i+1 < len(runes) && isLower(runes[i+1]))
			if wordStart {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
