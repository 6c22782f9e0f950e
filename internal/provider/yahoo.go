package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockdash/internal/logger"
)

// YahooProvider implements History against the Yahoo Finance v8 chart API.
//
// One HTTP request is issued per symbol; FetchDailyHistory fans them out
// concurrently (bounded by MaxParallel) and folds the outcomes into a single
// Batch, so callers still see one batched call for the whole ticker list.
type YahooProvider struct {
	Client      *http.Client
	BaseURL     string
	MaxParallel int
}

// NewYahooProvider creates a provider pointed at baseURL (the production
// endpoint is https://query1.finance.yahoo.com).
func NewYahooProvider(baseURL string, timeout time.Duration, maxParallel int) *YahooProvider {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &YahooProvider{
		Client:      &http.Client{Timeout: timeout},
		BaseURL:     baseURL,
		MaxParallel: maxParallel,
	}
}

// yahooChart mirrors the chart API response. Quote arrays use interface{}
// because Yahoo emits JSON null for bars on non-trading days.
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
	if n, ok := v.(float64); ok {
		return n
	}
	return 0
}

// FetchDailyHistory retrieves the daily series for every ticker over
// [start, end]. Per-ticker failures (unknown symbol, empty series, malformed
// body) are recorded in the Batch; the returned error is reserved for
// batch-level failures such as cancellation.
func (p *YahooProvider) FetchDailyHistory(ctx context.Context, tickers []string, start, end time.Time) (*Batch, error) {
	batch := NewBatch()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.MaxParallel)

	for _, t := range tickers {
		ticker := t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			candles, err := p.fetchChart(gctx, ticker, start, end)
			mu.Lock()
			if err != nil {
				logger.L().Warn().Str("ticker", ticker).Err(err).Msg("ticker fetch failed")
				batch.AddError(ticker, err)
			} else {
				batch.AddSeries(ticker, candles)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batched history fetch: %w", err)
	}
	return batch, nil
}

// fetchChart requests one symbol's daily bars. The end bound is pushed one
// day forward because period2 is exclusive of the trading day it lands on.
func (p *YahooProvider) fetchChart(ctx context.Context, symbol string, start, end time.Time) ([]Candle, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		p.BaseURL, url.PathEscape(symbol), start.Unix(), end.AddDate(0, 0, 1).Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chart fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("chart read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("symbol %s: %w", symbol, ErrNoData)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart status %d: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("chart decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart api error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("symbol %s: %w", symbol, ErrNoData)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("symbol %s: %w", symbol, ErrNoData)
	}
	quote := result.Indicators.Quote[0]

	// Ragged responses happen; clamp to the shortest array so a short
	// open/high/low/volume column cannot index out of range.
	n := min(len(result.Timestamp), len(quote.Open), len(quote.High),
		len(quote.Low), len(quote.Close), len(quote.Volume))

	candles := make([]Candle, 0, n)
	for i := 0; i < n; i++ {
		ts := result.Timestamp[i]
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // null bar (holiday, halted session)
		}
		day := time.Unix(ts, 0).UTC()
		candles = append(candles, Candle{
			Date:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(toFloat(quote.Volume[i])),
		})
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("symbol %s: %w", symbol, ErrNoData)
	}

	sort.SliceStable(candles, func(i, j int) bool { return candles[i].Date.Before(candles[j].Date) })

	// Providers occasionally repeat the last session; keep the first bar per day.
	dedup := candles[:1]
	for _, c := range candles[1:] {
		if !c.Date.Equal(dedup[len(dedup)-1].Date) {
			dedup = append(dedup, c)
		}
	}
	return dedup, nil
}

// Ping checks that the provider endpoint is reachable. Any HTTP response
// counts as reachable; only transport failures are errors.
func (p *YahooProvider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.BaseURL, nil)
	if err != nil {
		return err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("provider unreachable: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}
