package provider

import (
	"context"
	"errors"
	"time"
)

// Candle is one daily OHLCV bar as returned by the market-data provider.
type Candle struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// ErrNoData marks a per-ticker absence: the provider resolved the request but
// returned no bars for the symbol in the asked range. It is distinct from a
// malformed or failed response so callers can tell the two outcomes apart.
var ErrNoData = errors.New("no data for ticker")

// Batch holds the per-ticker outcomes of a single batched history call.
//
// A Batch always covers every requested ticker: each entry is either a candle
// series or a per-ticker error. Batch-level failures (transport outage for
// the whole call, cancellation) are reported by FetchDailyHistory itself, not
// stored here.
type Batch struct {
	results map[string]tickerResult
}

type tickerResult struct {
	candles []Candle
	err     error
}

// NewBatch creates an empty batch result set.
func NewBatch() *Batch {
	return &Batch{results: make(map[string]tickerResult)}
}

// AddSeries records a successful series for a ticker.
func (b *Batch) AddSeries(ticker string, candles []Candle) {
	b.results[ticker] = tickerResult{candles: candles}
}

// AddError records a per-ticker failure or absence.
func (b *Batch) AddError(ticker string, err error) {
	b.results[ticker] = tickerResult{err: err}
}

// Result returns the outcome for one ticker. Tickers never requested come
// back as ErrNoData.
func (b *Batch) Result(ticker string) ([]Candle, error) {
	r, ok := b.results[ticker]
	if !ok {
		return nil, ErrNoData
	}
	return r.candles, r.err
}

// History is the contract with the external market-data provider.
//
// FetchDailyHistory performs one batched call covering all tickers over
// [start, end]. The returned error means the whole batch failed and nothing
// usable was retrieved; per-ticker problems live inside the Batch.
type History interface {
	FetchDailyHistory(ctx context.Context, tickers []string, start, end time.Time) (*Batch, error)
	Ping(ctx context.Context) error
}
