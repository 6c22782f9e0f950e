package aggregator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/stockdash/internal/domain/models"
	"github.com/guttosm/stockdash/internal/logger"
	"github.com/guttosm/stockdash/internal/provider"
)

// DefaultMAWindow is the moving-average window used when the caller enables
// the average without choosing one.
const DefaultMAWindow = 20

var (
	// ErrNoTickers means no valid symbol survived normalization.
	ErrNoTickers = errors.New("no valid tickers in request")
	// ErrInvalidRange means start is after end.
	ErrInvalidRange = errors.New("start date is after end date")
	// ErrInvalidWindow means the moving average was requested with a
	// non-positive window.
	ErrInvalidWindow = errors.New("moving-average window must be positive")
)

// Request is the full input tuple of one aggregation.
type Request struct {
	Tickers   []string
	Start     time.Time
	End       time.Time
	ComputeMA bool
	MAWindow  int
}

// Normalize returns a copy of the request with tickers trimmed, upper-cased,
// de-duplicated (order preserved) and empty entries dropped.
func (r Request) Normalize() Request {
	out := r
	out.Tickers = NormalizeTickers(r.Tickers)
	return out
}

// NormalizeTickers canonicalizes a raw symbol list: surrounding whitespace is
// trimmed, symbols are upper-cased, empties are discarded, and duplicates
// keep only their first position.
func NormalizeTickers(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		s := strings.ToUpper(strings.TrimSpace(t))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Warning records a recoverable per-ticker problem: the ticker was excluded
// from the result but the aggregation carried on.
type Warning struct {
	Ticker string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Ticker, w.Reason)
}

// Aggregator builds combined price tables from the market-data provider.
type Aggregator struct {
	history provider.History
}

// New creates an Aggregator on top of the given history provider.
func New(history provider.History) *Aggregator {
	return &Aggregator{history: history}
}

// Aggregate fetches the daily series of every requested ticker in one
// batched provider call and concatenates them into a single PriceTable.
//
// Behavior:
//   - Tickers are normalized first; an empty result is ErrNoTickers.
//   - A ticker whose retrieval fails or comes back empty is excluded with a
//     Warning; the rest of the aggregation is unaffected.
//   - A batch-level provider failure aborts with an error and no table.
//   - When req.ComputeMA is set, each row carries the trailing mean of the
//     close over req.MAWindow rows of its own ticker; the first window-1
//     rows of each ticker get an explicit nil (insufficient history). The
//     average is causal and never looks ahead.
//
// Row order is deterministic: ticker groups follow request order, dates
// ascend within a group.
func (a *Aggregator) Aggregate(ctx context.Context, req Request) (*models.PriceTable, []Warning, error) {
	req = req.Normalize()
	if len(req.Tickers) == 0 {
		return nil, nil, ErrNoTickers
	}
	if req.End.Before(req.Start) {
		return nil, nil, ErrInvalidRange
	}
	if req.ComputeMA && req.MAWindow < 1 {
		return nil, nil, ErrInvalidWindow
	}

	batch, err := a.history.FetchDailyHistory(ctx, req.Tickers, req.Start, req.End)
	if err != nil {
		return nil, nil, fmt.Errorf("aggregate: %w", err)
	}

	table := &models.PriceTable{HasMA: req.ComputeMA}
	var warnings []Warning

	for _, ticker := range req.Tickers {
		candles, err := batch.Result(ticker)
		if err != nil || len(candles) == 0 {
			reason := "no data returned"
			if err != nil && !errors.Is(err, provider.ErrNoData) {
				reason = err.Error()
			}
			logger.L().Warn().Str("ticker", ticker).Str("reason", reason).Msg("ticker excluded from aggregation")
			warnings = append(warnings, Warning{Ticker: ticker, Reason: reason})
			continue
		}

		rows := make([]models.PriceRow, len(candles))
		for i, c := range candles {
			rows[i] = models.PriceRow{
				Date:   c.Date,
				Open:   c.Open,
				High:   c.High,
				Low:    c.Low,
				Close:  c.Close,
				Volume: c.Volume,
				Ticker: ticker,
			}
		}
		if req.ComputeMA {
			applyMovingAverage(rows, req.MAWindow)
		}
		table.Rows = append(table.Rows, rows...)
	}

	return table, warnings, nil
}

// applyMovingAverage fills the MA column of one ticker's ascending-date rows
// with the trailing simple average of the close over the given window. Rows
// before index window-1 keep a nil MA.
func applyMovingAverage(rows []models.PriceRow, window int) {
	var sum float64
	for i := range rows {
		sum += rows[i].Close
		if i >= window {
			sum -= rows[i-window].Close
		}
		if i >= window-1 {
			ma := sum / float64(window)
			rows[i].MA = &ma
		}
	}
}
