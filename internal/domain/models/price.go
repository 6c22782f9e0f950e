package models

import "time"

// PriceRow is one daily OHLCV observation for a ticker.
//
// MA carries the trailing moving average of the close price when the caller
// requested one. A nil MA is an explicit gap: either the moving average was
// not requested, or the row sits inside the first window-1 observations of
// its ticker and has insufficient history.
type PriceRow struct {
	Date   time.Time `json:"date" example:"2024-09-02T00:00:00Z"`
	Open   float64   `json:"open" example:"37.10"`
	High   float64   `json:"high" example:"37.80"`
	Low    float64   `json:"low" example:"36.95"`
	Close  float64   `json:"close" example:"37.52"`
	Volume int64     `json:"volume" example:"18400300"`
	Ticker string    `json:"ticker" example:"PETR4.SA"`
	MA     *float64  `json:"ma,omitempty" example:"36.88"`
}

// PriceTable is the combined result of one aggregation call.
//
// Rows are grouped contiguously by ticker, groups appear in the order the
// tickers were requested, and dates ascend strictly within each group.
// A table is built once per input combination and never mutated afterwards.
type PriceTable struct {
	Rows  []PriceRow `json:"rows"`
	HasMA bool       `json:"has_ma"`
}

// Tickers returns the distinct tickers present in the table, in
// first-appearance (request) order.
func (t *PriceTable) Tickers() []string {
	var out []string
	last := ""
	for _, r := range t.Rows {
		if r.Ticker != last {
			out = append(out, r.Ticker)
			last = r.Ticker
		}
	}
	return out
}

// TickerRows returns the contiguous row group for one ticker, or nil when
// the ticker is not present.
func (t *PriceTable) TickerRows(ticker string) []PriceRow {
	start := -1
	for i, r := range t.Rows {
		if r.Ticker == ticker {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			return t.Rows[start:i]
		}
	}
	if start < 0 {
		return nil
	}
	return t.Rows[start:]
}
