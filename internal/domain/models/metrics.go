package models

// TickerMetrics holds the derived per-ticker figures shown on the dashboard.
//
// Fields:
//   - Ticker: the symbol the figures refer to.
//   - LastPrice: close of the chronologically last row; nil when the ticker
//     has no close values in the selected range.
//   - VariationPct: percent change between the first and last close of the
//     range; nil when fewer than two closes exist or the first close is zero.
//
// swagger:model TickerMetrics
type TickerMetrics struct {
	Ticker       string   `json:"ticker" example:"PETR4.SA"`
	LastPrice    *float64 `json:"last_price,omitempty" example:"37.52"`
	VariationPct *float64 `json:"variation_pct,omitempty" example:"4.81"`
}
