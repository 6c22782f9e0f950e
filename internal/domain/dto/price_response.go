package dto

import "github.com/guttosm/stockdash/internal/domain/models"

// PriceTableResponse is the JSON body of GET /api/v1/prices.
//
// Warnings lists per-ticker problems that did not abort the aggregation
// (unresolvable symbol, empty series). A ticker that appears in Warnings has
// no rows in the table.
type PriceTableResponse struct {
	Rows     []models.PriceRow `json:"rows"`
	HasMA    bool              `json:"has_ma"`
	Warnings []string          `json:"warnings,omitempty"`
}

// MetricsResponse is the JSON body of GET /api/v1/metrics.
//
// Warnings carries both retrieval warnings and metric-level ones (ticker with
// no closes, degenerate variation input).
type MetricsResponse struct {
	Metrics  []models.TickerMetrics `json:"metrics"`
	Warnings []string               `json:"warnings,omitempty"`
}
