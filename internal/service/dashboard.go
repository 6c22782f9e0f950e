package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/guttosm/stockdash/internal/aggregator"
	"github.com/guttosm/stockdash/internal/cache"
	"github.com/guttosm/stockdash/internal/domain/models"
	"github.com/guttosm/stockdash/internal/export"
)

// PriceAggregator is the slice of the aggregator the service depends on.
type PriceAggregator interface {
	Aggregate(ctx context.Context, req aggregator.Request) (*models.PriceTable, []aggregator.Warning, error)
}

// DashboardService defines the business operations behind the dashboard
// endpoints: the combined price table, the per-ticker metrics, and the two
// export encodings.
type DashboardService interface {
	PriceTable(ctx context.Context, req aggregator.Request) (*models.PriceTable, []string, error)
	Metrics(ctx context.Context, req aggregator.Request) ([]models.TickerMetrics, []string, error)
	ExportCSV(ctx context.Context, req aggregator.Request) ([]byte, error)
	ExportXLSX(ctx context.Context, req aggregator.Request) ([]byte, error)
}

type dashboardService struct {
	agg   PriceAggregator
	cache cache.Cache
}

// NewDashboardService builds the service on top of an aggregator and a
// result cache. Pass cache.Noop{} to disable memoization.
func NewDashboardService(agg PriceAggregator, c cache.Cache) DashboardService {
	return &dashboardService{agg: agg, cache: c}
}

// PriceTable returns the combined table for the request, serving repeated
// identical requests from the TTL cache. Warnings list tickers that were
// excluded from the result.
func (s *dashboardService) PriceTable(ctx context.Context, req aggregator.Request) (*models.PriceTable, []string, error) {
	req = req.Normalize()
	key := cache.Key(req)

	if e, ok := s.cache.Get(key); ok {
		return e.Table, warningStrings(e.Warnings), nil
	}

	table, warnings, err := s.agg.Aggregate(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	s.cache.Add(key, &cache.Entry{Table: table, Warnings: warnings})
	return table, warningStrings(warnings), nil
}

// Metrics derives last price and period variation for every requested
// ticker. Undefined metrics (no data, fewer than two closes, zero first
// close) surface as warnings, never as errors.
func (s *dashboardService) Metrics(ctx context.Context, req aggregator.Request) ([]models.TickerMetrics, []string, error) {
	req = req.Normalize()
	table, warnings, err := s.PriceTable(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	metrics, metricWarnings := computeMetrics(table, req.Tickers)
	return metrics, append(warnings, metricWarnings...), nil
}

// ExportCSV renders the table for the request as comma-delimited text.
func (s *dashboardService) ExportCSV(ctx context.Context, req aggregator.Request) ([]byte, error) {
	table, _, err := s.PriceTable(ctx, req)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, table); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the table for the request as a single-sheet workbook.
func (s *dashboardService) ExportXLSX(ctx context.Context, req aggregator.Request) ([]byte, error) {
	table, _, err := s.PriceTable(ctx, req)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, table); err != nil {
		return nil, fmt.Errorf("export xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func warningStrings(ws []aggregator.Warning) []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}
