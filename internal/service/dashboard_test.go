package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/stockdash/internal/aggregator"
	"github.com/guttosm/stockdash/internal/cache"
	"github.com/guttosm/stockdash/internal/domain/models"
)

// stubAggregator returns a canned table and counts invocations so cache
// behavior is observable.
type stubAggregator struct {
	table    *models.PriceTable
	warnings []aggregator.Warning
	err      error
	calls    int
}

func (s *stubAggregator) Aggregate(_ context.Context, _ aggregator.Request) (*models.PriceTable, []aggregator.Warning, error) {
	s.calls++
	return s.table, s.warnings, s.err
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func tableOf(ticker string, closes ...float64) *models.PriceTable {
	t := &models.PriceTable{}
	for i, c := range closes {
		t.Rows = append(t.Rows, models.PriceRow{
			Date: day(i), Open: c, High: c, Low: c, Close: c, Volume: 100, Ticker: ticker,
		})
	}
	return t
}

func mergeTables(tables ...*models.PriceTable) *models.PriceTable {
	out := &models.PriceTable{}
	for _, t := range tables {
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out
}

func testRequest(tickers ...string) aggregator.Request {
	return aggregator.Request{Tickers: tickers, Start: day(0), End: day(30)}
}

func TestPriceTable_CacheThrough(t *testing.T) {
	agg := &stubAggregator{table: tableOf("AAA", 1, 2, 3)}
	svc := NewDashboardService(agg, cache.NewTTL(8, time.Minute))

	req := testRequest("AAA")
	first, _, err := svc.PriceTable(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := svc.PriceTable(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if agg.calls != 1 {
		t.Fatalf("expected 1 aggregation, got %d", agg.calls)
	}
	if first != second {
		t.Fatalf("cache should return the same immutable table")
	}

	// Equivalent ticker spelling hits the same entry.
	if _, _, err := svc.PriceTable(context.Background(), testRequest(" aaa ")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.calls != 1 {
		t.Fatalf("normalized request missed the cache: %d calls", agg.calls)
	}
}

func TestPriceTable_NoopCacheRefetches(t *testing.T) {
	agg := &stubAggregator{table: tableOf("AAA", 1)}
	svc := NewDashboardService(agg, cache.Noop{})

	for i := 0; i < 3; i++ {
		if _, _, err := svc.PriceTable(context.Background(), testRequest("AAA")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if agg.calls != 3 {
		t.Fatalf("expected 3 aggregations with noop cache, got %d", agg.calls)
	}
}

func TestPriceTable_WarningsSurvivesCache(t *testing.T) {
	agg := &stubAggregator{
		table:    tableOf("AAA", 1),
		warnings: []aggregator.Warning{{Ticker: "BAD", Reason: "no data returned"}},
	}
	svc := NewDashboardService(agg, cache.NewTTL(8, time.Minute))

	for i := 0; i < 2; i++ {
		_, warnings, err := svc.PriceTable(context.Background(), testRequest("AAA", "BAD"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "BAD") {
			t.Fatalf("round %d: warnings lost: %v", i, warnings)
		}
	}
}

func TestPriceTable_Error(t *testing.T) {
	agg := &stubAggregator{err: errors.New("provider down")}
	svc := NewDashboardService(agg, cache.Noop{})
	if _, _, err := svc.PriceTable(context.Background(), testRequest("AAA")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestMetrics_TableDriven(t *testing.T) {
	cases := []struct {
		name          string
		table         *models.PriceTable
		tickers       []string
		wantLast      map[string]*float64
		wantVariation map[string]*float64
		wantWarnings  int
	}{
		{
			name:          "last and variation",
			table:         tableOf("AAA", 10, 12, 15),
			tickers:       []string{"AAA"},
			wantLast:      map[string]*float64{"AAA": fp(15)},
			wantVariation: map[string]*float64{"AAA": fp(50)},
		},
		{
			name:          "missing ticker warns on both metrics",
			table:         tableOf("AAA", 10, 11),
			tickers:       []string{"AAA", "GONE"},
			wantLast:      map[string]*float64{"AAA": fp(11), "GONE": nil},
			wantVariation: map[string]*float64{"GONE": nil},
			wantWarnings:  1,
		},
		{
			name:          "single close has last price but no variation",
			table:         tableOf("AAA", 42),
			tickers:       []string{"AAA"},
			wantLast:      map[string]*float64{"AAA": fp(42)},
			wantVariation: map[string]*float64{"AAA": nil},
			wantWarnings:  1,
		},
		{
			name:          "zero first close guards division",
			table:         tableOf("AAA", 0, 10),
			tickers:       []string{"AAA"},
			wantLast:      map[string]*float64{"AAA": fp(10)},
			wantVariation: map[string]*float64{"AAA": nil},
			wantWarnings:  1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			metrics, warnings := computeMetrics(tc.table, tc.tickers)
			if len(metrics) != len(tc.tickers) {
				t.Fatalf("expected %d metric rows, got %d", len(tc.tickers), len(metrics))
			}
			byTicker := map[string]models.TickerMetrics{}
			for _, m := range metrics {
				byTicker[m.Ticker] = m
			}
			for ticker, want := range tc.wantLast {
				assertMetric(t, ticker+" last", byTicker[ticker].LastPrice, want)
			}
			for ticker, want := range tc.wantVariation {
				assertMetric(t, ticker+" variation", byTicker[ticker].VariationPct, want)
			}
			if len(warnings) != tc.wantWarnings {
				t.Fatalf("expected %d warnings, got %v", tc.wantWarnings, warnings)
			}
		})
	}
}

func fp(v float64) *float64 { return &v }

func assertMetric(t *testing.T, label string, got, want *float64) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Fatalf("%s: expected undefined, got %v", label, *got)
		}
		return
	}
	if got == nil {
		t.Fatalf("%s: expected %v, got undefined", label, *want)
	}
	if *got != *want {
		t.Fatalf("%s: got %v, want %v", label, *got, *want)
	}
}

func TestMetrics_CombinesRetrievalAndMetricWarnings(t *testing.T) {
	agg := &stubAggregator{
		table:    tableOf("AAA", 10, 11),
		warnings: []aggregator.Warning{{Ticker: "BAD", Reason: "no data returned"}},
	}
	svc := NewDashboardService(agg, cache.Noop{})

	metrics, warnings, err := svc.Metrics(context.Background(), testRequest("AAA", "BAD"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(metrics) != 2 {
		t.Fatalf("expected metrics for both requested tickers, got %d", len(metrics))
	}
	// One retrieval warning plus one metric warning, both naming BAD.
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
}

func TestExports_SameRowsDifferentEncoding(t *testing.T) {
	agg := &stubAggregator{table: mergeTables(tableOf("AAA", 1, 2), tableOf("BBB", 3))}
	svc := NewDashboardService(agg, cache.NewTTL(8, time.Minute))
	req := testRequest("AAA", "BBB")

	csvData, err := svc.ExportCSV(context.Background(), req)
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if got := bytes.Count(csvData, []byte("\n")); got != 4 { // header + 3 rows
		t.Fatalf("expected 4 csv lines, got %d", got)
	}

	xlsxData, err := svc.ExportXLSX(context.Background(), req)
	if err != nil {
		t.Fatalf("xlsx: %v", err)
	}
	if len(xlsxData) == 0 {
		t.Fatalf("empty xlsx output")
	}

	// Both encodings come from the single cached table.
	if agg.calls != 1 {
		t.Fatalf("expected 1 aggregation behind both exports, got %d", agg.calls)
	}
}

func TestExports_Deterministic(t *testing.T) {
	agg := &stubAggregator{table: tableOf("AAA", 1, 2, 3)}
	svc := NewDashboardService(agg, cache.Noop{})
	req := testRequest("AAA")

	a, err := svc.ExportCSV(context.Background(), req)
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	b, err := svc.ExportCSV(context.Background(), req)
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("csv export not byte-identical across identical runs")
	}
}
