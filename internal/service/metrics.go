package service

import (
	"github.com/guttosm/stockdash/internal/domain/models"
)

// computeMetrics derives the dashboard figures for each requested ticker
// from its row group in the table.
//
// Both metrics follow the same warning policy: when a figure is undefined it
// stays nil and a warning names the ticker and the reason. Last price is the
// close of the chronologically last row. Period variation is
// (last-first)/first*100 over the ticker's closes; it is undefined with
// fewer than two closes or a zero first close (division guard).
func computeMetrics(table *models.PriceTable, tickers []string) ([]models.TickerMetrics, []string) {
	metrics := make([]models.TickerMetrics, 0, len(tickers))
	var warnings []string

	for _, ticker := range tickers {
		m := models.TickerMetrics{Ticker: ticker}
		rows := table.TickerRows(ticker)

		if len(rows) == 0 {
			warnings = append(warnings, ticker+": price not found")
			metrics = append(metrics, m)
			continue
		}

		last := rows[len(rows)-1].Close
		m.LastPrice = &last

		first := rows[0].Close
		switch {
		case len(rows) < 2:
			warnings = append(warnings, ticker+": not enough data for period variation")
		case first == 0:
			warnings = append(warnings, ticker+": first close is zero, period variation undefined")
		default:
			variation := (last - first) / first * 100
			m.VariationPct = &variation
		}

		metrics = append(metrics, m)
	}

	return metrics, warnings
}
