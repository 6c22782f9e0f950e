// Package export serializes a PriceTable into the two fixed download
// formats of the dashboard: delimited text (CSV) and a single-sheet
// spreadsheet workbook (XLSX). Both encodings carry the same header, rows
// and cell values and are deterministic for a given table.
package export

import (
	"strconv"

	"github.com/guttosm/stockdash/internal/domain/models"
)

// Download file names presented at the HTTP boundary.
const (
	CSVFileName  = "dados_acoes.csv"
	XLSXFileName = "dados_acoes.xlsx"
)

const dateLayout = "2006-01-02"

// Header returns the column names, in order. The MA column is present iff
// the table carries a moving average.
func Header(hasMA bool) []string {
	h := []string{"Date", "Open", "High", "Low", "Close", "Volume", "Ticker"}
	if hasMA {
		h = append(h, "MA")
	}
	return h
}

// rowStrings renders one PriceRow into string cells matching Header order.
// A nil MA becomes an empty cell.
func rowStrings(r models.PriceRow, hasMA bool) []string {
	cells := []string{
		r.Date.Format(dateLayout),
		formatFloat(r.Open),
		formatFloat(r.High),
		formatFloat(r.Low),
		formatFloat(r.Close),
		strconv.FormatInt(r.Volume, 10),
		r.Ticker,
	}
	if hasMA {
		ma := ""
		if r.MA != nil {
			ma = formatFloat(*r.MA)
		}
		cells = append(cells, ma)
	}
	return cells
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
