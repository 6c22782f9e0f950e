package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/guttosm/stockdash/internal/domain/models"
)

// WriteCSV encodes the table as comma-delimited UTF-8 text: one header row,
// one row per PriceRow, no index column.
func WriteCSV(w io.Writer, table *models.PriceTable) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(table.HasMA)); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for i, row := range table.Rows {
		if err := cw.Write(rowStrings(row, table.HasMA)); err != nil {
			return fmt.Errorf("csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
