package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/stockdash/internal/domain/models"
)

// SheetName is the single worksheet holding the exported table.
const SheetName = "Historico"

// WriteXLSX encodes the table as a single-sheet spreadsheet workbook with
// the same header, rows and columns as the CSV encoding. Numeric columns are
// written as numbers so spreadsheet consumers can compute on them; a nil MA
// stays an empty cell.
func WriteXLSX(w io.Writer, table *models.PriceTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	header := Header(table.HasMA)
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &cells); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}

	for i, row := range table.Rows {
		cells := []interface{}{
			row.Date.Format(dateLayout),
			row.Open,
			row.High,
			row.Low,
			row.Close,
			row.Volume,
			row.Ticker,
		}
		if table.HasMA {
			if row.MA != nil {
				cells = append(cells, *row.MA)
			} else {
				cells = append(cells, nil)
			}
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx cell name: %w", err)
		}
		if err := f.SetSheetRow(SheetName, addr, &cells); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
