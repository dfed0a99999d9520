package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/f1rstgear/gearflow/internal/domain/model"
)

// Columns is the fixed export column order shared by the xlsx export and the
// spreadsheet push.
var Columns = []string{"Invoice", "Name", "Address", "Phone", "Amount", "Note"}

const sheetName = "Orders"

// Excel renders the batch as an xlsx workbook: a header row followed by one
// row per record, columns in the fixed order.
func Excel(batch model.OrderBatch) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, title := range Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for row, rec := range batch {
		values := []interface{}{rec.Invoice, rec.Name, rec.Address, rec.Phone, rec.Amount, rec.Note}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
