package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/f1rstgear/gearflow/internal/domain/model"
)

func TestExcel(t *testing.T) {
	batch := model.OrderBatch{
		{Invoice: "FGRB0001", Name: "Amin", Address: "Mirpur", Phone: "01811112222", Amount: 650, Note: "L (1)"},
		{Invoice: "FGRB0002", Name: "Zara", Address: "Uttara", Phone: "01911112222", Amount: 1300, Note: "XL (2)"},
	}

	data, err := Excel(batch)
	if err != nil {
		t.Fatalf("excel: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Orders")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	for i, want := range Columns {
		if rows[0][i] != want {
			t.Fatalf("header column %d = %q, want %q", i, rows[0][i], want)
		}
	}
	if rows[1][0] != "FGRB0001" || rows[1][1] != "Amin" {
		t.Fatalf("unexpected first data row: %v", rows[1])
	}
	if rows[2][4] != "1300" {
		t.Fatalf("unexpected amount cell: %q", rows[2][4])
	}
}

func TestExcel_EmptyBatch(t *testing.T) {
	data, err := Excel(nil)
	if err != nil {
		t.Fatalf("excel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Orders")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
}
