package usecase

import (
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	"github.com/f1rstgear/gearflow/internal/domain/model"
)

func TestDecodeBatch(t *testing.T) {
	records, err := DecodeBatch(`[{"Invoice":"FGRB1234","Name":"Amin","Address":"Mirpur","Phone":"01811112222","Amount":650,"Note":"L (1)"}]`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Amin" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestDecodeBatch_Invalid(t *testing.T) {
	for _, payload := range []string{"", "{", `{"Name":"Amin"}`, `[{"Amount":"x"}]`} {
		if _, err := DecodeBatch(payload); !errors.Is(err, domainErrors.ErrJSONDecode) {
			t.Fatalf("payload %q: expected ErrJSONDecode, got %v", payload, err)
		}
	}
}

func TestSanitizeBatch_ScrubsAndSorts(t *testing.T) {
	records := []model.OrderRecord{
		{Invoice: "FGRB0001", Name: "Zara", Address: "Uttara zara@mail.example", Phone: "019-1111-2222", Amount: 650, Note: "S (1)"},
		{Invoice: "FGRB0001", Name: "Amin", Address: "Mirpur", Phone: "01811112222", Note: "L (2)"},
	}

	batch, warnings := SanitizeBatch(records, 650)

	if len(batch) != 2 {
		t.Fatalf("expected 2 records, got %d", len(batch))
	}
	if batch[0].Name != "Amin" || batch[1].Name != "Zara" {
		t.Fatalf("unexpected order: %q, %q", batch[0].Name, batch[1].Name)
	}
	if strings.Contains(batch[1].Address, "@") {
		t.Fatalf("email survived sanitation: %q", batch[1].Address)
	}
	if batch[1].Phone != "01911112222" {
		t.Fatalf("unexpected phone: %q", batch[1].Phone)
	}
	if batch[0].Amount != 1300 {
		t.Fatalf("expected recomputed amount 1300, got %d", batch[0].Amount)
	}
	if batch[0].Invoice == batch[1].Invoice {
		t.Fatalf("duplicate invoice survived: %q", batch[0].Invoice)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestSanitizeBatch_RemintsMalformedInvoices(t *testing.T) {
	records := []model.OrderRecord{
		{Invoice: "FGRB12345", Name: "Amin", Phone: "01811112222", Note: "M"},
		{Invoice: "FGRB1", Name: "Mamun", Phone: "01711112222", Note: "L"},
		{Invoice: "INV0001", Name: "Rafi", Phone: "01911112222", Note: "S"},
		{Invoice: "FGRB0042", Name: "Zara", Phone: "01511112222", Note: "XL"},
	}

	batch, _ := SanitizeBatch(records, 650)

	if len(batch) != 4 {
		t.Fatalf("expected 4 records, got %d", len(batch))
	}
	seen := map[string]struct{}{}
	for _, rec := range batch {
		if !invoiceRE.MatchString(rec.Invoice) {
			t.Fatalf("invoice %q survived sanitation without 4-digit form", rec.Invoice)
		}
		if _, dup := seen[rec.Invoice]; dup {
			t.Fatalf("duplicate invoice %q after re-minting", rec.Invoice)
		}
		seen[rec.Invoice] = struct{}{}
	}
	for _, rec := range batch {
		if rec.Name == "Zara" && rec.Invoice != "FGRB0042" {
			t.Fatalf("well-formed invoice was not kept: %q", rec.Invoice)
		}
	}
}

func TestSanitizeBatch_DropsEmptyRecords(t *testing.T) {
	records := []model.OrderRecord{
		{Note: "L (1)"},
		{Name: "Amin", Phone: "01811112222", Amount: 650},
	}

	batch, warnings := SanitizeBatch(records, 650)
	if len(batch) != 1 {
		t.Fatalf("expected 1 record, got %d", len(batch))
	}
	if len(warnings) == 0 {
		t.Fatal("expected a warning for the dropped record")
	}
}

func TestSanitizeBatch_Dedup(t *testing.T) {
	rec := model.OrderRecord{Invoice: "FGRB0007", Name: "Amin", Address: "Mirpur", Phone: "01811112222", Amount: 650, Note: "L (1)"}
	batch, _ := SanitizeBatch([]model.OrderRecord{rec, rec, rec}, 650)
	if len(batch) != 1 {
		t.Fatalf("expected dedup to 1 record, got %d", len(batch))
	}
	if batch[0].Invoice != "FGRB0007" {
		t.Fatalf("well-formed invoice should be kept, got %q", batch[0].Invoice)
	}
}

func TestSanitizeBatch_NegativeAmount(t *testing.T) {
	records := []model.OrderRecord{{Name: "Amin", Phone: "01811112222", Amount: -10, Note: "L (1)"}}
	batch, warnings := SanitizeBatch(records, 650)
	if batch[0].Amount != 650 {
		t.Fatalf("expected amount recomputed to 650, got %d", batch[0].Amount)
	}
	if len(warnings) == 0 {
		t.Fatal("expected warning for negative amount")
	}
}
