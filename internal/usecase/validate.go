package usecase

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	"github.com/f1rstgear/gearflow/internal/domain/model"
)

// DecodeBatch parses operator-pasted or oracle-produced order JSON into a
// record slice. The payload must be a JSON array of order objects.
func DecodeBatch(jsonText string) ([]model.OrderRecord, error) {
	var records []model.OrderRecord
	if err := json.Unmarshal([]byte(jsonText), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrJSONDecode, err)
	}
	return records, nil
}

// SanitizeBatch enforces the OrderRecord schema on records arriving from
// outside the rule-based path: the oracle reply or pasted JSON. It scrubs
// email tokens, trims fields, recomputes missing amounts, deduplicates,
// re-mints colliding or malformed invoices, and restores the canonical sort.
// Returned warnings describe records that needed repair; records with neither
// name nor phone are dropped with a warning rather than imported as garbage.
func SanitizeBatch(records []model.OrderRecord, unitPrice int) (model.OrderBatch, []string) {
	if unitPrice <= 0 {
		unitPrice = DefaultEconomics.UnitPrice
	}

	var (
		out      []model.OrderRecord
		warnings []string
		seen     = map[model.DedupKey]struct{}{}
		minter   = newInvoiceMinter()
	)

	for _, rec := range records {
		rec.Name = collapseSpace(scrubEmail(rec.Name))
		rec.Address = collapseSpace(scrubEmail(rec.Address))
		rec.Note = collapseSpace(scrubEmail(rec.Note))
		rec.Phone = digitsOf(rec.Phone)

		if rec.Name == "" && rec.Phone == "" {
			warnings = append(warnings, "dropped record without name or phone")
			continue
		}

		if rec.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf("negative amount reset for %s", rec.Name))
			rec.Amount = 0
		}
		if rec.Amount == 0 {
			rec.Amount = parseQuantity(rec.Note) * unitPrice
		}

		if _, dup := seen[rec.Key()]; dup {
			continue
		}
		seen[rec.Key()] = struct{}{}
		out = append(out, rec)
	}

	// first pass keeps well-formed invoices, second pass re-mints the rest
	for i := range out {
		if !minter.reserve(out[i].Invoice) {
			out[i].Invoice = ""
		}
	}
	for i := range out {
		if out[i].Invoice == "" {
			out[i].Invoice = minter.next()
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return model.OrderBatch(out), warnings
}

func scrubEmail(s string) string {
	return strings.TrimSpace(emailRE.ReplaceAllString(s, ""))
}
